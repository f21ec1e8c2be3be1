package routes

import (
	"metalurgica_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
	PathBoard    = "/board"
	PathProducts = "/products"
	PathPayments = "/payments"
)

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, boardHandler *handlers.BoardHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/stats", projectHandler.GetStats)
		projects.GET("/daily-index", projectHandler.GetDailyIndex)
		projects.POST("/drafts", projectHandler.SaveDraft)
		projects.POST("/preview", projectHandler.Preview)
		projects.POST("/quotes", projectHandler.SubmitQuote)
		projects.POST("/orders", projectHandler.SaveAsOrder)
		projects.GET("/:project_code", projectHandler.GetProject)
		projects.DELETE("/:project_code", projectHandler.DeleteProject)
		projects.PATCH("/:project_code/convert", boardHandler.ConvertToOrder)
		projects.PATCH("/:project_code/expire", boardHandler.MarkExpired)
		projects.GET("/:project_code/stage-times", boardHandler.GetStageTimes)
	}
}

func addBoardRoutes(rg *gin.RouterGroup, boardHandler *handlers.BoardHandler) {
	board := rg.Group(PathBoard)
	{
		board.GET("", boardHandler.GetBoard)
		board.PATCH("/status", boardHandler.UpdateStatus)
		board.PUT("/order", boardHandler.SaveOrder)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:code", catalogHandler.GetProduct)
		products.PUT("/:code", catalogHandler.UpdateProduct)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:project_code", paymentHandler.CreateDownPayment)
		payments.GET("/:project_code", paymentHandler.ListDownPayments)
	}
}
