package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "metalurgica_xpto/docs" // swag-generated
	"metalurgica_xpto/internal/adapter/http/handlers"
	repository2 "metalurgica_xpto/internal/adapter/persistence/repository"
	"metalurgica_xpto/internal/infrastructure/database"
	"metalurgica_xpto/internal/infrastructure/oracle"
	"metalurgica_xpto/internal/infrastructure/payments"
	"metalurgica_xpto/internal/infrastructure/storage"
	"metalurgica_xpto/internal/usecase"
	"metalurgica_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB()

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	counterRepo := repository2.NewCounterDynamoRepository(ddb)
	stageLogRepo := repository2.NewStageLogDynamoRepository(ddb)
	boardOrderRepo := repository2.NewBoardOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	workbook, err := oracle.NewWorkbookOracle(
		getenvDefault("ORACLE_WORKBOOK_PATH", "calculo.xlsx"),
		os.Getenv("ORACLE_SHEET_NAME"),
	)
	if err != nil {
		log.Fatalf("Failed to open the calculation workbook: %v", err)
	}

	folderStore, err := storage.NewS3FolderStore(ctx)
	if err != nil {
		log.Fatalf("Failed to configure the folder store: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	aggregatorUseCase := usecase.NewAggregatorUseCase(workbook)
	allocatorUseCase := usecase.NewAllocatorUseCase(counterRepo, projectRepo, productRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, productRepo, workbook, folderStore, aggregatorUseCase, allocatorUseCase)
	lifecycleUseCase := usecase.NewLifecycleUseCase(projectRepo, folderStore, stageLogRepo, boardOrderRepo)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, projectRepo, paymentGateway)

	projectHandler := handlers.NewProjectHandler(projectUseCase, aggregatorUseCase, allocatorUseCase)
	boardHandler := handlers.NewBoardHandler(lifecycleUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProjectRoutes(v1, projectHandler, boardHandler)
	addBoardRoutes(v1, boardHandler)
	addCatalogRoutes(v1, catalogHandler)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
