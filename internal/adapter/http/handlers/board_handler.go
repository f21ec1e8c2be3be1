package handlers

import (
	"errors"
	"net/http"

	request "metalurgica_xpto/internal/adapter/http/dto/request"
	response "metalurgica_xpto/internal/adapter/http/dto/response"
	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase"
	"metalurgica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBoardPayload = pkg.NewDomainErrorSimple("INVALID_BOARD_INPUT", "Invalid board payload", http.StatusBadRequest)

// BoardHandler serves the kanban projection and the status transitions
// driven from it.

type BoardHandler struct {
	usecase usecase.ILifecycleUseCase
}

func NewBoardHandler(uc usecase.ILifecycleUseCase) *BoardHandler {
	return &BoardHandler{usecase: uc}
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	board, err := h.usecase.Board(c.Request.Context())
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBoard(board))
}

// UpdateStatus moves a card to a new production stage, converting the quote
// on its first move.
func (h *BoardHandler) UpdateStatus(c *gin.Context) {
	var payload request.BoardStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoardPayload.HTTPStatus, errInvalidBoardPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.UpdateBoardStatus(c.Request.Context(), payload.Client, payload.ProjectCode, entities.ProductionStatus(payload.NewStatus))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *BoardHandler) SaveOrder(c *gin.Context) {
	var payload request.BoardOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoardPayload.HTTPStatus, errInvalidBoardPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SaveBoardOrder(c.Request.Context(), payload.Bucket, payload.Keys); err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// MarkExpired closes a sent quote as lost.
func (h *BoardHandler) MarkExpired(c *gin.Context) {
	p, err := h.usecase.MarkExpired(c.Request.Context(), c.Param("project_code"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// ConvertToOrder accepts a sent quote, dropping it into its first production
// stage.
func (h *BoardHandler) ConvertToOrder(c *gin.Context) {
	p, err := h.usecase.ConvertToOrder(c.Request.Context(), c.Param("project_code"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *BoardHandler) GetStageTimes(c *gin.Context) {
	logs, err := h.usecase.StageTimes(c.Request.Context(), c.Query("cliente"), c.Param("project_code"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStageLogs(logs))
}

func mapLifecycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidBoardBucket),
		errors.Is(err, usecase.ErrMissingClientOrCode),
		errors.Is(err, usecase.ErrInvalidProjectCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
