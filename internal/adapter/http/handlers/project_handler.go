package handlers

import (
	"errors"
	"net/http"

	request "metalurgica_xpto/internal/adapter/http/dto/request"
	response "metalurgica_xpto/internal/adapter/http/dto/response"
	"metalurgica_xpto/internal/usecase"
	"metalurgica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)

// ProjectHandler handles the quote/order record endpoints: draft CRUD,
// submission, preview pricing and the identifier helpers the form needs.

type ProjectHandler struct {
	usecase    usecase.IProjectUseCase
	aggregator usecase.IAggregatorUseCase
	allocator  usecase.IAllocatorUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase, aggregator usecase.IAggregatorUseCase, allocator usecase.IAllocatorUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc, aggregator: aggregator, allocator: allocator}
}

// SaveDraft persists the editable form without allocating identifiers.
func (h *ProjectHandler) SaveDraft(c *gin.Context) {
	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.SaveDraft(c.Request.Context(), payload.ToPayload())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// SubmitQuote allocates identifiers and registers the quote as Enviado.
func (h *ProjectHandler) SubmitQuote(c *gin.Context) {
	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.SubmitQuote(c.Request.Context(), payload.ToPayload(), payload.PDFLink, payload.MemoLink)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// SaveAsOrder registers a project directly as a converted order.
func (h *ProjectHandler) SaveAsOrder(c *gin.Context) {
	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.SaveAsOrder(c.Request.Context(), payload.ToPayload())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// Preview prices the form without persisting anything.
func (h *ProjectHandler) Preview(c *gin.Context) {
	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	items, total, err := h.aggregator.Aggregate(c.Request.Context(), payload.ToPayload())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLineItems(items, total))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, payload, err := h.usecase.Load(c.Request.Context(), c.Param("project_code"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjectWithPayload(p, payload))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	code := c.Param("project_code")
	wasDraft, err := h.usecase.Delete(c.Request.Context(), code)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DeleteResponse{Deleted: true, WasDraft: wasDraft, ProjectCode: code})
}

func (h *ProjectHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetDailyIndex returns the next free project-index letter for a date +
// initials pair. Read-only: nothing is reserved.
func (h *ProjectHandler) GetDailyIndex(c *gin.Context) {
	date := c.Query("data")
	initials := c.Query("iniciais")

	index, err := h.allocator.NextDailyIndex(c.Request.Context(), date, initials)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DailyIndexResponse{Date: date, Initials: initials, Index: index})
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectCode),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidInitials):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectAlreadyExists):
		return pkg.NewDomainErrorSimple("PROJECT_ALREADY_EXISTS", "A project with this code already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDailyIndexExhausted):
		return pkg.NewDomainErrorSimple("DAILY_INDEX_EXHAUSTED", "All daily project indices are taken for this date", http.StatusConflict)
	case errors.Is(err, usecase.ErrCatalogCodeExhausted):
		return pkg.NewDomainErrorSimple("CATALOG_EXHAUSTED", "Catalog code space exhausted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
