package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tradeseed/internal/domain/dto"
	"github.com/guttosm/tradeseed/internal/middleware"
	"github.com/guttosm/tradeseed/internal/service"
	"github.com/guttosm/tradeseed/internal/storage"
)

// Handler provides HTTP handlers for the collection endpoints.
//
// Responsibilities:
//   - Validate path parameters and request bodies
//   - Delegate to the collection service
//   - Map service and storage errors to HTTP status codes
type Handler struct {
	svc service.CollectionService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.CollectionService) *Handler {
	return &Handler{svc: svc}
}

// ListCollections godoc
// @Summary      List collections
// @Description  Returns the names of every seeded collection
// @Tags         collections
// @Produce      json
// @Success      200  {object}  dto.CollectionsResponse
// @Router       /api/v1/collections [get]
func (h *Handler) ListCollections(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CollectionsResponse{Collections: h.svc.Collections()})
}

// List godoc
// @Summary      Find all documents
// @Description  Returns every document stored in the collection
// @Tags         collections
// @Produce      json
// @Param        collection  path      string  true  "Collection name" example(market_data)
// @Success      200         {array}   object
// @Failure      404         {object}  dto.ErrorResponse  "Unknown collection"
// @Failure      500         {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/collections/{collection} [get]
func (h *Handler) List(c *gin.Context) {
	docs, err := h.svc.List(c.Request.Context(), c.Param("collection"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Get godoc
// @Summary      Find document by position
// @Description  Returns the document at a zero-based position in natural order
// @Tags         collections
// @Produce      json
// @Param        collection  path      string   true  "Collection name" example(agents)
// @Param        position    path      integer  true  "Zero-based position" example(0)
// @Success      200         {object}  object
// @Failure      400         {object}  dto.ErrorResponse  "Invalid position"
// @Failure      404         {object}  dto.ErrorResponse  "Unknown collection or position out of range"
// @Failure      500         {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/collections/{collection}/{position} [get]
func (h *Handler) Get(c *gin.Context) {
	// ─── Parse position ───────────────────────────────────────
	position, err := strconv.ParseInt(c.Param("position"), 10, 64)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "position must be an integer", err)
		return
	}

	// ─── Query service (with request context) ─────────────────
	doc, err := h.svc.Get(c.Request.Context(), c.Param("collection"), position)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Create godoc
// @Summary      Insert document
// @Description  Stores one JSON object in the collection and returns its identifier
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        collection  path      string  true  "Collection name" example(trading_alerts)
// @Param        document    body      object  true  "Document to insert"
// @Success      201         {object}  dto.CreatedResponse
// @Failure      400         {object}  dto.ErrorResponse  "Invalid JSON"
// @Failure      404         {object}  dto.ErrorResponse  "Unknown collection"
// @Failure      500         {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/collections/{collection} [post]
func (h *Handler) Create(c *gin.Context) {
	// ─── Decode body ──────────────────────────────────────────
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "body must be a JSON object", err)
		return
	}
	if doc == nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "body must be a JSON object", nil)
		return
	}

	// ─── Insert ───────────────────────────────────────────────
	id, err := h.svc.Create(c.Request.Context(), c.Param("collection"), doc)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownCollection):
		middleware.AbortWithError(c, http.StatusNotFound, "collection not found", err)
	case errors.Is(err, storage.ErrNotFound):
		middleware.AbortWithError(c, http.StatusNotFound, "document not found", err)
	case errors.Is(err, service.ErrInvalidPosition):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid position", err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to access collection", err)
	}
}
