package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/adworks/marketing-backend/internal/model"
	"github.com/adworks/marketing-backend/internal/repository"
	"github.com/adworks/marketing-backend/internal/service"
	"github.com/adworks/marketing-backend/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContentHandler serves the blog, infographic and article route sets. The
// three sets share one implementation parameterized by kind.
type ContentHandler struct {
	content *service.ContentService
	log     zerolog.Logger
}

func NewContentHandler(content *service.ContentService, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{content: content, log: log}
}

type createContentRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// Create handles POST /api/addblog and its infographic/article twins.
func (h *ContentHandler) Create(kind model.ContentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createContentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
			return
		}

		item := &model.ContentItem{
			Title:    req.Title,
			Category: req.Category,
			Content:  req.Content,
			ImageURL: req.ImageURL,
		}

		created, err := h.content.Create(c.Request.Context(), kind, item)
		if err != nil {
			if errors.Is(err, service.ErrValidation) {
				c.JSON(http.StatusBadRequest, model.NewErrorResponse("Title, category, and content are required", ""))
				return
			}
			h.log.Error().Err(err).Str("kind", string(kind)).Msg("insert content failed")
			c.JSON(http.StatusInternalServerError, model.NewErrorResponse(fmt.Sprintf("Error inserting %s", kind), ""))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("%s created successfully", kind.Label()),
			"post":    created,
		})
	}
}

// List handles GET /api/getblogs and twins.
func (h *ContentHandler) List(kind model.ContentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.content.List(c.Request.Context(), kind)
		if err != nil {
			h.log.Error().Err(err).Str("kind", string(kind)).Msg("list content failed")
			c.JSON(http.StatusInternalServerError, model.NewErrorResponse(fmt.Sprintf("Error fetching %s posts", kind), ""))
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// Get handles GET /api/blog/:id and twins.
func (h *ContentHandler) Get(kind model.ContentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := util.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid id format", err.Error()))
			return
		}

		item, err := h.content.Get(c.Request.Context(), kind, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, model.NewErrorResponse(fmt.Sprintf("%s not found", kind.Label()), ""))
				return
			}
			h.log.Error().Err(err).Str("kind", string(kind)).Msg("get content failed")
			c.JSON(http.StatusInternalServerError, model.NewErrorResponse(fmt.Sprintf("Error retrieving %s", kind), ""))
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// Update handles PUT /api/updateBlog/:id and twins. Replace semantics:
// fields omitted from the payload overwrite the stored values with empty
// strings.
func (h *ContentHandler) Update(kind model.ContentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := util.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid id format", err.Error()))
			return
		}

		var upd model.ContentUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
			return
		}

		if _, err := h.content.Update(c.Request.Context(), kind, id, upd); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, model.NewErrorResponse(fmt.Sprintf("%s not found", kind.Label()), ""))
				return
			}
			h.log.Error().Err(err).Str("kind", string(kind)).Msg("update content failed")
			c.String(http.StatusInternalServerError, "Error updating %s", kind)
			return
		}

		c.String(http.StatusOK, "%s updated successfully", kind.Label())
	}
}

// Delete handles DELETE /api/deleteBlog/:id and twins.
func (h *ContentHandler) Delete(kind model.ContentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := util.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid id format", err.Error()))
			return
		}

		if err := h.content.Delete(c.Request.Context(), kind, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, model.NewErrorResponse(fmt.Sprintf("%s not found", kind.Label()), ""))
				return
			}
			h.log.Error().Err(err).Str("kind", string(kind)).Msg("delete content failed")
			c.String(http.StatusInternalServerError, "Error deleting %s", kind)
			return
		}

		c.String(http.StatusOK, "%s deleted successfully", kind.Label())
	}
}
