package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"apen/internal/application/content/usecases"
	"apen/internal/shared/i18n"
	"apen/internal/shared/logger"
	"apen/internal/shared/utils"
)

// ContentHandler handles HTTP requests for posts and services
type ContentHandler struct {
	listPostsUC    *usecases.ListPostsUseCase
	getPostUC      *usecases.GetPostUseCase
	listServicesUC *usecases.ListServicesUseCase
	getServiceUC   *usecases.GetServiceUseCase
	logger         logger.Interface
}

// NewContentHandler creates a new content handler
func NewContentHandler(
	listPostsUC *usecases.ListPostsUseCase,
	getPostUC *usecases.GetPostUseCase,
	listServicesUC *usecases.ListServicesUseCase,
	getServiceUC *usecases.GetServiceUseCase,
	log logger.Interface,
) *ContentHandler {
	return &ContentHandler{
		listPostsUC:    listPostsUC,
		getPostUC:      getPostUC,
		listServicesUC: listServicesUC,
		getServiceUC:   getServiceUC,
		logger:         log,
	}
}

// language reads the optional lang query parameter, defaulting to Spanish.
func language(c *gin.Context) i18n.Language {
	return i18n.Parse(c.Query("lang"))
}

// ListPosts handles GET /api/posts
func (h *ContentHandler) ListPosts(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = parsed
	}

	posts, err := h.listPostsUC.Execute(c.Request.Context(), language(c), limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", posts)
}

// GetPost handles GET /api/posts/:slug
func (h *ContentHandler) GetPost(c *gin.Context) {
	post, err := h.getPostUC.Execute(c.Request.Context(), c.Param("slug"), language(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", post)
}

// ListServices handles GET /api/services
func (h *ContentHandler) ListServices(c *gin.Context) {
	services, err := h.listServicesUC.Execute(c.Request.Context(), language(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", services)
}

// GetService handles GET /api/services/:slug
func (h *ContentHandler) GetService(c *gin.Context) {
	service, err := h.getServiceUC.Execute(c.Request.Context(), c.Param("slug"), language(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", service)
}
