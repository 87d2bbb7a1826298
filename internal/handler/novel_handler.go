package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wqy7711/e-novel-api/internal/model"
	"github.com/wqy7711/e-novel-api/internal/repository"
	"github.com/wqy7711/e-novel-api/internal/service"
)

type NovelHandler struct {
	service service.NovelService
}

func NewNovelHandler(service service.NovelService) *NovelHandler {
	return &NovelHandler{service: service}
}

func (h *NovelHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/novels", h.List)
	g.GET("/novels/:novelId", h.GetByID)
	g.POST("/novels", h.Create)
	g.PATCH("/novels/:novelId", h.Update)
}

type novelResponse struct {
	NovelID     string  `json:"novelId"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	Published   bool    `json:"published"`
	PageCount   int     `json:"pageCount"`
	Rating      float64 `json:"rating"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type novelListResponse struct {
	Data  []novelResponse `json:"data"`
	Count int             `json:"count"`
}

type createNovelRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	Published   bool    `json:"published"`
	PageCount   int     `json:"pageCount"`
	Rating      float64 `json:"rating"`
}

type updateNovelRequest struct {
	NovelID     *string  `json:"novelId,omitempty"`
	Title       *string  `json:"title,omitempty"`
	Author      *string  `json:"author,omitempty"`
	Description *string  `json:"description,omitempty"`
	Genre       *string  `json:"genre,omitempty"`
	Published   *bool    `json:"published,omitempty"`
	PageCount   *int     `json:"pageCount,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

// List returns the novel catalog.
// @Summary List novels
// @Description Get all novels with optional author, genre and published filters
// @Tags novels
// @Produce json
// @Param author query string false "Filter by author"
// @Param genre query string false "Filter by genre"
// @Param published query bool false "Filter by published flag"
// @Success 200 {object} novelListResponse
// @Failure 500 {object} errorResponse
// @Router /novels [get]
func (h *NovelHandler) List(c echo.Context) error {
	var params service.NovelListParams

	if raw := c.QueryParam("author"); raw != "" {
		params.Author = &raw
	}
	if raw := c.QueryParam("genre"); raw != "" {
		params.Genre = &raw
	}
	if raw := c.QueryParam("published"); raw != "" {
		published := raw == "true"
		params.Published = &published
	}

	novels, err := h.service.List(c.Request().Context(), params)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := novelListResponse{
		Data:  make([]novelResponse, len(novels)),
		Count: len(novels),
	}
	for i, n := range novels {
		response.Data[i] = toNovelResponse(n)
	}
	return c.JSON(http.StatusOK, response)
}

// GetByID returns a single novel.
// @Summary Get novel
// @Description Get a single novel by its ID
// @Tags novels
// @Produce json
// @Param novelId path string true "Novel ID"
// @Success 200 {object} novelResponse
// @Failure 404 {object} errorResponse
// @Router /novels/{novelId} [get]
func (h *NovelHandler) GetByID(c echo.Context) error {
	novel, err := h.service.GetByID(c.Request().Context(), c.Param("novelId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toNovelResponse(novel))
}

// Create adds a novel to the catalog.
// @Summary Create novel
// @Description Create a new novel; the ID is assigned by the server
// @Tags novels
// @Accept json
// @Produce json
// @Param request body createNovelRequest true "Novel attributes"
// @Success 201 {object} novelResponse
// @Failure 400 {object} errorResponse
// @Router /novels [post]
func (h *NovelHandler) Create(c echo.Context) error {
	var req createNovelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	novel, err := h.service.Create(c.Request().Context(), service.NovelInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Genre:       req.Genre,
		Published:   req.Published,
		PageCount:   req.PageCount,
		Rating:      req.Rating,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toNovelResponse(novel))
}

// Update applies a partial update to a novel.
// @Summary Update novel
// @Description Update a subset of a novel's fields; text changes invalidate cached translations
// @Tags novels
// @Accept json
// @Produce json
// @Param novelId path string true "Novel ID"
// @Param request body updateNovelRequest true "Fields to update"
// @Success 200 {object} novelResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /novels/{novelId} [patch]
func (h *NovelHandler) Update(c echo.Context) error {
	novelID := c.Param("novelId")

	var req updateNovelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	if req.NovelID != nil && *req.NovelID != novelID {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "novel ID in body does not match path parameter"})
	}

	novel, err := h.service.Update(c.Request().Context(), novelID, repository.NovelDelta{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Genre:       req.Genre,
		Published:   req.Published,
		PageCount:   req.PageCount,
		Rating:      req.Rating,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toNovelResponse(novel))
}

func toNovelResponse(n model.Novel) novelResponse {
	return novelResponse{
		NovelID:     n.NovelID,
		Title:       n.Title,
		Author:      n.Author,
		Description: n.Description,
		Genre:       n.Genre,
		Published:   n.Published,
		PageCount:   n.PageCount,
		Rating:      n.Rating,
		CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   n.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
