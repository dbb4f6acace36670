package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"tech-share/domain"
	"tech-share/port"
	"tech-share/utils/validator"
)

// ArticleHandler handles article HTTP requests
type ArticleHandler struct {
	createUsecase   port.CreateArticleUsecase
	updateUsecase   port.UpdateArticleUsecase
	deleteUsecase   port.DeleteArticleUsecase
	findUsecase     port.FindArticleBySlugUsecase
	fetchUsecase    port.FetchArticlesUsecase
	fetchMyUsecase  port.FetchMyArticlesUsecase
	validator       *validator.Validator
	logger          *slog.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(
	createUsecase port.CreateArticleUsecase,
	updateUsecase port.UpdateArticleUsecase,
	deleteUsecase port.DeleteArticleUsecase,
	findUsecase port.FindArticleBySlugUsecase,
	fetchUsecase port.FetchArticlesUsecase,
	fetchMyUsecase port.FetchMyArticlesUsecase,
	logger *slog.Logger,
) *ArticleHandler {
	return &ArticleHandler{
		createUsecase:  createUsecase,
		updateUsecase:  updateUsecase,
		deleteUsecase:  deleteUsecase,
		findUsecase:    findUsecase,
		fetchUsecase:   fetchUsecase,
		fetchMyUsecase: fetchMyUsecase,
		validator:      validator.New(),
		logger:         logger,
	}
}

// CreateArticleRequest is the payload for article creation. Status defaults
// to published; slug is optional and auto-generated when absent.
type CreateArticleRequest struct {
	Title   string  `json:"title" validate:"required,max=255"`
	Content string  `json:"content" validate:"required"`
	Status  string  `json:"status" validate:"omitempty,article_status"`
	Slug    *string `json:"slug" validate:"omitempty,slug,max=20"`
}

// UpdateArticleRequest is the payload for an article update. A nil slug keeps
// the article's current slug.
type UpdateArticleRequest struct {
	Title   string  `json:"title" validate:"required,max=255"`
	Content string  `json:"content" validate:"required"`
	Status  string  `json:"status" validate:"required,article_status"`
	Slug    *string `json:"slug" validate:"omitempty,slug,max=255"`
}

// ArticleResponse is the serialized article
type ArticleResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	ViewCount int       `json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleListResponse is one page of articles
type ArticleListResponse struct {
	Articles   []ArticleResponse `json:"articles"`
	Page       int               `json:"page"`
	PerPage    int               `json:"perPage"`
	Total      int               `json:"total"`
	TotalPages int               `json:"totalPages"`
}

// Create handles POST /v1/articles
func (h *ArticleHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	var req CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, h.logger, err)
	}

	status := domain.ArticleStatusPublished
	if req.Status != "" {
		status = domain.ArticleStatus(req.Status)
	}

	article, err := h.createUsecase.Execute(ctx, port.CreateArticleInput{
		UserID:  user.UserID,
		Title:   req.Title,
		Content: req.Content,
		Status:  status,
		Slug:    req.Slug,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, toArticleResponse(article))
}

// List handles GET /v1/articles
func (h *ArticleHandler) List(c echo.Context) error {
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", domain.DefaultPerPage)

	result, err := h.fetchUsecase.Execute(c.Request().Context(), page, perPage)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, toArticleListResponse(result))
}

// GetBySlug handles GET /v1/articles/:slug
func (h *ArticleHandler) GetBySlug(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	// Anonymous readers get user ID zero; drafts then fail the view check.
	var userID int64
	if user, err := domain.GetUserFromContext(ctx); err == nil {
		userID = user.UserID
	}

	article, err := h.findUsecase.Execute(ctx, slug, userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, toArticleResponse(article))
}

// Update handles PUT /v1/articles/:id
func (h *ArticleHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid article id"})
	}

	var req UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, h.logger, err)
	}

	article, err := h.updateUsecase.Execute(ctx, port.UpdateArticleInput{
		ID:      id,
		UserID:  user.UserID,
		Title:   req.Title,
		Content: req.Content,
		Status:  domain.ArticleStatus(req.Status),
		Slug:    req.Slug,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, toArticleResponse(article))
}

// Delete handles DELETE /v1/articles/:id
func (h *ArticleHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid article id"})
	}

	if err := h.deleteUsecase.Execute(ctx, id, user.UserID); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMine handles GET /v1/my/articles
func (h *ArticleHandler) ListMine(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", domain.DefaultPerPage)

	var status *domain.ArticleStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed, ok := domain.ParseArticleStatus(raw)
		if !ok {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status filter"})
		}
		status = &parsed
	}

	result, err := h.fetchMyUsecase.Execute(ctx, user.UserID, page, perPage, status)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, toArticleListResponse(result))
}

// Helpers

func toArticleResponse(article *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:        article.ID,
		UserID:    article.UserID,
		Title:     article.Title,
		Slug:      article.Slug,
		Content:   article.Content,
		Status:    string(article.Status),
		ViewCount: article.ViewCount,
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
}

func toArticleListResponse(page *domain.ArticlePage) ArticleListResponse {
	articles := make([]ArticleResponse, 0, len(page.Articles))
	for i := range page.Articles {
		articles = append(articles, toArticleResponse(&page.Articles[i]))
	}
	return ArticleListResponse{
		Articles:   articles,
		Page:       page.Page,
		PerPage:    page.PerPage,
		Total:      int(page.Total),
		TotalPages: page.TotalPages(),
	}
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
