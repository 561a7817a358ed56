package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/phdsports/news-portal/config"
	"github.com/phdsports/news-portal/internal/listing"
	"github.com/phdsports/news-portal/internal/newsportal"
	"github.com/phdsports/news-portal/internal/render"
)

// NewsService is the article query surface used by the handlers. *newsportal.Manager
// implements it.
type NewsService interface {
	FetchPage(ctx context.Context, q listing.Query) listing.Page[newsportal.Article]
	FetchBySlug(ctx context.Context, slug string) *newsportal.Article
	ResolveLegacySlug(ctx context.Context, id int) string
	ListAllSlugs(ctx context.Context) []string
	ListCategories(ctx context.Context) []newsportal.Category
	ListTags(ctx context.Context) []newsportal.Tag
	ListFeatured(ctx context.Context) []newsportal.Article
	ListByCategorySlug(ctx context.Context, slug string) []newsportal.Article
	ListByTagSlug(ctx context.Context, slug string) []newsportal.Article
	Search(ctx context.Context, term string) []newsportal.Article
	Related(ctx context.Context, id int) []newsportal.Article
	SitemapEntries(ctx context.Context) []newsportal.SitemapEntry
}

var _ NewsService = (*newsportal.Manager)(nil)

type ArticlesRequest struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	Page     *int   `query:"page"`
	PageSize *int   `query:"pageSize"`
}

type SearchRequest struct {
	Query string `query:"q"`
}

type NewsHandler struct {
	svc     NewsService
	app     config.App
	listing config.Listing
	log     *slog.Logger
}

func NewNewsHandler(svc NewsService, app config.App, listing config.Listing, log *slog.Logger) *NewsHandler {
	return &NewsHandler{
		svc:     svc,
		app:     app,
		listing: listing,
		log:     log,
	}
}

// Articles handles GET /api/v1/articles
// @Summary List articles
// @Description Returns one page of articles, newest first, filtered by category name and a case-insensitive search over title, summary and body
// @Tags articles
// @Produce json
// @Param category query string false "Category name, \"all\" or empty for every category"
// @Param search query string false "Search term"
// @Param page query int false "Zero-based page index (default: 0)"
// @Param pageSize query int false "Page size (default: 6)"
// @Success 200 {object} rest.ArticlePage
// @Failure 400 {object} map[string]string
// @Router /api/v1/articles [get]
func (h *NewsHandler) Articles(c echo.Context) error {
	var req ArticlesRequest
	if err := c.Bind(&req); err != nil {
		return NewValidation("invalid request parameters", err)
	}

	q := listing.Query{
		Category: req.Category,
		Search:   req.Search,
		PageSize: h.listing.DefaultPageSize,
	}
	if req.Page != nil {
		q.Page = *req.Page
	}
	if req.PageSize != nil {
		q.PageSize = *req.PageSize
	}
	q = q.Normalize(h.listing.MaxPageSize)

	page := h.svc.FetchPage(c.Request().Context(), q)

	return c.JSON(http.StatusOK, ArticlePage{
		Items:    NewArticles(page.Items),
		Total:    page.Total,
		Page:     q.Page,
		PageSize: q.PageSize,
		HasMore:  listing.HasMore(q.Page, q.PageSize, page.Total),
	})
}

// Featured handles GET /api/v1/articles/featured
// @Summary List featured articles
// @Tags articles
// @Produce json
// @Success 200 {array} rest.Article
// @Router /api/v1/articles/featured [get]
func (h *NewsHandler) Featured(c echo.Context) error {
	return c.JSON(http.StatusOK, NewArticles(h.svc.ListFeatured(c.Request().Context())))
}

// Search handles GET /api/v1/articles/search
// @Summary Search articles
// @Tags articles
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} rest.Article
// @Router /api/v1/articles/search [get]
func (h *NewsHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return NewValidation("invalid request parameters", err)
	}

	return c.JSON(http.StatusOK, NewArticles(h.svc.Search(c.Request().Context(), req.Query)))
}

// ArticleBySlug handles GET /api/v1/articles/by-slug/:slug
// @Summary Get article by slug
// @Description Returns the article with its body rendered to HTML and the latest other articles
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} rest.ArticleDetail
// @Failure 404 {object} map[string]string
// @Router /api/v1/articles/by-slug/{slug} [get]
func (h *NewsHandler) ArticleBySlug(c echo.Context) error {
	detail := h.articleDetail(c.Request().Context(), c.Param("slug"))
	if detail == nil {
		return echo.NewHTTPError(http.StatusNotFound, "article not found")
	}

	return c.JSON(http.StatusOK, detail)
}

// ArticlePage handles GET /article/:slug. A numeric slug is a legacy id and is
// redirected permanently to the canonical slug path when it resolves.
func (h *NewsHandler) ArticlePage(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	if id, ok := legacyID(slug); ok {
		if canonical := h.svc.ResolveLegacySlug(ctx, id); canonical != "" {
			prefix := strings.TrimSuffix(c.Path(), ":slug")
			return c.Redirect(http.StatusMovedPermanently, prefix+canonical)
		}
	}

	detail := h.articleDetail(ctx, slug)
	if detail == nil {
		return echo.NewHTTPError(http.StatusNotFound, "article not found")
	}

	return c.JSON(http.StatusOK, detail)
}

func (h *NewsHandler) articleDetail(ctx context.Context, slug string) *ArticleDetail {
	article := h.svc.FetchBySlug(ctx, slug)
	if article == nil {
		return nil
	}

	return &ArticleDetail{
		Article:  NewArticle(*article),
		BodyHTML: render.Body(article.Body),
		Related:  NewArticles(h.svc.Related(ctx, article.ID)),
	}
}

// Slugs handles GET /api/v1/slugs
// @Summary List every article slug
// @Tags articles
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/slugs [get]
func (h *NewsHandler) Slugs(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListAllSlugs(c.Request().Context()))
}

// LegacySlug handles GET /api/v1/legacy/:id
// @Summary Resolve a legacy numeric id
// @Tags articles
// @Produce json
// @Param id path int true "Legacy article id"
// @Success 200 {object} rest.LegacySlug
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/legacy/{id} [get]
func (h *NewsHandler) LegacySlug(c echo.Context) error {
	id, ok := legacyID(c.Param("id"))
	if !ok {
		return NewValidation("invalid id", nil)
	}

	slug := h.svc.ResolveLegacySlug(c.Request().Context(), id)
	if slug == "" {
		return echo.NewHTTPError(http.StatusNotFound, "article not found")
	}

	return c.JSON(http.StatusOK, LegacySlug{ID: id, Slug: slug})
}

// Categories handles GET /api/v1/categories
// @Summary List categories
// @Description Returns all categories ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Router /api/v1/categories [get]
func (h *NewsHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.svc.ListCategories(c.Request().Context()), NewCategory))
}

// CategoryArticles handles GET /api/v1/categories/:slug/articles
// @Summary List articles of a category
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {array} rest.Article
// @Router /api/v1/categories/{slug}/articles [get]
func (h *NewsHandler) CategoryArticles(c echo.Context) error {
	return c.JSON(http.StatusOK, NewArticles(h.svc.ListByCategorySlug(c.Request().Context(), c.Param("slug"))))
}

// Tags handles GET /api/v1/tags
// @Summary List tags
// @Description Returns all tags ordered by name
// @Tags tags
// @Produce json
// @Success 200 {array} rest.Tag
// @Router /api/v1/tags [get]
func (h *NewsHandler) Tags(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.svc.ListTags(c.Request().Context()), NewTag))
}

// TagArticles handles GET /api/v1/tags/:slug/articles
// @Summary List articles with a tag
// @Tags tags
// @Produce json
// @Param slug path string true "Tag slug"
// @Success 200 {array} rest.Article
// @Router /api/v1/tags/{slug}/articles [get]
func (h *NewsHandler) TagArticles(c echo.Context) error {
	return c.JSON(http.StatusOK, NewArticles(h.svc.ListByTagSlug(c.Request().Context(), c.Param("slug"))))
}

func (h *NewsHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// legacyID parses a path segment made only of ASCII digits.
func legacyID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return id, true
}
