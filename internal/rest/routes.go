package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	apiV1Prefix = "/api/v1"

	articlePathPrefix = "/article/"
	// legacyArticlePathPrefix is the path articles were served under before /article/.
	legacyArticlePathPrefix = "/noticia/"

	rpcPath     = "/v1/rpc/"
	healthPath  = "/health"
	sitemapPath = "/sitemap.xml"
)

// RegisterRoutes builds the echo engine with every route. rpc is mounted at /v1/rpc/
// when not nil.
func (h *NewsHandler) RegisterRoutes(rpc http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(h.log)

	e.Use(middleware.Recover())
	e.Use(requestID())
	e.Use(requestLogger(h.log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: h.app.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
	}))

	api := e.Group(apiV1Prefix)
	api.GET("/articles", h.Articles)
	api.GET("/articles/featured", h.Featured)
	api.GET("/articles/search", h.Search)
	api.GET("/articles/by-slug/:slug", h.ArticleBySlug)
	api.GET("/slugs", h.Slugs)
	api.GET("/legacy/:id", h.LegacySlug)
	api.GET("/categories", h.Categories)
	api.GET("/categories/:slug/articles", h.CategoryArticles)
	api.GET("/tags", h.Tags)
	api.GET("/tags/:slug/articles", h.TagArticles)

	e.GET(articlePathPrefix+":slug", h.ArticlePage)
	e.GET(legacyArticlePathPrefix+":slug", h.ArticlePage)
	e.GET(sitemapPath, h.Sitemap)
	e.GET(healthPath, h.Health)

	if rpc != nil {
		e.Any(rpcPath, echo.WrapHandler(rpc))
	}

	return e
}
