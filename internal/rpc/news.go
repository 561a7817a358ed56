package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/phdsports/news-portal/config"
	"github.com/phdsports/news-portal/internal/listing"
	"github.com/phdsports/news-portal/internal/newsportal"
)

// ArticleService is the article query surface exposed over RPC. *newsportal.Manager
// implements it.
type ArticleService interface {
	FetchPage(ctx context.Context, q listing.Query) listing.Page[newsportal.Article]
	FetchBySlug(ctx context.Context, slug string) *newsportal.Article
	ResolveLegacySlug(ctx context.Context, id int) string
	ListAllSlugs(ctx context.Context) []string
	ListCategories(ctx context.Context) []newsportal.Category
	ListTags(ctx context.Context) []newsportal.Tag
}

var _ ArticleService = (*newsportal.Manager)(nil)

// NewsService provides RPC methods for article listing and lookup.
type NewsService struct {
	zenrpc.Service
	svc ArticleService
	cfg config.Listing
}

func NewNewsService(svc ArticleService, cfg config.Listing) *NewsService {
	return &NewsService{svc: svc, cfg: cfg}
}

// List returns one page of articles, newest first, filtered by category name and search term.
//
//zenrpc:filter listing filter
//zenrpc:return page of article summaries
func (s *NewsService) List(ctx context.Context, filter ListFilter) ArticlePage {
	q := listing.Query{
		Category: filter.Category,
		Search:   filter.Search,
		PageSize: s.cfg.DefaultPageSize,
	}
	if filter.Page != nil {
		q.Page = *filter.Page
	}
	if filter.PageSize != nil {
		q.PageSize = *filter.PageSize
	}
	q = q.Normalize(s.cfg.MaxPageSize)

	page := s.svc.FetchPage(ctx, q)

	return ArticlePage{
		Items:    Map(page.Items, NewArticleSummary),
		Total:    page.Total,
		Page:     q.Page,
		PageSize: q.PageSize,
		HasMore:  listing.HasMore(q.Page, q.PageSize, page.Total),
	}
}

// BySlug retrieves a single article with its rendered body.
//
//zenrpc:slug article slug
//zenrpc:return article with full body
//zenrpc:400 slug is required
//zenrpc:404 article not found
func (s *NewsService) BySlug(ctx context.Context, slug string) (*Article, error) {
	if slug == "" {
		return nil, zenrpc.NewStringError(400, "slug is required")
	}

	a := s.svc.FetchBySlug(ctx, slug)
	if a == nil {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	article := NewArticle(*a)
	return &article, nil
}

// LegacySlug resolves the slug of a legacy numeric article id.
//
//zenrpc:id legacy article id
//zenrpc:return article slug
//zenrpc:400 id must be positive
//zenrpc:404 article not found
func (s *NewsService) LegacySlug(ctx context.Context, id int) (string, error) {
	if id <= 0 {
		return "", zenrpc.NewStringError(400, "id must be positive")
	}

	slug := s.svc.ResolveLegacySlug(ctx, id)
	if slug == "" {
		return "", zenrpc.NewStringError(404, "article not found")
	}

	return slug, nil
}

// Slugs returns the slug of every article.
//
//zenrpc:return list of slugs
func (s *NewsService) Slugs(ctx context.Context) []string {
	return s.svc.ListAllSlugs(ctx)
}

// Categories returns all categories ordered by name.
//
//zenrpc:return list of categories
func (s *NewsService) Categories(ctx context.Context) []Category {
	return Map(s.svc.ListCategories(ctx), NewCategory)
}

// Tags returns all tags ordered by name.
//
//zenrpc:return list of tags
func (s *NewsService) Tags(ctx context.Context) []Tag {
	return Map(s.svc.ListTags(ctx), NewTag)
}
