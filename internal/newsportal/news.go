package newsportal

import (
	"context"
	"log/slog"

	"github.com/phdsports/news-portal/config"
	"github.com/phdsports/news-portal/internal/db"
	"github.com/phdsports/news-portal/internal/listing"
)

// Store is the read access to the article store. *db.Repository implements it.
type Store interface {
	Articles(ctx context.Context, filter db.ArticleFilter, limit, offset int) ([]db.Article, int, error)
	ArticleBySlug(ctx context.Context, slug string) (*db.Article, error)
	SlugByID(ctx context.Context, id int) (string, error)
	Slugs(ctx context.Context) ([]string, error)
	SitemapEntries(ctx context.Context) ([]db.SitemapEntry, error)
	FeaturedArticles(ctx context.Context) ([]db.Article, error)
	ArticlesByCategorySlug(ctx context.Context, slug string) ([]db.Article, error)
	ArticlesByTagSlug(ctx context.Context, slug string) ([]db.Article, error)
	SearchArticles(ctx context.Context, term string, limit int) ([]db.Article, error)
	LatestArticlesExcept(ctx context.Context, id, limit int) ([]db.Article, error)
	Categories(ctx context.Context) ([]db.Category, error)
	Tags(ctx context.Context) ([]db.Tag, error)
}

var _ Store = (*db.Repository)(nil)

// Manager answers article queries. Store faults never reach the caller: they are
// logged and the operation returns an empty result.
type Manager struct {
	db     Store
	cfg    config.Listing
	logger *slog.Logger
}

var _ listing.Fetcher[Article] = (*Manager)(nil)

func NewManager(store Store, cfg config.Listing, logger *slog.Logger) *Manager {
	return &Manager{
		db:     store,
		cfg:    cfg,
		logger: logger,
	}
}

func (m *Manager) fault(ctx context.Context, op string, err error, args ...any) {
	m.logger.ErrorContext(ctx, "store fault", append([]any{"op", op, "error", err}, args...)...)
}

// FetchPage returns one page of articles matching q, newest first.
func (m *Manager) FetchPage(ctx context.Context, q listing.Query) listing.Page[Article] {
	q = q.Normalize(m.cfg.MaxPageSize)

	filter := db.ArticleFilter{
		Category: q.CategoryFilter(),
		Search:   q.Search,
	}

	list, total, err := m.db.Articles(ctx, filter, q.PageSize, q.Offset())
	if err != nil {
		m.fault(ctx, "FetchPage", err, "query", q)
		return listing.Page[Article]{Items: []Article{}, PageSize: q.PageSize}
	}

	return listing.Page[Article]{Items: NewArticles(list), Total: total, PageSize: q.PageSize}
}

// FetchBySlug returns nil when the slug is unknown.
func (m *Manager) FetchBySlug(ctx context.Context, slug string) *Article {
	a, err := m.db.ArticleBySlug(ctx, slug)
	if err != nil {
		m.fault(ctx, "FetchBySlug", err, "slug", slug)
		return nil
	} else if a == nil {
		return nil
	}

	article := NewArticle(a)
	return &article
}

// ResolveLegacySlug maps a legacy numeric id to the article slug, or "" if unknown.
func (m *Manager) ResolveLegacySlug(ctx context.Context, id int) string {
	if id < 1 {
		return ""
	}

	slug, err := m.db.SlugByID(ctx, id)
	if err != nil {
		m.fault(ctx, "ResolveLegacySlug", err, "id", id)
		return ""
	}

	return slug
}

func (m *Manager) ListAllSlugs(ctx context.Context) []string {
	slugs, err := m.db.Slugs(ctx)
	if err != nil {
		m.fault(ctx, "ListAllSlugs", err)
		return []string{}
	}

	return slugs
}

func (m *Manager) ListCategories(ctx context.Context) []Category {
	list, err := m.db.Categories(ctx)
	if err != nil {
		m.fault(ctx, "ListCategories", err)
		return []Category{}
	}

	return NewCategories(list)
}

func (m *Manager) ListTags(ctx context.Context) []Tag {
	list, err := m.db.Tags(ctx)
	if err != nil {
		m.fault(ctx, "ListTags", err)
		return []Tag{}
	}

	return NewTags(list)
}

func (m *Manager) ListFeatured(ctx context.Context) []Article {
	list, err := m.db.FeaturedArticles(ctx)
	if err != nil {
		m.fault(ctx, "ListFeatured", err)
		return []Article{}
	}

	return NewArticles(list)
}

func (m *Manager) ListByCategorySlug(ctx context.Context, slug string) []Article {
	list, err := m.db.ArticlesByCategorySlug(ctx, slug)
	if err != nil {
		m.fault(ctx, "ListByCategorySlug", err, "slug", slug)
		return []Article{}
	}

	return NewArticles(list)
}

func (m *Manager) ListByTagSlug(ctx context.Context, slug string) []Article {
	list, err := m.db.ArticlesByTagSlug(ctx, slug)
	if err != nil {
		m.fault(ctx, "ListByTagSlug", err, "slug", slug)
		return []Article{}
	}

	return NewArticles(list)
}

// Search returns at most SearchLimit articles matching term, newest first.
func (m *Manager) Search(ctx context.Context, term string) []Article {
	list, err := m.db.SearchArticles(ctx, term, m.cfg.SearchLimit)
	if err != nil {
		m.fault(ctx, "Search", err, "term", term)
		return []Article{}
	}

	return NewArticles(list)
}

// Related returns the latest articles other than the one with the given id.
func (m *Manager) Related(ctx context.Context, id int) []Article {
	list, err := m.db.LatestArticlesExcept(ctx, id, m.cfg.RelatedCount)
	if err != nil {
		m.fault(ctx, "Related", err, "id", id)
		return []Article{}
	}

	return NewArticles(list)
}

func (m *Manager) SitemapEntries(ctx context.Context) []SitemapEntry {
	list, err := m.db.SitemapEntries(ctx)
	if err != nil {
		m.fault(ctx, "SitemapEntries", err)
		return []SitemapEntry{}
	}

	return NewSitemapEntries(list)
}
