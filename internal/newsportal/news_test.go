package newsportal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phdsports/news-portal/config"
	"github.com/phdsports/news-portal/internal/db"
	"github.com/phdsports/news-portal/internal/listing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("connection refused")

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

func testListing() config.Listing {
	return config.Listing{
		DefaultPageSize: 6,
		MaxPageSize:     100,
		SearchLimit:     20,
		RelatedCount:    3,
	}
}

// stubStore is a manual stub of Store; unset funcs return empty results.
type stubStore struct {
	articlesFunc       func(ctx context.Context, filter db.ArticleFilter, limit, offset int) ([]db.Article, int, error)
	articleBySlugFunc  func(ctx context.Context, slug string) (*db.Article, error)
	slugByIDFunc       func(ctx context.Context, id int) (string, error)
	slugsFunc          func(ctx context.Context) ([]string, error)
	sitemapFunc        func(ctx context.Context) ([]db.SitemapEntry, error)
	featuredFunc       func(ctx context.Context) ([]db.Article, error)
	byCategorySlugFunc func(ctx context.Context, slug string) ([]db.Article, error)
	byTagSlugFunc      func(ctx context.Context, slug string) ([]db.Article, error)
	searchFunc         func(ctx context.Context, term string, limit int) ([]db.Article, error)
	latestExceptFunc   func(ctx context.Context, id, limit int) ([]db.Article, error)
	categoriesFunc     func(ctx context.Context) ([]db.Category, error)
	tagsFunc           func(ctx context.Context) ([]db.Tag, error)
}

func (s *stubStore) Articles(ctx context.Context, filter db.ArticleFilter, limit, offset int) ([]db.Article, int, error) {
	if s.articlesFunc != nil {
		return s.articlesFunc(ctx, filter, limit, offset)
	}
	return nil, 0, nil
}

func (s *stubStore) ArticleBySlug(ctx context.Context, slug string) (*db.Article, error) {
	if s.articleBySlugFunc != nil {
		return s.articleBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (s *stubStore) SlugByID(ctx context.Context, id int) (string, error) {
	if s.slugByIDFunc != nil {
		return s.slugByIDFunc(ctx, id)
	}
	return "", nil
}

func (s *stubStore) Slugs(ctx context.Context) ([]string, error) {
	if s.slugsFunc != nil {
		return s.slugsFunc(ctx)
	}
	return nil, nil
}

func (s *stubStore) SitemapEntries(ctx context.Context) ([]db.SitemapEntry, error) {
	if s.sitemapFunc != nil {
		return s.sitemapFunc(ctx)
	}
	return nil, nil
}

func (s *stubStore) FeaturedArticles(ctx context.Context) ([]db.Article, error) {
	if s.featuredFunc != nil {
		return s.featuredFunc(ctx)
	}
	return nil, nil
}

func (s *stubStore) ArticlesByCategorySlug(ctx context.Context, slug string) ([]db.Article, error) {
	if s.byCategorySlugFunc != nil {
		return s.byCategorySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (s *stubStore) ArticlesByTagSlug(ctx context.Context, slug string) ([]db.Article, error) {
	if s.byTagSlugFunc != nil {
		return s.byTagSlugFunc(ctx, slug)
	}
	return nil, nil
}

func (s *stubStore) SearchArticles(ctx context.Context, term string, limit int) ([]db.Article, error) {
	if s.searchFunc != nil {
		return s.searchFunc(ctx, term, limit)
	}
	return nil, nil
}

func (s *stubStore) LatestArticlesExcept(ctx context.Context, id, limit int) ([]db.Article, error) {
	if s.latestExceptFunc != nil {
		return s.latestExceptFunc(ctx, id, limit)
	}
	return nil, nil
}

func (s *stubStore) Categories(ctx context.Context) ([]db.Category, error) {
	if s.categoriesFunc != nil {
		return s.categoriesFunc(ctx)
	}
	return nil, nil
}

func (s *stubStore) Tags(ctx context.Context) ([]db.Tag, error) {
	if s.tagsFunc != nil {
		return s.tagsFunc(ctx)
	}
	return nil, nil
}

func testArticle(id int, slug string) db.Article {
	categoryID := 3
	return db.Article{
		ID:          id,
		Slug:        slug,
		Title:       "Academia conectada",
		Summary:     "Resumo",
		Body:        "## Inovação\n\nTexto",
		Category:    "Tecnologia",
		CategoryID:  &categoryID,
		Author:      "Redação PHD",
		PublishedOn: time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
		CategoryRef: &db.Category{ID: categoryID, Name: "Tecnologia", Slug: "tecnologia", Color: "#0050ff"},
		Tags:        []db.Tag{{ID: 1, Name: "Fitness", Slug: "fitness"}},
	}
}

func TestManager_FetchPage(t *testing.T) {
	ctx := context.Background()

	t.Run("PassesFilterAndPagination", func(t *testing.T) {
		var (
			gotFilter        db.ArticleFilter
			gotLimit, gotOff int
		)
		store := &stubStore{
			articlesFunc: func(_ context.Context, filter db.ArticleFilter, limit, offset int) ([]db.Article, int, error) {
				gotFilter, gotLimit, gotOff = filter, limit, offset
				return []db.Article{testArticle(1, "a"), testArticle(2, "b")}, 9, nil
			},
		}
		m := NewManager(store, testListing(), noOpLogger())

		page := m.FetchPage(ctx, listing.Query{Category: "Tecnologia", Search: "  conectados ", Page: 1, PageSize: 6})

		assert.Equal(t, db.ArticleFilter{Category: "Tecnologia", Search: "conectados"}, gotFilter)
		assert.Equal(t, 6, gotLimit)
		assert.Equal(t, 6, gotOff)
		assert.Equal(t, 9, page.Total)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "a", page.Items[0].Slug)
	})

	t.Run("AllCategoriesDoesNotFilter", func(t *testing.T) {
		var gotFilter db.ArticleFilter
		store := &stubStore{
			articlesFunc: func(_ context.Context, filter db.ArticleFilter, _, _ int) ([]db.Article, int, error) {
				gotFilter = filter
				return nil, 0, nil
			},
		}
		m := NewManager(store, testListing(), noOpLogger())

		m.FetchPage(ctx, listing.Query{Category: listing.AllCategories, PageSize: 6})
		assert.Empty(t, gotFilter.Category)
	})

	t.Run("ClampsInvalidParameters", func(t *testing.T) {
		var gotLimit, gotOff int
		store := &stubStore{
			articlesFunc: func(_ context.Context, _ db.ArticleFilter, limit, offset int) ([]db.Article, int, error) {
				gotLimit, gotOff = limit, offset
				return nil, 0, nil
			},
		}
		m := NewManager(store, testListing(), noOpLogger())

		m.FetchPage(ctx, listing.Query{Page: -4, PageSize: 0})
		assert.Equal(t, 1, gotLimit)
		assert.Equal(t, 0, gotOff)

		page := m.FetchPage(ctx, listing.Query{Page: 2, PageSize: 1000})
		assert.Equal(t, 100, gotLimit)
		assert.Equal(t, 200, gotOff)
		assert.Equal(t, 100, page.PageSize)
	})

	t.Run("StoreFaultYieldsEmptyPageAndIsLogged", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		store := &stubStore{
			articlesFunc: func(context.Context, db.ArticleFilter, int, int) ([]db.Article, int, error) {
				return nil, 0, errStore
			},
		}
		m := NewManager(store, testListing(), logger)

		page := m.FetchPage(ctx, listing.Query{PageSize: 6})
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Zero(t, page.Total)
		assert.Contains(t, buf.String(), "op=FetchPage")
		assert.Contains(t, buf.String(), "connection refused")
	})
}

func TestManager_FetchBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		store := &stubStore{
			articleBySlugFunc: func(_ context.Context, slug string) (*db.Article, error) {
				a := testArticle(7, slug)
				return &a, nil
			},
		}
		m := NewManager(store, testListing(), noOpLogger())

		article := m.FetchBySlug(ctx, "academia-conectada")
		require.NotNil(t, article)
		assert.Equal(t, 7, article.ID)
		require.NotNil(t, article.CategoryRef)
		assert.Equal(t, "tecnologia", article.CategoryRef.Slug)
		require.Len(t, article.Tags, 1)
		assert.Equal(t, "Fitness", article.Tags[0].Name)
		assert.Nil(t, article.Article.CategoryRef)
		assert.Nil(t, article.Article.Tags)
	})

	t.Run("NotFound", func(t *testing.T) {
		m := NewManager(&stubStore{}, testListing(), noOpLogger())
		assert.Nil(t, m.FetchBySlug(ctx, "missing"))
	})

	t.Run("StoreFault", func(t *testing.T) {
		store := &stubStore{
			articleBySlugFunc: func(context.Context, string) (*db.Article, error) { return nil, errStore },
		}
		m := NewManager(store, testListing(), noOpLogger())
		assert.Nil(t, m.FetchBySlug(ctx, "academia-conectada"))
	})
}

func TestManager_ResolveLegacySlug(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{
		slugByIDFunc: func(_ context.Context, id int) (string, error) {
			switch id {
			case 42:
				return "phd-sports-chega-ao-parana", nil
			case 500:
				return "", errStore
			}
			return "", nil
		},
	}
	m := NewManager(store, testListing(), noOpLogger())

	assert.Equal(t, "phd-sports-chega-ao-parana", m.ResolveLegacySlug(ctx, 42))
	assert.Empty(t, m.ResolveLegacySlug(ctx, 99999))
	assert.Empty(t, m.ResolveLegacySlug(ctx, 500))
	assert.Empty(t, m.ResolveLegacySlug(ctx, 0))
}

func TestManager_Lists(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{
		slugsFunc: func(context.Context) ([]string, error) {
			return []string{"a", "b"}, nil
		},
		categoriesFunc: func(context.Context) ([]db.Category, error) {
			return []db.Category{{ID: 1, Name: "Empreendedorismo"}, {ID: 2, Name: "Expansão"}}, nil
		},
		tagsFunc: func(context.Context) ([]db.Tag, error) {
			return []db.Tag{{ID: 1, Name: "Fitness"}}, nil
		},
		featuredFunc: func(context.Context) ([]db.Article, error) {
			return []db.Article{testArticle(1, "destaque")}, nil
		},
		byCategorySlugFunc: func(_ context.Context, slug string) ([]db.Article, error) {
			assert.Equal(t, "tecnologia", slug)
			return []db.Article{testArticle(2, "t")}, nil
		},
		byTagSlugFunc: func(_ context.Context, slug string) ([]db.Article, error) {
			assert.Equal(t, "fitness", slug)
			return []db.Article{testArticle(3, "f")}, nil
		},
		sitemapFunc: func(context.Context) ([]db.SitemapEntry, error) {
			return []db.SitemapEntry{{Slug: "a", PublishedOn: time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)}}, nil
		},
	}
	m := NewManager(store, testListing(), noOpLogger())

	assert.Equal(t, []string{"a", "b"}, m.ListAllSlugs(ctx))

	categories := m.ListCategories(ctx)
	require.Len(t, categories, 2)
	assert.Equal(t, "Empreendedorismo", categories[0].Name)

	tags := m.ListTags(ctx)
	require.Len(t, tags, 1)
	assert.Equal(t, "Fitness", tags[0].Name)

	assert.Len(t, m.ListFeatured(ctx), 1)
	assert.Len(t, m.ListByCategorySlug(ctx, "tecnologia"), 1)
	assert.Len(t, m.ListByTagSlug(ctx, "fitness"), 1)

	entries := m.SitemapEntries(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Slug)
}

func TestManager_ListsFailSoft(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{
		slugsFunc:          func(context.Context) ([]string, error) { return nil, errStore },
		categoriesFunc:     func(context.Context) ([]db.Category, error) { return nil, errStore },
		tagsFunc:           func(context.Context) ([]db.Tag, error) { return nil, errStore },
		featuredFunc:       func(context.Context) ([]db.Article, error) { return nil, errStore },
		byCategorySlugFunc: func(context.Context, string) ([]db.Article, error) { return nil, errStore },
		byTagSlugFunc:      func(context.Context, string) ([]db.Article, error) { return nil, errStore },
		searchFunc:         func(context.Context, string, int) ([]db.Article, error) { return nil, errStore },
		latestExceptFunc:   func(context.Context, int, int) ([]db.Article, error) { return nil, errStore },
		sitemapFunc:        func(context.Context) ([]db.SitemapEntry, error) { return nil, errStore },
	}
	m := NewManager(store, testListing(), noOpLogger())

	assert.Equal(t, []string{}, m.ListAllSlugs(ctx))
	assert.Equal(t, []Category{}, m.ListCategories(ctx))
	assert.Equal(t, []Tag{}, m.ListTags(ctx))
	assert.Equal(t, []Article{}, m.ListFeatured(ctx))
	assert.Equal(t, []Article{}, m.ListByCategorySlug(ctx, "x"))
	assert.Equal(t, []Article{}, m.ListByTagSlug(ctx, "x"))
	assert.Equal(t, []Article{}, m.Search(ctx, "x"))
	assert.Equal(t, []Article{}, m.Related(ctx, 1))
	assert.Equal(t, []SitemapEntry{}, m.SitemapEntries(ctx))
}

func TestManager_SearchAndRelatedUseConfiguredLimits(t *testing.T) {
	ctx := context.Background()
	var searchLimit, relatedLimit, excluded int
	store := &stubStore{
		searchFunc: func(_ context.Context, term string, limit int) ([]db.Article, error) {
			assert.Equal(t, "franquia", term)
			searchLimit = limit
			return []db.Article{testArticle(1, "a")}, nil
		},
		latestExceptFunc: func(_ context.Context, id, limit int) ([]db.Article, error) {
			excluded, relatedLimit = id, limit
			return []db.Article{testArticle(2, "b"), testArticle(3, "c")}, nil
		},
	}
	m := NewManager(store, testListing(), noOpLogger())

	assert.Len(t, m.Search(ctx, "franquia"), 1)
	assert.Equal(t, 20, searchLimit)

	related := m.Related(ctx, 1)
	assert.Len(t, related, 2)
	assert.Equal(t, 1, excluded)
	assert.Equal(t, 3, relatedLimit)
}

func TestManager_ControllerOverManager(t *testing.T) {
	ctx := context.Background()
	all := make([]db.Article, 9)
	for i := range all {
		all[i] = testArticle(i+1, "tecnologia")
	}
	store := &stubStore{
		articlesFunc: func(_ context.Context, _ db.ArticleFilter, limit, offset int) ([]db.Article, int, error) {
			end := min(offset+limit, len(all))
			if offset >= end {
				return []db.Article{}, len(all), nil
			}
			return all[offset:end], len(all), nil
		},
	}
	m := NewManager(store, testListing(), noOpLogger())
	c := listing.NewController[Article](m, testListing().DefaultPageSize)

	s := c.SelectCategory(ctx, "Tecnologia")
	assert.Len(t, s.Items, 6)
	assert.True(t, s.HasMore)

	s, issued := c.LoadMore(ctx, true)
	require.True(t, issued)
	assert.Len(t, s.Items, 9)
	assert.False(t, s.HasMore)
}
