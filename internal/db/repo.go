package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// ArticleFilter narrows the article listing. Empty fields do not filter.
type ArticleFilter struct {
	// Category is matched exactly against the denormalized category name.
	Category string
	// Search is matched as a case-insensitive substring of title, summary or body.
	Search string
}

// SitemapEntry is the minimal projection needed to list article pages.
type SitemapEntry struct {
	Slug        string
	PublishedOn time.Time
}

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// articlesQuery selects articles joined with their category and tags.
func (r *Repository) articlesQuery(ctx context.Context, articles *[]Article) *orm.Query {
	return r.db.ModelContext(ctx, articles).
		Relation(Columns.Article.CategoryRef).
		Relation(Columns.Article.Tags, func(q *orm.Query) (*orm.Query, error) {
			return q.OrderExpr(`"tag"."name" ASC`), nil
		})
}

func newestFirst(q *orm.Query) *orm.Query {
	return q.
		OrderExpr(`"t".? DESC`, pg.Ident(Columns.Article.PublishedOn)).
		OrderExpr(`"t".? ASC`, pg.Ident(Columns.Article.ID))
}

// Articles returns one page of articles matching filter, newest first, together with
// the number of matching articles ignoring limit and offset.
func (r *Repository) Articles(ctx context.Context, filter ArticleFilter,
	limit, offset int) ([]Article, int, error) {

	if limit < 1 || offset < 0 {
		return nil, 0, fmt.Errorf(
			"limit must be greater than 0 and offset not negative: limit=%d, offset=%d",
			limit, offset,
		)
	}

	var articles []Article
	query := r.articlesQuery(ctx, &articles)

	if filter.Category != "" {
		query = query.Where(`"t".? = ?`, pg.Ident(Columns.Article.Category), filter.Category)
	}

	if term := strings.TrimSpace(filter.Search); term != "" {
		query = query.WhereGroup(matchesTerm(term))
	}

	count, err := newestFirst(query).
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, count, nil
}

// ArticleBySlug returns nil when no article has the slug.
func (r *Repository) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	var articles []Article
	err := r.articlesQuery(ctx, &articles).
		Where(`"t".? = ?`, pg.Ident(Columns.Article.Slug), slug).
		Limit(1).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	if len(articles) == 0 {
		return nil, nil
	}

	return &articles[0], nil
}

// SlugByID resolves the slug of a legacy numeric id. It returns an empty string when
// the id is unknown.
func (r *Repository) SlugByID(ctx context.Context, id int) (string, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Column(Columns.Article.Slug).
		Where(`"t".? = ?`, pg.Ident(Columns.Article.ID), id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("failed to get slug by id: %w", err)
	}

	return article.Slug, nil
}

func (r *Repository) Slugs(ctx context.Context) ([]string, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		Column(Columns.Article.Slug).
		OrderExpr(`"t".? ASC`, pg.Ident(Columns.Article.ID)).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query slugs: %w", err)
	}

	slugs := make([]string, len(articles))
	for i := range articles {
		slugs[i] = articles[i].Slug
	}

	return slugs, nil
}

func (r *Repository) SitemapEntries(ctx context.Context) ([]SitemapEntry, error) {
	var articles []Article
	err := newestFirst(r.db.ModelContext(ctx, &articles).
		Column(Columns.Article.ID, Columns.Article.Slug, Columns.Article.PublishedOn)).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query sitemap entries: %w", err)
	}

	entries := make([]SitemapEntry, len(articles))
	for i := range articles {
		entries[i] = SitemapEntry{Slug: articles[i].Slug, PublishedOn: articles[i].PublishedOn}
	}

	return entries, nil
}

func (r *Repository) FeaturedArticles(ctx context.Context) ([]Article, error) {
	var articles []Article
	err := newestFirst(r.articlesQuery(ctx, &articles).
		Where(`"t".? = TRUE`, pg.Ident(Columns.Article.Featured))).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query featured articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) ArticlesByCategorySlug(ctx context.Context, slug string) ([]Article, error) {
	var articles []Article
	err := newestFirst(r.articlesQuery(ctx, &articles).
		Where(`"category_ref".? = ?`, pg.Ident(Columns.Category.Slug), slug)).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query articles by category: %w", err)
	}

	return articles, nil
}

func (r *Repository) ArticlesByTagSlug(ctx context.Context, slug string) ([]Article, error) {
	var articles []Article
	err := newestFirst(r.articlesQuery(ctx, &articles).
		Where(`EXISTS (
			SELECT 1 FROM "article_tags" AS "at"
			JOIN "tags" AS "tg" ON "tg"."id" = "at"."tag_id"
			WHERE "at"."article_id" = "t"."id" AND "tg"."slug" = ?
		)`, slug)).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query articles by tag: %w", err)
	}

	return articles, nil
}

// SearchArticles returns at most limit articles containing term, newest first.
func (r *Repository) SearchArticles(ctx context.Context, term string, limit int) ([]Article, error) {
	term = strings.TrimSpace(term)
	if term == "" || limit < 1 {
		return []Article{}, nil
	}

	var articles []Article
	err := newestFirst(r.articlesQuery(ctx, &articles).
		WhereGroup(matchesTerm(term))).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	return articles, nil
}

// LatestArticlesExcept returns the newest articles other than the one with id.
func (r *Repository) LatestArticlesExcept(ctx context.Context, id, limit int) ([]Article, error) {
	if limit < 1 {
		return []Article{}, nil
	}

	var articles []Article
	err := newestFirst(r.articlesQuery(ctx, &articles).
		Where(`"t".? != ?`, pg.Ident(Columns.Article.ID), id)).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query latest articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`? ASC`, pg.Ident(Columns.Category.Name)).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`? ASC`, pg.Ident(Columns.Tag.Name)).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

// matchesTerm ORs a case-insensitive substring match over title, summary and body.
func matchesTerm(term string) func(*orm.Query) (*orm.Query, error) {
	pattern := "%" + escapeLike(term) + "%"
	return func(q *orm.Query) (*orm.Query, error) {
		return q.
			WhereOr(`"t".? ILIKE ?`, pg.Ident(Columns.Article.Title), pattern).
			WhereOr(`"t".? ILIKE ?`, pg.Ident(Columns.Article.Summary), pattern).
			WhereOr(`"t".? ILIKE ?`, pg.Ident(Columns.Article.Body), pattern), nil
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in term match literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
