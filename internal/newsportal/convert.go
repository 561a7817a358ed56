package newsportal

import "github.com/phdsports/news-portal/internal/db"

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewTag(t *db.Tag) Tag {
	return Tag{Tag: *t}
}

func NewArticle(a *db.Article) Article {
	article := Article{Article: *a}
	article.Article.CategoryRef = nil
	article.Article.Tags = nil

	if a.CategoryRef != nil {
		c := NewCategory(a.CategoryRef)
		article.CategoryRef = &c
	}

	article.Tags = make([]Tag, len(a.Tags))
	for i := range a.Tags {
		article.Tags[i] = NewTag(&a.Tags[i])
	}

	return article
}

func NewArticles(list []db.Article) []Article {
	result := make([]Article, len(list))
	for i := range list {
		result[i] = NewArticle(&list[i])
	}
	return result
}

func NewCategories(list []db.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = NewCategory(&list[i])
	}
	return result
}

func NewTags(list []db.Tag) []Tag {
	result := make([]Tag, len(list))
	for i := range list {
		result[i] = NewTag(&list[i])
	}
	return result
}

func NewSitemapEntries(list []db.SitemapEntry) []SitemapEntry {
	result := make([]SitemapEntry, len(list))
	for i := range list {
		result[i] = SitemapEntry{Slug: list[i].Slug, PublishedOn: list[i].PublishedOn}
	}
	return result
}
