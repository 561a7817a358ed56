package rpc

import (
	"time"

	"github.com/phdsports/news-portal/internal/newsportal"
	"github.com/phdsports/news-portal/internal/render"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c newsportal.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
		Icon:        c.Icon,
	}
}

func NewTag(t newsportal.Tag) Tag {
	return Tag{
		ID:   t.ID,
		Name: t.Name,
		Slug: t.Slug,
	}
}

func NewArticleSummary(a newsportal.Article) ArticleSummary {
	return ArticleSummary{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Summary:     a.Summary,
		Image:       a.Image,
		Category:    a.Category,
		Author:      a.Author,
		PublishedOn: a.PublishedOn.Format(time.DateOnly),
		Featured:    a.Featured,
		Location:    a.Location,
		Tags:        Map(a.Tags, NewTag),
	}
}

func NewArticle(a newsportal.Article) Article {
	article := Article{
		ArticleSummary: NewArticleSummary(a),
		Body:           a.Body,
		BodyHTML:       render.Body(a.Body),
		CEOQuote:       a.CEOQuote,
	}

	if a.CategoryRef != nil {
		c := NewCategory(*a.CategoryRef)
		article.CategoryRef = &c
	}

	return article
}
