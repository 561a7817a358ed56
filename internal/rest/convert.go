package rest

import (
	"time"

	"github.com/phdsports/news-portal/internal/newsportal"
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

func NewArticle(a newsportal.Article) Article {
	article := Article{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Summary:     a.Summary,
		Body:        a.Body,
		Image:       a.Image,
		Category:    a.Category,
		Author:      a.Author,
		PublishedOn: a.PublishedOn.Format(time.DateOnly),
		Featured:    a.Featured,
		Location:    a.Location,
		CEOQuote:    a.CEOQuote,
		Tags:        Map(a.Tags, NewTag),
	}

	if a.CategoryRef != nil {
		c := NewCategory(*a.CategoryRef)
		article.CategoryRef = &c
	}

	return article
}

func NewArticles(list []newsportal.Article) []Article {
	return Map(list, NewArticle)
}
