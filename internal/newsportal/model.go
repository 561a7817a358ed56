package newsportal

import (
	"time"

	"github.com/phdsports/news-portal/internal/db"
)

type Category struct {
	db.Category
}

type Tag struct {
	db.Tag
}

type Article struct {
	db.Article
	CategoryRef *Category
	Tags        []Tag
}

// SitemapEntry is one article page of the sitemap.
type SitemapEntry struct {
	Slug        string
	PublishedOn time.Time
}
