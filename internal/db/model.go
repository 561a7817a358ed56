// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
)

func init() {
	orm.RegisterTable((*ArticleTag)(nil))
}

var Columns = struct {
	Article struct {
		ID, Slug, Title, Summary, Body, Image, Category, CategoryID, Author, PublishedOn, Featured, Location, CEOQuote, CreatedAt string

		CategoryRef, Tags string
	}
	ArticleTag struct {
		ArticleID, TagID string
	}
	Category struct {
		ID, Name, Slug, Description, Color, Icon string
	}
	Tag struct {
		ID, Name, Slug string
	}
}{
	Article: struct {
		ID, Slug, Title, Summary, Body, Image, Category, CategoryID, Author, PublishedOn, Featured, Location, CEOQuote, CreatedAt string

		CategoryRef, Tags string
	}{
		ID:          "id",
		Slug:        "slug",
		Title:       "title",
		Summary:     "summary",
		Body:        "body",
		Image:       "image",
		Category:    "category",
		CategoryID:  "category_id",
		Author:      "author",
		PublishedOn: "published_on",
		Featured:    "featured",
		Location:    "location",
		CEOQuote:    "ceo_quote",
		CreatedAt:   "created_at",

		CategoryRef: "CategoryRef",
		Tags:        "Tags",
	},
	ArticleTag: struct {
		ArticleID, TagID string
	}{
		ArticleID: "article_id",
		TagID:     "tag_id",
	},
	Category: struct {
		ID, Name, Slug, Description, Color, Icon string
	}{
		ID:          "id",
		Name:        "name",
		Slug:        "slug",
		Description: "description",
		Color:       "color",
		Icon:        "icon",
	},
	Tag: struct {
		ID, Name, Slug string
	}{
		ID:   "id",
		Name: "name",
		Slug: "slug",
	},
}

var Tables = struct {
	Article struct {
		Name, Alias string
	}
	ArticleTag struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
}{
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	ArticleTag: struct {
		Name, Alias string
	}{
		Name:  "article_tags",
		Alias: "at",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "c",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "tag",
	},
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID          int       `pg:"id,pk"`
	Slug        string    `pg:"slug,use_zero"`
	Title       string    `pg:"title,use_zero"`
	Summary     string    `pg:"summary,use_zero"`
	Body        string    `pg:"body,use_zero"`
	Image       string    `pg:"image,use_zero"`
	Category    string    `pg:"category,use_zero"`
	CategoryID  *int      `pg:"category_id"`
	Author      string    `pg:"author,use_zero"`
	PublishedOn time.Time `pg:"published_on,type:date,use_zero"`
	Featured    bool      `pg:"featured,use_zero"`
	Location    *string   `pg:"location"`
	CEOQuote    *bool     `pg:"ceo_quote"`
	CreatedAt   time.Time `pg:"created_at,default:now()"`

	CategoryRef *Category `pg:"fk:category_id,rel:has-one"`
	Tags        []Tag     `pg:"many2many:article_tags,fk:article_id,join_fk:tag_id"`
}

type ArticleTag struct {
	tableName struct{} `pg:"article_tags,alias:at,discard_unknown_columns"`

	ArticleID int `pg:"article_id,pk"`
	TagID     int `pg:"tag_id,pk"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:c,discard_unknown_columns"`

	ID          int     `pg:"id,pk"`
	Name        string  `pg:"name,use_zero"`
	Slug        string  `pg:"slug,use_zero"`
	Description *string `pg:"description"`
	Color       string  `pg:"color,use_zero"`
	Icon        *string `pg:"icon"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:tag,discard_unknown_columns"`

	ID   int    `pg:"id,pk"`
	Name string `pg:"name,use_zero"`
	Slug string `pg:"slug,use_zero"`
}
