package rest

type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Color       string  `json:"color"`
	Icon        *string `json:"icon,omitempty"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Article struct {
	ID          int       `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Body        string    `json:"body"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	CategoryRef *Category `json:"categoryRef,omitempty"`
	Author      string    `json:"author"`
	PublishedOn string    `json:"publishedOn"`
	Featured    bool      `json:"featured"`
	Location    *string   `json:"location,omitempty"`
	CEOQuote    *bool     `json:"ceoQuote,omitempty"`
	Tags        []Tag     `json:"tags"`
}

// ArticlePage is one page of the article listing.
type ArticlePage struct {
	Items    []Article `json:"items"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	HasMore  bool      `json:"hasMore"`
}

// ArticleDetail is an article with its rendered body and related articles.
type ArticleDetail struct {
	Article  Article   `json:"article"`
	BodyHTML string    `json:"bodyHtml"`
	Related  []Article `json:"related"`
}

type LegacySlug struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
}
