package rpc

type ListFilter struct {
	//category category name, "all" or empty for every category
	Category string `json:"category,omitempty"`
	//search case-insensitive term matched against title, summary and body
	Search string `json:"search,omitempty"`
	//page=0 zero-based page index
	Page *int `json:"page,omitempty"`
	//pageSize=6 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

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

type ArticleSummary struct {
	ID          int     `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Summary     string  `json:"summary"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Author      string  `json:"author"`
	PublishedOn string  `json:"publishedOn"`
	Featured    bool    `json:"featured"`
	Location    *string `json:"location,omitempty"`
	Tags        []Tag   `json:"tags"`
}

type Article struct {
	ArticleSummary
	Body        string    `json:"body"`
	BodyHTML    string    `json:"bodyHtml"`
	CategoryRef *Category `json:"categoryRef,omitempty"`
	CEOQuote    *bool     `json:"ceoQuote,omitempty"`
}

type ArticlePage struct {
	Items    []ArticleSummary `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
	HasMore  bool             `json:"hasMore"`
}
