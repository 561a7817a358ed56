package rpc

// Method names, SMD and Invoke for NewsService, laid out the way the zenrpc generator
// writes them. Keep in sync with news.go when a method or its annotations change.

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	NewsService struct{ List, BySlug, LegacySlug, Slugs, Categories, Tags string }
}{
	NewsService: struct{ List, BySlug, LegacySlug, Slugs, Categories, Tags string }{
		List:       "list",
		BySlug:     "byslug",
		LegacySlug: "legacyslug",
		Slugs:      "slugs",
		Categories: "categories",
		Tags:       "tags",
	},
}

func (NewsService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List returns one page of articles, newest first, filtered by category name and search term.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "filter",
						Optional:    false,
						Description: `listing filter`,
						Type:        smd.Object,
					},
				},
				Returns: smd.JSONSchema{
					Description: `page of article summaries`,
					Optional:    false,
					Type:        smd.Object,
				},
			},
			"BySlug": {
				Description: `BySlug retrieves a single article with its rendered body.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "slug",
						Optional:    false,
						Description: `article slug`,
						Type:        smd.String,
					},
				},
				Returns: smd.JSONSchema{
					Description: `article with full body`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "slug is required",
					404: "article not found",
				},
			},
			"LegacySlug": {
				Description: `LegacySlug resolves the slug of a legacy numeric article id.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "id",
						Optional:    false,
						Description: `legacy article id`,
						Type:        smd.Integer,
					},
				},
				Returns: smd.JSONSchema{
					Description: `article slug`,
					Optional:    false,
					Type:        smd.String,
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "article not found",
				},
			},
			"Slugs": {
				Description: `Slugs returns the slug of every article.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of slugs`,
					Optional:    true,
					Type:        smd.Array,
				},
			},
			"Categories": {
				Description: `Categories returns all categories ordered by name.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Optional:    true,
					Type:        smd.Array,
				},
			},
			"Tags": {
				Description: `Tags returns all tags ordered by name.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of tags`,
					Optional:    true,
					Type:        smd.Array,
				},
			},
		},
	}
}

// Invoke dispatches a JSON-RPC call to the NewsService method of the same name.
func (s NewsService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.NewsService.List:
		var args = struct {
			Filter ListFilter `json:"filter"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"filter"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.List(ctx, args.Filter))

	case RPC.NewsService.BySlug:
		var args = struct {
			Slug string `json:"slug"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"slug"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.BySlug(ctx, args.Slug))

	case RPC.NewsService.LegacySlug:
		var args = struct {
			Id int `json:"id"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.LegacySlug(ctx, args.Id))

	case RPC.NewsService.Slugs:
		resp.Set(s.Slugs(ctx))

	case RPC.NewsService.Categories:
		resp.Set(s.Categories(ctx))

	case RPC.NewsService.Tags:
		resp.Set(s.Tags(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
