package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phdsports/news-portal/internal/listing"
)

func TestClient_FetchPage(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(newTestService()))
	defer srv.Close()

	client := NewClient(srv.URL+"/", srv.Client(), noOpLogger())
	ctx := context.Background()

	page := client.FetchPage(ctx, listing.Query{Category: "Tecnologia", PageSize: 6})
	assert.Len(t, page.Items, 6)
	assert.Equal(t, 9, page.Total)

	page = client.FetchPage(ctx, listing.Query{Category: listing.AllCategories, Search: "paraná", PageSize: 6})
	require.Len(t, page.Items, 1)
	assert.Equal(t, "phd-sports-chega-ao-parana", page.Items[0].Slug)
}

func TestClient_DrivesController(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(newTestService()))
	defer srv.Close()

	ctx := context.Background()
	c := listing.NewController[Article](NewClient(srv.URL, srv.Client(), noOpLogger()), 6)

	s := c.SelectCategory(ctx, "Tecnologia")
	assert.Len(t, s.Items, 6)
	assert.True(t, s.HasMore)

	s, issued := c.LoadMore(ctx, true)
	require.True(t, issued)
	assert.Len(t, s.Items, 9)
	assert.False(t, s.HasMore)

	s = c.Search(ctx, "xyz-no-match")
	assert.True(t, s.Empty())
}

func TestClient_ControllerFollowsServerPageSize(t *testing.T) {
	svc := &stubService{}
	for i := 1; i <= 250; i++ {
		svc.articles = append(svc.articles, newArticle(i, fmt.Sprintf("artigo-%d", i), "Tecnologia", "Academia conectada"))
	}
	srv := httptest.NewServer(newTestHandler(svc))
	defer srv.Close()

	ctx := context.Background()
	c := listing.NewController[Article](NewClient(srv.URL, srv.Client(), noOpLogger()), 150)

	s := c.Load(ctx)
	assert.Len(t, s.Items, 100)
	assert.Equal(t, 250, s.Total)
	assert.True(t, s.HasMore)

	for n := 1; s.HasMore; n++ {
		var issued bool
		s, issued = c.LoadMore(ctx, true)
		require.True(t, issued)
		assert.Len(t, s.Items, min(250, (n+1)*100))
	}

	seen := make(map[int]struct{}, len(s.Items))
	for _, a := range s.Items {
		seen[a.ID] = struct{}{}
	}
	assert.Len(t, s.Items, 250)
	assert.Len(t, seen, 250)
}

func TestClient_FailSoft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), noOpLogger())

	page := client.FetchPage(context.Background(), listing.Query{PageSize: 6})
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)

	unreachable := NewClient("http://127.0.0.1:0", nil, noOpLogger())
	page = unreachable.FetchPage(context.Background(), listing.Query{PageSize: 6})
	assert.Empty(t, page.Items)
}
