// Command newsctl browses the article listing of a running news portal from the terminal.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/namsral/flag"

	"github.com/phdsports/news-portal/config"
	"github.com/phdsports/news-portal/internal/listing"
	"github.com/phdsports/news-portal/internal/rest"
)

// maxPageSize matches the server's default listing cap.
const maxPageSize = 100

var (
	flAPI      = flag.String("api", "http://localhost:3000", "news portal base URL")
	flPageSize = flag.Int("pageSize", 6, "articles per page, 1 to 100")
	flDebug    = flag.Bool("debug", false, "enable debug mode")
)

func main() {
	config.LoadDotEnv(".env")
	flag.Parse()

	level := slog.LevelWarn
	if *flDebug {
		level = slog.LevelDebug
	}
	lg := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := rest.NewClient(*flAPI, nil, lg)
	ctrl := listing.NewController[rest.Article](client, pageSize(*flPageSize))

	if err := newShell(ctrl, os.Stdout).run(ctx, os.Stdin); err != nil {
		lg.Error("read input", "error", err)
		os.Exit(1)
	}
}

func pageSize(n int) int {
	return listing.Query{PageSize: n}.Normalize(maxPageSize).PageSize
}
