package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/phdsports/news-portal/config"
)

func New(logger *slog.Logger, svc ArticleService, cfg config.Listing) *zenrpc.Server {
	rpcService := NewNewsService(svc, cfg)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("news", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "news-portal", nil))

	return rpcServer
}
