package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/adilcr01/adil-dev/internal/analytics"
	"github.com/adilcr01/adil-dev/internal/chat"
	"github.com/adilcr01/adil-dev/internal/maintenance"
	"github.com/adilcr01/adil-dev/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	gin.SetMode(a.cfg.GinMode)

	store, err := analytics.Open(ctx, a.cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	responder := a.responder()
	sessions := chat.NewStore(func() *chat.Conversation {
		return chat.NewConversation(responder, chat.WithDelay(a.cfg.ChatReplyDelay))
	})

	srv, err := server.New(server.Deps{
		Config:    a.cfg,
		Logger:    a.logger,
		Sessions:  sessions,
		Analytics: store,
	})
	if err != nil {
		return err
	}

	jobs := &maintenance.Jobs{
		Visitors:   store,
		Retention:  a.cfg.VisitorRetention,
		Sessions:   sessions,
		SessionTTL: a.cfg.ChatSessionTTL,
		Logger:     a.logger,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	g.Go(func() error { return jobs.Run(ctx, a.cfg.MaintenanceSchedule) })

	err = g.Wait()
	a.logger.Info("portfolio stopped", zap.Error(err))
	return err
}
