// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/linkforge/session-runtime/pkg/agent"
	"github.com/linkforge/session-runtime/pkg/authentication"
	"github.com/linkforge/session-runtime/pkg/web"
	"github.com/linkforge/session-runtime/pkg/webhooks"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "agent keeps the session alive and serves the local API",
	Long:  `Restore the session, refresh it in the background and serve status, workspace and metrics on localhost`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), runAgent)
	},
}

func init() {
	rootCmd.AddCommand(agentCmd)
}

func runAgent(ctx context.Context, rt *runtime) error {
	logger := rt.logger
	specs := rt.specs

	a := agent.NewAgent(rt.session, rt.workspace, specs.HeartbeatSchedule, rt.tracer, rt.monitor, logger)
	if err := a.Start(ctx); err != nil {
		return err
	}
	defer func() { <-a.Stop().Done() }()

	if err := rt.applyTeam(ctx); err != nil {
		logger.Warnf("staying in the personal workspace: %v", err)
	}

	handlers := []web.EndpointsInterface{
		webhooks.NewAPI(rt.session, rt.tracer, rt.monitor, logger),
	}
	if rt.provider != nil {
		callback := authentication.NewCallbackHandler(rt.session, rt.tracer, rt.monitor, logger)
		handlers = append(handlers, callback)

		go func() {
			for res := range callback.Results() {
				if res.Err != nil {
					logger.Warnf("federated login failed: %v", res.Err)
					continue
				}
				logger.Infof("federated login completed for %s", res.Principal.Email)
				if _, err := rt.workspace.ResumePendingInvite(context.Background()); err != nil {
					logger.Warnf("parked invite not accepted: %v", err)
				}
			}
		}()
	}

	router := web.NewRouter(
		rt.session,
		rt.workspace,
		specs.AllowedOrigins,
		rt.tracer,
		rt.monitor,
		logger,
		handlers...,
	)

	logger.Infof("Starting agent API on port %v", specs.Port)

	// loopback only, the API exposes the principal
	srv := &http.Server{
		Addr:         fmt.Sprintf("127.0.0.1:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(sctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
