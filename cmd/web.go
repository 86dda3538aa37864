// Copyright 2014 The Gogs Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"code.gitea.io/openid-selector/modules/auth/openid"
	"code.gitea.io/openid-selector/modules/log"
	"code.gitea.io/openid-selector/modules/setting"
	"code.gitea.io/openid-selector/routers/web"

	"github.com/urfave/cli/v2"
)

// cmdWeb represents the available web sub-command.
func cmdWeb() *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Start the OpenID selector web server",
		Description: `The selector web server is the only thing you need to run,
it serves the provider buttons and hands the chosen identifier to FORM_ACTION.`,
		Action: runWeb,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   "",
				Usage:   "Temporary port number to prevent conflict",
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Value: 10 * time.Second,
				Usage: "How long to wait for running requests when stopping",
			},
		},
	}
}

func runWeb(ctx *cli.Context) error {
	if ctx.IsSet("port") {
		setting.HTTPPort = ctx.String("port")
	}

	handler, err := web.Routes(ctx.Context, openid.NewLocalActions())
	if err != nil {
		return fmt.Errorf("unable to set up routes: %w", err)
	}

	addr := net.JoinHostPort(setting.HTTPAddr, setting.HTTPPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Context.Done()
		log.Info("Shutting down the HTTP listener on %s", addr)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ctx.Duration("shutdown-timeout"))
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Unable to shut down the HTTP listener: %v", err)
		}
	}()

	log.Info("Listen: http://%s%s", addr, setting.AppSubURL)
	log.Info("AppURL(ROOT_URL): %s", setting.AppURL)
	if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start the HTTP listener on %s: %w", addr, err)
	}
	<-shutdownDone
	log.Info("HTTP Listener: %s Closed", addr)
	return nil
}
