// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"code.gitea.io/openid-selector/modules/auth/openid"
	"code.gitea.io/openid-selector/modules/setting"
	auth_service "code.gitea.io/openid-selector/services/auth"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

func cmdResolve() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Select a provider and print the identifier the selector would submit",
		ArgsUsage: "<provider> [username]",
		Action:    runResolve,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "demo",
				Usage: "Stop in demo mode instead of submitting",
			},
		},
	}
}

// writerHighlighter prints highlight changes
type writerHighlighter struct {
	w io.Writer
}

func (h writerHighlighter) Highlight(id string) {
	_, _ = fmt.Fprintf(h.w, "highlight: %s\n", id)
}

func runResolve(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errors.New("a provider id is required")
	}
	w := ctx.App.Writer

	registry := auth_service.NewOpenIDRegistry()
	store := openid.NewMemoryStore()
	controller := openid.NewController(registry, store, writerHighlighter{w: w}, auth_service.OpenIDControllerOptions())

	sel := controller.SelectProvider(ctx.Args().Get(0), false)
	if sel.Err != nil {
		return sel.Err
	}
	_, _ = fmt.Fprintf(w, "state: %s\n", sel.State)

	actions := openid.NewLocalActions()
	actions.Register("alert", func(payload string) error {
		_, err := fmt.Fprintf(w, "alert: %s\n", strings.Trim(payload, `"'`))
		return err
	})

	form := openid.NewForm(setting.OpenIDSelector.InputID)
	opts := auth_service.OpenIDGateOptions()
	if ctx.Bool("demo") {
		opts.Demo = true
	}
	out := openid.NewGate(controller, form, actions, opts).PrepareSubmit(ctx.Args().Get(1))
	_, _ = fmt.Fprintf(w, "outcome: %s\n", out)

	switch out.Kind {
	case openid.OutcomeBlock:
		return out.Err
	case openid.OutcomeDemo:
		_, _ = fmt.Fprintln(w, out.Message)
	case openid.OutcomeAllow:
		id, err := openid.Normalize(out.Value)
		if err != nil {
			return err
		}
		if err = openid.AllowedURI(id, setting.OpenID.Whitelist, setting.OpenID.Blacklist); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "identifier: %s\n", id)
	}

	if token, ok := store.Load(); ok {
		_, _ = fmt.Fprintf(w, "persisted: %s (path %s, expires %s)\n", token, store.Path(), humanize.Time(store.Expires()))
	}
	return out.Err
}
