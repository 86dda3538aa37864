// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"text/tabwriter"

	"code.gitea.io/openid-selector/modules/auth/openid"
	"code.gitea.io/openid-selector/modules/json"
	auth_service "code.gitea.io/openid-selector/services/auth"

	"github.com/urfave/cli/v2"
)

func cmdProviders() *cli.Command {
	return &cli.Command{
		Name:   "providers",
		Usage:  "List the configured OpenID providers in display order",
		Action: runProviders,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the render descriptors as JSON",
			},
		},
	}
}

func runProviders(ctx *cli.Context) error {
	registry := auth_service.NewOpenIDRegistry()
	descs := openid.BuildRenderDescriptors(registry, auth_service.OpenIDRenderOptions(), "")

	if ctx.Bool("json") {
		data, err := json.MarshalIndent(descs, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ctx.App.Writer, string(data))
		return err
	}

	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tTIER\tURL\tINPUT")
	for _, desc := range descs {
		p, _ := registry.Get(desc.ID)
		input := "-"
		if p.RequiresInput() {
			input = "required"
		}
		url := p.URL
		if url == "" {
			url = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, desc.Tier, url, input)
	}
	return tw.Flush()
}
