// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"code.gitea.io/openid-selector/modules/setting"

	"github.com/urfave/cli/v2"
)

func appGlobalFlags() []cli.Flag {
	return []cli.Flag{
		// shared configuration flag, it is for global and for each sub-command at the same time
		// eg: "./openid-selector --config /tmp/app.ini resolve --config /tmp/app.ini aol" is valid
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   setting.CustomConf,
			Usage:   "Set custom config file, the built-in defaults are used when it is not given",
		},
	}
}

// prepareSubcommandWithConfig adds the global flags to the command and loads the config before it runs.
// Commands writing their result to stdout set logToStderr so that logs don't mix with the output.
func prepareSubcommandWithConfig(command *cli.Command, globalFlags []cli.Flag, logToStderr bool) {
	command.Flags = append(append([]cli.Flag{}, globalFlags...), command.Flags...)
	command.Before = func(ctx *cli.Context) error {
		if logToStderr {
			setting.LogOutput = ctx.App.ErrWriter
		}
		return prepareConfig(ctx)
	}
}

// prepareConfig loads the config file given by the nearest --config flag
func prepareConfig(ctx *cli.Context) error {
	customConf := ""
	// from children to parent, check the global flags
	for _, curCtx := range ctx.Lineage() {
		if curCtx.IsSet("config") {
			customConf = curCtx.String("config")
			break
		}
	}
	if err := setting.InitCfgProvider(customConf); err != nil {
		return err
	}
	return setting.LoadCommonSettings()
}

type AppVersion struct {
	Version string
	Extra   string
}

func NewMainApp(appVer AppVersion) *cli.App {
	app := cli.NewApp()
	app.Name = "openid-selector"
	app.Usage = "Let users sign in with OpenID by picking their provider"
	app.Description = `The program contains "web" and other subcommands. If no subcommand is given, it starts the web server by default.`
	app.Version = appVer.Version + appVer.Extra
	app.EnableBashCompletion = true

	web := cmdWeb()
	prepareSubcommandWithConfig(web, appGlobalFlags(), false)

	// these sub-commands print their result, logs go to stderr
	for _, c := range []*cli.Command{cmdProviders(), cmdResolve()} {
		prepareSubcommandWithConfig(c, appGlobalFlags(), true)
		app.Commands = append(app.Commands, c)
	}
	app.Commands = append([]*cli.Command{web}, app.Commands...)
	app.DefaultCommand = web.Name

	app.Flags = append(app.Flags, appGlobalFlags()...)
	return app
}

func RunMainApp(app *cli.App, args ...string) error {
	ctx, cancel := installSignals()
	defer cancel()
	err := app.RunContext(ctx, args)
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), "flag provided but not defined:") {
		// the cli package should already have output the error message, so just exit
		cli.OsExiter(1)
		return err
	}
	_, _ = fmt.Fprintf(app.ErrWriter, "Command error: %v\n", err)
	cli.OsExiter(1)
	return err
}
