// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"code.gitea.io/openid-selector/modules/json"
	"code.gitea.io/openid-selector/modules/setting"
	"code.gitea.io/openid-selector/modules/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestApp(testCmdAction func(ctx *cli.Context) error) *cli.App {
	app := NewMainApp(AppVersion{})
	testCmd := &cli.Command{Name: "test-cmd", Action: testCmdAction}
	prepareSubcommandWithConfig(testCmd, appGlobalFlags(), false)
	app.Commands = append(app.Commands, testCmd)
	app.DefaultCommand = testCmd.Name
	return app
}

type runResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func runTestApp(app *cli.App, args ...string) (runResult, error) {
	outBuf := new(strings.Builder)
	errBuf := new(strings.Builder)
	app.Writer = outBuf
	app.ErrWriter = errBuf
	exitCode := -1
	defer test.MockVariableValue(&cli.ErrWriter, app.ErrWriter)()
	defer test.MockVariableValue(&cli.OsExiter, func(code int) {
		if exitCode == -1 {
			exitCode = code // save the exit code once and then reset the writer (to simulate the exit)
			app.Writer, app.ErrWriter, cli.ErrWriter = io.Discard, io.Discard, io.Discard
		}
	})()
	defer test.MockVariableValue(&setting.LogOutput)()
	err := RunMainApp(app, args...)
	return runResult{outBuf.String(), errBuf.String(), exitCode}, err
}

func writeConfig(t *testing.T, content string) string {
	file := filepath.Join(t.TempDir(), "app.ini")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestCliCmd(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "app.ini")
	cases := []struct {
		cmd string
		exp string
	}{
		{cmd: "./openid-selector test-cmd", exp: "CustomConf="},
		{cmd: "./openid-selector -c " + conf + " test-cmd", exp: "CustomConf=" + conf},
		{cmd: "./openid-selector test-cmd -c " + conf, exp: "CustomConf=" + conf},
		{cmd: "./openid-selector test-cmd --config " + conf, exp: "CustomConf=" + conf},
	}

	app := newTestApp(func(ctx *cli.Context) error {
		_, _ = fmt.Fprintf(ctx.App.Writer, "CustomConf=%s", setting.CustomConf)
		return nil
	})
	for _, c := range cases {
		t.Run(c.cmd, func(t *testing.T) {
			args := strings.Split(c.cmd, " ") // for test only, "split" is good enough
			r, err := runTestApp(app, args...)
			assert.NoError(t, err, c.cmd)
			assert.Equal(t, c.exp, r.Stdout, c.cmd)
		})
	}
}

func TestCliCmdError(t *testing.T) {
	app := newTestApp(func(ctx *cli.Context) error { return fmt.Errorf("normal error") })
	r, err := runTestApp(app, "./openid-selector", "test-cmd")
	assert.Error(t, err)
	assert.Equal(t, 1, r.ExitCode)
	assert.Equal(t, "", r.Stdout)
	assert.Equal(t, "Command error: normal error\n", r.Stderr)

	app = newTestApp(func(ctx *cli.Context) error { return cli.Exit("exit error", 2) })
	r, err = runTestApp(app, "./openid-selector", "test-cmd")
	assert.Error(t, err)
	assert.Equal(t, 2, r.ExitCode)
	assert.Equal(t, "", r.Stdout)
	assert.Equal(t, "exit error\n", r.Stderr)

	app = newTestApp(func(ctx *cli.Context) error { return nil })
	r, err = runTestApp(app, "./openid-selector", "test-cmd", "--no-such")
	assert.Error(t, err)
	assert.Equal(t, 1, r.ExitCode)
	assert.Contains(t, r.Stdout, "flag provided but not defined: -no-such")

	app = newTestApp(func(ctx *cli.Context) error { return nil })
	r, err = runTestApp(app, "./openid-selector", "test-cmd")
	assert.NoError(t, err)
	assert.Equal(t, -1, r.ExitCode) // the cli.OsExiter is not called
	assert.Equal(t, "", r.Stdout)
	assert.Equal(t, "", r.Stderr)
}

func TestCmdProviders(t *testing.T) {
	r, err := runTestApp(NewMainApp(AppVersion{}), "./openid-selector", "providers")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(r.Stdout), "\n")
	require.Len(t, lines, len(setting.DefaultOpenIDProviders)+1)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.True(t, strings.HasPrefix(lines[1], "google "))
	assert.Contains(t, r.Stdout, "http://openid.aol.com/{username}")

	r, err = runTestApp(NewMainApp(AppVersion{}), "./openid-selector", "providers", "--json")
	require.NoError(t, err)
	var descs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.Stdout), &descs))
	require.Len(t, descs, len(setting.DefaultOpenIDProviders))
	assert.Equal(t, "google", descs[0]["id"])
}

func TestCmdResolve(t *testing.T) {
	r, err := runTestApp(NewMainApp(AppVersion{}), "./openid-selector", "resolve", "aol", "alice")
	require.NoError(t, err)
	assert.Contains(t, r.Stdout, "highlight: aol\n")
	assert.Contains(t, r.Stdout, "state: awaiting-input\n")
	assert.Contains(t, r.Stdout, `outcome: Allow("http://openid.aol.com/alice")`)
	assert.Contains(t, r.Stdout, "identifier: http://openid.aol.com/alice\n")
	assert.Contains(t, r.Stdout, "persisted: aol (path /, expires ")

	r, err = runTestApp(NewMainApp(AppVersion{}), "./openid-selector", "resolve", "yahoo")
	require.NoError(t, err)
	assert.Contains(t, r.Stdout, "state: ready\n")
	assert.Contains(t, r.Stdout, "identifier: http://me.yahoo.com/\n")

	r, err = runTestApp(NewMainApp(AppVersion{}), "./openid-selector", "resolve", "--demo", "google")
	require.NoError(t, err)
	assert.Contains(t, r.Stdout, `outcome: Demo("https://www.google.com/accounts/o8/id")`)
	assert.Contains(t, r.Stdout, setting.OpenIDSelector.DemoText+"\nhttps://www.google.com/accounts/o8/id\n")
}

func TestCmdResolveBlocked(t *testing.T) {
	r, err := runTestApp(NewMainApp(AppVersion{}), "./openid-selector", "resolve", "aol")
	assert.Error(t, err)
	assert.Equal(t, 1, r.ExitCode)
	assert.Contains(t, r.Stdout, "outcome: Block(openid provider requires input)")
	assert.Contains(t, r.Stderr, "Command error: openid provider requires input")

	r, err = runTestApp(NewMainApp(AppVersion{}), "./openid-selector", "resolve", "nope")
	assert.Error(t, err)
	assert.Equal(t, 1, r.ExitCode)
	assert.Contains(t, r.Stderr, "Command error: openid provider does not exist [id: nope]")

	r, err = runTestApp(NewMainApp(AppVersion{}), "./openid-selector", "resolve")
	assert.Error(t, err)
	assert.Contains(t, r.Stderr, "Command error: a provider id is required")
}

func TestCmdResolveWithConfig(t *testing.T) {
	defer test.MockVariableValue(&setting.OpenIDSelector.DefaultProviders)()
	defer test.MockVariableValue(&setting.OpenIDSelector.Providers)()
	defer test.MockVariableValue(&setting.OpenIDSelector.CookiePath)()
	defer test.MockVariableValue(&setting.OpenID.Blacklist)()

	conf := writeConfig(t, `
[openid]
BLACKLISTED_URIS = ^https://id\.corp\.example/mallory

[openid_selector]
DEFAULT_PROVIDERS = false
COOKIE_PATH = /login/

[openid_selector.provider.corp]
NAME = Corp
URL = https://id.corp.example/{username}
LABEL = Your corp login
TIER = small

[openid_selector.provider.help]
NAME = Help
URL = javascript:alert("ask the helpdesk");
TIER = small
`)
	r, err := runTestApp(NewMainApp(AppVersion{}), "./openid-selector", "-c", conf, "resolve", "corp", "bob")
	require.NoError(t, err)
	assert.Contains(t, r.Stdout, "identifier: https://id.corp.example/bob\n")
	assert.Contains(t, r.Stdout, "persisted: corp (path /login/, expires ")

	r, err = runTestApp(NewMainApp(AppVersion{}), "./openid-selector", "-c", conf, "resolve", "help")
	require.NoError(t, err)
	assert.Contains(t, r.Stdout, "alert: ask the helpdesk\n")
	assert.Contains(t, r.Stdout, `outcome: LocalAction("alert(\"ask the helpdesk\");")`)

	r, err = runTestApp(NewMainApp(AppVersion{}), "./openid-selector", "-c", conf, "resolve", "corp", "mallory")
	assert.Error(t, err)
	assert.Contains(t, r.Stderr, "openid identifier is not allowed [uri: https://id.corp.example/mallory]")

	_, err = runTestApp(NewMainApp(AppVersion{}), "./openid-selector", "-c", conf, "resolve", "google")
	assert.Error(t, err)
}
