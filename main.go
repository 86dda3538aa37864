// Copyright 2014 The Gogs Authors. All rights reserved.
// Copyright 2016 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// OpenID provider selector
package main // import "code.gitea.io/openid-selector"

import (
	"os"
	"runtime"

	"code.gitea.io/openid-selector/cmd"
)

// these flags will be set by the build flags
var (
	Version = "development" // program version for this build
	Tags    = ""            // the Golang build tags
)

func main() {
	cli := cmd.NewMainApp(cmd.AppVersion{Version: Version, Extra: formatBuiltWith()})
	_ = cmd.RunMainApp(cli, os.Args...) // all errors should have been handled by the RunMainApp
}

func formatBuiltWith() string {
	version := runtime.Version()
	if Tags == "" {
		return " built with " + version
	}
	return " built with " + version + " : " + Tags
}
