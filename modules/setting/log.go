// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"io"
	"os"

	"code.gitea.io/openid-selector/modules/log"
)

// Log settings
var Log struct {
	Level       log.Level
	RouterLevel log.Level
	Flags       int
	Colorize    bool
}

// LogOutput is where the console loggers write to, commands printing to stdout use stderr
var LogOutput io.Writer = os.Stdout

func loadLogFrom(rootCfg ConfigProvider) {
	sec := rootCfg.Section("log")
	Log.Level = log.LevelFromString(sec.Key("LEVEL").MustString("info"))
	Log.RouterLevel = log.LevelFromString(sec.Key("ROUTER_LEVEL").MustString(Log.Level.String()))
	Log.Flags = log.FlagsFromString(sec.Key("FLAGS").MustString("stdflags"))
	Log.Colorize = sec.Key("COLORIZE").MustBool(log.CanColorStdout)

	log.SetConsoleLogger(log.DEFAULT, LogOutput, log.WriterMode{
		Level:    Log.Level,
		Flags:    Log.Flags,
		Colorize: Log.Colorize,
	})
	log.SetConsoleLogger("router", LogOutput, log.WriterMode{
		Level:    Log.RouterLevel,
		Flags:    Log.Flags,
		Colorize: Log.Colorize,
	})
}
