// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"code.gitea.io/transprune/modules/log"
)

// Log settings
var Log = struct {
	Level    log.Level
	Flags    int
	Colorize bool
}{
	Level:    log.INFO,
	Flags:    log.LconsoleFlags,
	Colorize: true,
}

func loadLogFrom(rootCfg ConfigProvider) {
	sec := rootCfg.Section("log")
	Log.Level = log.LevelFromString(sec.Key("LEVEL").MustString("info"))
	Log.Flags = log.FlagsFromString(sec.Key("FLAGS").MustString("consoleflags"))
	Log.Colorize = sec.Key("COLORIZE").MustBool(true)
}
