// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package templates

import (
	"embed"
	"io/fs"
)

//go:embed base user
var builtin embed.FS

// BuiltinFS returns the templates shipped with the binary
func BuiltinFS() fs.FS {
	return builtin
}
