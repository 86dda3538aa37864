// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"
	"time"

	"code.gitea.io/openid-selector/modules/log"
)

// CORSConfig defines CORS settings of the provider descriptors endpoint
var CORSConfig = struct {
	Enabled          bool
	AllowDomain      []string // allowed origins
	Methods          []string
	MaxAge           time.Duration
	AllowCredentials bool
}{
	AllowDomain: []string{"*"},
	Methods:     []string{"GET", "HEAD", "OPTIONS"},
	MaxAge:      10 * time.Minute,
}

func loadCorsFrom(rootCfg ConfigProvider) error {
	if err := rootCfg.Section("cors").MapTo(&CORSConfig); err != nil {
		return fmt.Errorf("failed to map cors settings: %w", err)
	}
	if CORSConfig.Enabled {
		log.Info("CORS Service Enabled")
	}
	return nil
}
