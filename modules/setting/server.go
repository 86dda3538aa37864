// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

var (
	HTTPAddr string
	HTTPPort string

	// AppURL always ends with "/"
	AppURL string
	// AppSubURL has no trailing slash, it is empty when served from the root
	AppSubURL string
)

func loadServerFrom(rootCfg ConfigProvider) error {
	sec := rootCfg.Section("server")
	HTTPAddr = sec.Key("HTTP_ADDR").MustString("0.0.0.0")
	HTTPPort = sec.Key("HTTP_PORT").MustString("3000")

	defaultAppURL := "http://" + net.JoinHostPort("localhost", HTTPPort) + "/"
	AppURL = sec.Key("APP_URL").MustString(defaultAppURL)
	if !strings.HasSuffix(AppURL, "/") {
		AppURL += "/"
	}
	appURL, err := url.Parse(AppURL)
	if err != nil {
		return fmt.Errorf("invalid APP_URL %q: %w", AppURL, err)
	}
	AppSubURL = strings.TrimSuffix(appURL.Path, "/")
	return nil
}
