// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"encoding/base64"

	"code.gitea.io/openid-selector/modules/log"
	"code.gitea.io/openid-selector/modules/util"
)

var (
	// SecretKey signs the session cookie that carries the selector instance id
	SecretKey string

	ReverseProxyLimit          int
	ReverseProxyTrustedProxies []string
)

func loadSecurityFrom(rootCfg ConfigProvider) {
	sec := rootCfg.Section("security")
	SecretKey = sec.Key("SECRET_KEY").MustString("")
	if SecretKey == "" {
		// sessions will not survive a restart, but that only forgets the current widget state
		bs, err := util.CryptoRandomBytes(32)
		if err != nil {
			log.Fatal("Unable to generate SECRET_KEY: %v", err)
		}
		SecretKey = base64.RawURLEncoding.EncodeToString(bs)
		log.Warn("SECRET_KEY is not set, a random one is used")
	}

	ReverseProxyLimit = sec.Key("REVERSE_PROXY_LIMIT").MustInt(1)
	ReverseProxyTrustedProxies = util.SplitTrimSpace(sec.Key("REVERSE_PROXY_TRUSTED_PROXIES").MustString("127.0.0.0/8,::1/128"), ",")
}
