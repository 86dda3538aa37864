// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"
	"regexp"

	"code.gitea.io/openid-selector/modules/util"
)

// OpenID settings used when the selected identifier is handed to the host form
var OpenID struct {
	Whitelist []*regexp.Regexp
	Blacklist []*regexp.Regexp
}

func loadOpenIDFrom(rootCfg ConfigProvider) (err error) {
	sec := rootCfg.Section("openid")
	if OpenID.Whitelist, err = compileURIPatterns(util.SplitTrimSpace(sec.Key("WHITELISTED_URIS").String(), " ")); err != nil {
		return fmt.Errorf("invalid [openid] WHITELISTED_URIS: %w", err)
	}
	if OpenID.Blacklist, err = compileURIPatterns(util.SplitTrimSpace(sec.Key("BLACKLISTED_URIS").String(), " ")); err != nil {
		return fmt.Errorf("invalid [openid] BLACKLISTED_URIS: %w", err)
	}
	return nil
}

func compileURIPatterns(pats []string) ([]*regexp.Regexp, error) {
	if len(pats) == 0 {
		return nil, nil
	}
	res := make([]*regexp.Regexp, 0, len(pats))
	for _, p := range pats {
		re, err := regexp.CompilePOSIX(p)
		if err != nil {
			return nil, err
		}
		res = append(res, re)
	}
	return res, nil
}
