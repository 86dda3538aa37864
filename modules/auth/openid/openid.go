// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

import (
	"fmt"
	"regexp"

	"github.com/yohcop/openid-go"
)

// Normalize returns the normalized form of an OpenID identifier, eg: "alice.example" becomes "http://alice.example/"
func Normalize(id string) (string, error) {
	return openid.Normalize(id)
}

// ErrURINotAllowed is returned when an identifier is rejected by the allow or block list
type ErrURINotAllowed struct {
	URI string
}

func (err ErrURINotAllowed) Error() string {
	return fmt.Sprintf("openid identifier is not allowed [uri: %s]", err.URI)
}

// AllowedURI checks an identifier against the allow list, when set, otherwise against the block list
func AllowedURI(uri string, allow, block []*regexp.Regexp) error {
	if len(allow) > 0 {
		for _, pat := range allow {
			if pat.MatchString(uri) {
				return nil
			}
		}
		return ErrURINotAllowed{URI: uri}
	}
	for _, pat := range block {
		if pat.MatchString(uri) {
			return ErrURINotAllowed{URI: uri}
		}
	}
	return nil
}
