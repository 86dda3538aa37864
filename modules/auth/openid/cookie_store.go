// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

import (
	"net/http"

	"code.gitea.io/openid-selector/modules/util"
	"code.gitea.io/openid-selector/modules/web/middleware"
)

// DefaultCookieName is the cookie holding the last selected provider id
const DefaultCookieName = "openid_provider"

// CookieStore keeps the token in a browser cookie. It is bound to one request:
// Load reads the request cookie, Save writes a Set-Cookie header on the response.
// Expired cookies are never sent back by the browser, so Load needs no expiry check.
type CookieStore struct {
	name string
	req  *http.Request
	resp http.ResponseWriter

	saved    string
	hasSaved bool
}

var _ Store = (*CookieStore)(nil)

func NewCookieStore(resp http.ResponseWriter, req *http.Request, name string) *CookieStore {
	return &CookieStore{name: util.IfZero(name, DefaultCookieName), req: req, resp: resp}
}

func (s *CookieStore) Save(token string, ttlDays int, scopePath string) error {
	expires, err := expiryFromNow(ttlDays)
	if err != nil {
		return err
	}
	middleware.SetCookie(s.resp, s.name, token, middleware.Path(util.IfZero(scopePath, "/")), middleware.Expires(expires))
	s.saved, s.hasSaved = token, true
	return nil
}

func (s *CookieStore) Load() (string, bool) {
	if s.hasSaved {
		return s.saved, true
	}
	token := middleware.GetCookie(s.req, s.name)
	return token, token != ""
}
