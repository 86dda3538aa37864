// Copyright 2020 The Macaron Authors
// Copyright 2020 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package middleware

import (
	"net/http"
	"net/url"
	"time"
)

// CookieOption changes one attribute of a cookie
type CookieOption func(*http.Cookie)

// MaxAge sets the maximum age for a provided cookie
func MaxAge(maxAge int) CookieOption {
	return func(c *http.Cookie) {
		c.MaxAge = maxAge
	}
}

// Path sets the path for a provided cookie
func Path(path string) CookieOption {
	return func(c *http.Cookie) {
		c.Path = path
	}
}

// Expires sets the expires and rawexpires for a provided cookie
func Expires(expires time.Time) CookieOption {
	return func(c *http.Cookie) {
		c.Expires = expires
		c.RawExpires = expires.Format(time.UnixDate)
	}
}

// NewCookie creates a site cookie, the value is query-escaped
func NewCookie(name, value string, opts ...CookieOption) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(value),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(cookie)
	}
	return cookie
}

// SetCookie adds a Set-Cookie header for the cookie
func SetCookie(resp http.ResponseWriter, name, value string, opts ...CookieOption) {
	resp.Header().Add("Set-Cookie", NewCookie(name, value, opts...).String())
}

// DeleteCookie expires the cookie in the browser
func DeleteCookie(resp http.ResponseWriter, name, path string) {
	SetCookie(resp, name, "", Path(path), MaxAge(-1))
}

// GetCookie returns given cookie value from request header.
func GetCookie(req *http.Request, name string) string {
	cookie, err := req.Cookie(name)
	if err != nil {
		return ""
	}
	val, _ := url.QueryUnescape(cookie.Value)
	return val
}
