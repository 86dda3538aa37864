// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package test

import (
	"net/http"
	"strings"
)

// RedirectURL returns the redirect URL of a http response.
func RedirectURL(resp http.ResponseWriter) string {
	return resp.Header().Get("Location")
}

// MockVariableValue sets a variable and returns a func to restore the old value, eg: defer test.MockVariableValue(&v, 1)()
func MockVariableValue[T any](p *T, v ...T) (reset func()) {
	old := *p
	if len(v) > 0 {
		*p = v[0]
	}
	return func() { *p = old }
}

// SetCookies returns the values of the Set-Cookie headers with the given name
func SetCookies(resp http.ResponseWriter, name string) []string {
	var res []string
	for _, v := range resp.Header().Values("Set-Cookie") {
		if strings.HasPrefix(v, name+"=") {
			res = append(res, v)
		}
	}
	return res
}
