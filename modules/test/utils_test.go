// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockVariableValue(t *testing.T) {
	v := 1
	reset := MockVariableValue(&v, 2)
	assert.Equal(t, 2, v)
	reset()
	assert.Equal(t, 1, v)
}

func TestSetCookies(t *testing.T) {
	resp := httptest.NewRecorder()
	http.SetCookie(resp, &http.Cookie{Name: "a", Value: "1"})
	http.SetCookie(resp, &http.Cookie{Name: "ab", Value: "2"})
	http.Redirect(resp, httptest.NewRequest(http.MethodGet, "/", nil), "/next", http.StatusSeeOther)
	assert.Equal(t, []string{"a=1"}, SetCookies(resp, "a"))
	assert.Equal(t, "/next", RedirectURL(resp))
}
