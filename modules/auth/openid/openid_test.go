// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	id, err := Normalize("alice.example")
	assert.NoError(t, err)
	assert.Equal(t, "http://alice.example/", id)

	id, err = Normalize("https://alice.example/path")
	assert.NoError(t, err)
	assert.Equal(t, "https://alice.example/path", id)
}

func TestAllowedURI(t *testing.T) {
	uri := "http://alice.example/"
	assert.NoError(t, AllowedURI(uri, nil, nil))

	block := []*regexp.Regexp{regexp.MustCompilePOSIX("alice")}
	assert.ErrorIs(t, AllowedURI(uri, nil, block), ErrURINotAllowed{URI: uri})
	assert.NoError(t, AllowedURI("http://bob.example/", nil, block))

	allow := []*regexp.Regexp{regexp.MustCompilePOSIX("^https://")}
	assert.Error(t, AllowedURI(uri, allow, nil))
	// the allow list wins over the block list
	assert.NoError(t, AllowedURI("https://alice.example/", allow, block))
}
