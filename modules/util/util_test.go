// Copyright 2018 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTrimSpace(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitTrimSpace("a\nb\nc", "\n"))
	assert.Equal(t, []string{"a", "b"}, SplitTrimSpace("\r\na\n\r\nb\n\n", "\n"))
	assert.Nil(t, SplitTrimSpace("  ", ","))
}

func TestCryptoRandomBytes(t *testing.T) {
	bs, err := CryptoRandomBytes(32)
	assert.NoError(t, err)
	assert.Len(t, bs, 32)
}

func TestIfZero(t *testing.T) {
	assert.Equal(t, "/", IfZero("", "/"))
	assert.Equal(t, "/sub", IfZero("/sub", "/"))
	assert.Equal(t, 180, IfZero(0, 180))
}

func TestSilentWrap(t *testing.T) {
	err := NewInvalidArgumentErrorf("ttl must be positive, got %d", 0)
	assert.Equal(t, "ttl must be positive, got 0", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrNotExist))
}
