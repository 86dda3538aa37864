// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

import (
	"errors"
	"fmt"

	"code.gitea.io/openid-selector/modules/util"
)

var (
	// ErrNoProviderSelected blocks a submit before any provider was picked
	ErrNoProviderSelected = util.NewInvalidArgumentErrorf("no openid provider selected")
	// ErrMissingRequiredInput blocks a submit while the selected provider still waits for input
	ErrMissingRequiredInput = util.NewInvalidArgumentErrorf("openid provider requires input")
)

// ErrProviderNotFound represents a selection of an unknown provider, eg: a stale persisted choice
type ErrProviderNotFound struct {
	ID string
}

// IsErrProviderNotFound checks if an error is a ErrProviderNotFound.
func IsErrProviderNotFound(err error) bool {
	var e ErrProviderNotFound
	return errors.As(err, &e)
}

func (err ErrProviderNotFound) Error() string {
	return fmt.Sprintf("openid provider does not exist [id: %s]", err.ID)
}

func (err ErrProviderNotFound) Unwrap() error {
	return util.ErrNotExist
}
