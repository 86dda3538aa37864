// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

import (
	"time"

	"code.gitea.io/openid-selector/modules/util"
)

// Store keeps the last selected provider id
type Store interface {
	// Save overwrites the token, it expires ttlDays from now and is only visible under scopePath
	Save(token string, ttlDays int, scopePath string) error
	// Load returns the token if it is present and not yet expired
	Load() (string, bool)
}

var timeNow = time.Now

func expiryFromNow(ttlDays int) (time.Time, error) {
	if ttlDays <= 0 {
		return time.Time{}, util.NewInvalidArgumentErrorf("persisted choice must live at least one day, got %d", ttlDays)
	}
	return timeNow().Add(time.Duration(ttlDays) * 24 * time.Hour), nil
}

// MemoryStore is an in-process Store, expiry is checked when the token is loaded
type MemoryStore struct {
	token   string
	path    string
	expires time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(token string, ttlDays int, scopePath string) error {
	expires, err := expiryFromNow(ttlDays)
	if err != nil {
		return err
	}
	s.token, s.path, s.expires = token, scopePath, expires
	return nil
}

func (s *MemoryStore) Load() (string, bool) {
	if s.expires.IsZero() {
		return "", false
	}
	if !timeNow().Before(s.expires) {
		s.token, s.path, s.expires = "", "", time.Time{}
		return "", false
	}
	return s.token, true
}

// Expires returns when the saved token expires, zero if nothing is saved
func (s *MemoryStore) Expires() time.Time {
	return s.expires
}

// Path returns the scope path of the saved token
func (s *MemoryStore) Path() string {
	return s.path
}
