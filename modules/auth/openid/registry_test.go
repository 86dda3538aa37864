// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry(
		ProviderGroup{Tier: TierLarge, Providers: []Provider{
			{ID: "google", Name: "Google", URL: "https://google.example/"},
			{ID: "openid", Name: "OpenID", Label: "Enter your OpenID."},
		}},
		ProviderGroup{Tier: TierSmall, Providers: []Provider{
			{ID: "blogger", Name: "Blogger", URL: "http://{username}.blogspot.com/", Label: "Your Blogger account"},
			{ID: "", Name: "Nameless"},
		}},
	)
	assert.Equal(t, 3, r.Len())

	p, ok := r.Get("blogger")
	assert.True(t, ok)
	assert.Equal(t, TierSmall, p.Tier)
	assert.True(t, p.RequiresInput())
	assert.False(t, p.IsGenericOpenID())

	p, ok = r.Get("openid")
	assert.True(t, ok)
	assert.True(t, p.IsGenericOpenID())

	_, ok = r.Get("unknown")
	assert.False(t, ok)
	_, ok = r.Get("")
	assert.False(t, ok)
}

func TestRegistryLastWriterWins(t *testing.T) {
	r := NewRegistry(ProviderGroup{Tier: TierLarge, Providers: []Provider{
		{ID: "google", Name: "Google", URL: "https://google.example/"},
		{ID: "yahoo", Name: "Yahoo", URL: "https://yahoo.example/"},
	}})
	r.Register(ProviderGroup{Tier: TierSmall, Providers: []Provider{
		{ID: "google", Name: "Google Apps", URL: "https://apps.google.example/"},
	}})

	assert.Equal(t, 2, r.Len())
	p, _ := r.Get("google")
	assert.Equal(t, "Google Apps", p.Name)
	assert.Equal(t, TierSmall, p.Tier)

	ids := make([]string, 0, r.Len())
	for _, p := range r.Providers() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"google", "yahoo"}, ids)
}

func TestRegistryDefaultTier(t *testing.T) {
	r := NewRegistry(ProviderGroup{Providers: []Provider{{ID: "a", Name: "A"}}})
	p, _ := r.Get("a")
	assert.Equal(t, TierLarge, p.Tier)
}
