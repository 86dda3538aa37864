// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package auth

import (
	"testing"

	"code.gitea.io/openid-selector/modules/auth/openid"
	"code.gitea.io/openid-selector/modules/setting"
	"code.gitea.io/openid-selector/modules/test"

	"github.com/stretchr/testify/assert"
)

func TestNewOpenIDRegistry(t *testing.T) {
	defer test.MockVariableValue(&setting.OpenIDSelector.DefaultProviders, true)()
	defer test.MockVariableValue(&setting.OpenIDSelector.Providers, []setting.OpenIDSelectorProvider{
		{ID: "google", Name: "Google Apps", URL: "https://apps.google.example/", Tier: setting.ProviderTierSmall},
		{ID: "corp", Name: "Corp", URL: "https://id.corp.example/{username}", Label: "Corp login", Tier: setting.ProviderTierLarge},
	})()

	r := NewOpenIDRegistry()
	assert.Equal(t, len(setting.DefaultOpenIDProviders)+1, r.Len())

	p, ok := r.Get("google")
	assert.True(t, ok)
	assert.Equal(t, "Google Apps", p.Name)
	assert.Equal(t, openid.TierSmall, p.Tier)

	p, ok = r.Get("corp")
	assert.True(t, ok)
	assert.True(t, p.RequiresInput())
	assert.Equal(t, "corp", r.Providers()[r.Len()-1].ID)
}

func TestNewOpenIDRegistryWithoutDefaults(t *testing.T) {
	defer test.MockVariableValue(&setting.OpenIDSelector.DefaultProviders, false)()
	defer test.MockVariableValue(&setting.OpenIDSelector.Providers, []setting.OpenIDSelectorProvider{
		{ID: "corp", Name: "Corp", URL: "https://id.corp.example/", Tier: setting.ProviderTierLarge},
	})()

	r := NewOpenIDRegistry()
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, -1, SmallGroupIndex(r))
}

func TestSmallGroupIndex(t *testing.T) {
	r := openid.NewRegistry(
		openid.ProviderGroup{Tier: openid.TierLarge, Providers: []openid.Provider{{ID: "a"}, {ID: "b"}}},
		openid.ProviderGroup{Tier: openid.TierSmall, Providers: []openid.Provider{{ID: "c"}}},
	)
	assert.Equal(t, 2, SmallGroupIndex(r))
}

func TestOpenIDRenderOptions(t *testing.T) {
	defer test.MockVariableValue(&setting.AppSubURL, "/sub")()
	defer test.MockVariableValue(&setting.OpenIDSelector.ImgPath, "img/")()
	assert.Equal(t, "/sub/img/", OpenIDRenderOptions().ImgPath)
}
