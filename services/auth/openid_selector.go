// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package auth

import (
	"code.gitea.io/openid-selector/modules/auth/openid"
	"code.gitea.io/openid-selector/modules/log"
	"code.gitea.io/openid-selector/modules/setting"
)

// NewOpenIDRegistry builds the provider registry from the [openid_selector] settings
func NewOpenIDRegistry() *openid.Registry {
	registry := openid.NewRegistry()
	for _, group := range setting.OpenIDSelectorProviderGroups() {
		large := openid.ProviderGroup{Tier: openid.TierLarge}
		small := openid.ProviderGroup{Tier: openid.TierSmall}
		for _, p := range group {
			provider := openid.Provider{ID: p.ID, Name: p.Name, URL: p.URL, Label: p.Label, Tier: openid.Tier(p.Tier)}
			if provider.Tier == openid.TierSmall {
				small.Providers = append(small.Providers, provider)
			} else {
				large.Providers = append(large.Providers, provider)
			}
		}
		registry.Register(large, small)
	}
	log.Debug("Registered %d openid providers", registry.Len())
	return registry
}

// OpenIDControllerOptions returns the controller options from the settings
func OpenIDControllerOptions() openid.Options {
	return openid.Options{
		CookieExpires: setting.OpenIDSelector.CookieExpires,
		CookiePath:    setting.OpenIDSelector.CookiePath,
		InputID:       setting.OpenIDSelector.InputID,
	}
}

// OpenIDGateOptions returns the gate options from the settings
func OpenIDGateOptions() openid.GateOptions {
	return openid.GateOptions{
		InputID:  setting.OpenIDSelector.InputID,
		Demo:     setting.OpenIDSelector.Demo,
		DemoText: setting.OpenIDSelector.DemoText,
	}
}

// OpenIDRenderOptions returns the render options from the settings
func OpenIDRenderOptions() openid.RenderOptions {
	return openid.RenderOptions{
		ImgPath:    setting.AppSubURL + "/" + setting.OpenIDSelector.ImgPath,
		Sprite:     setting.OpenIDSelector.Sprite,
		AllSmall:   setting.OpenIDSelector.AllSmall,
		NoSprite:   setting.OpenIDSelector.NoSprite,
		ImageTitle: setting.OpenIDSelector.ImageTitle,
	}
}

// SmallGroupIndex returns the display index of the first small provider, -1 if there is none
func SmallGroupIndex(registry *openid.Registry) int {
	large, small := 0, 0
	for _, p := range registry.Providers() {
		if p.Tier == openid.TierSmall {
			small++
		} else {
			large++
		}
	}
	if small == 0 {
		return -1
	}
	return large
}
