// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

// Tier is the icon size group a provider is shown in
type Tier string

const (
	TierLarge Tier = "large"
	TierSmall Tier = "small"
)

const (
	// UsernamePlaceholder is replaced by the user input in a provider URL
	UsernamePlaceholder = "{username}"

	// GenericProviderName is the display name of the "enter your own identifier" provider,
	// its input is typed straight into the host form identifier field
	GenericProviderName = "OpenID"
)

// Provider describes one identity provider the user can pick
type Provider struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Label string `json:"label,omitempty"`
	Tier  Tier   `json:"tier"`
}

// RequiresInput reports whether the user must type something before the URL can be built
func (p *Provider) RequiresInput() bool {
	return p.Label != ""
}

// IsGenericOpenID reports whether this is the free-form identifier provider
func (p *Provider) IsGenericOpenID() bool {
	return p.Name == GenericProviderName
}

// ProviderGroup is a list of providers supplied together, eg: the large or the small icons
type ProviderGroup struct {
	Tier      Tier
	Providers []Provider
}
