// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"
	"strings"
	"time"
)

// OpenIDSelectorProvider is one provider entry from [openid_selector.provider.<id>]
type OpenIDSelectorProvider struct {
	ID    string
	Name  string
	URL   string
	Label string
	Tier  string
}

const (
	ProviderTierLarge = "large"
	ProviderTierSmall = "small"
)

// OpenIDSelector settings
var OpenIDSelector = struct {
	CookieName       string
	CookiePath       string
	CookieExpires    int // days
	InputID          string
	FormAction       string
	ImgPath          string
	Sprite           string
	AllSmall         bool
	NoSprite         bool
	ImageTitle       string
	SigninText       string
	Demo             bool
	DemoText         string
	InstanceTTL      time.Duration
	MaxInstances     int
	DefaultProviders bool
	Providers        []OpenIDSelectorProvider
}{
	CookieName:       "openid_provider",
	CookiePath:       "/",
	CookieExpires:    6 * 30,
	InputID:          "openid_identifier",
	ImgPath:          "assets/img/openid/",
	Sprite:           "en",
	ImageTitle:       "{provider}",
	SigninText:       "Sign-In",
	DemoText:         "In client demo mode. Normally would have submitted OpenID:",
	InstanceTTL:      time.Hour,
	MaxInstances:     10000,
	DefaultProviders: true,
}

// DefaultOpenIDProviders are the providers known to the selector out of the box, large tier first
var DefaultOpenIDProviders = []OpenIDSelectorProvider{
	{ID: "google", Name: "Google", URL: "https://www.google.com/accounts/o8/id", Tier: ProviderTierLarge},
	{ID: "yahoo", Name: "Yahoo", URL: "http://me.yahoo.com/", Tier: ProviderTierLarge},
	{ID: "aol", Name: "AOL", Label: "Enter your AOL screenname.", URL: "http://openid.aol.com/{username}", Tier: ProviderTierLarge},
	{ID: "myopenid", Name: "MyOpenID", Label: "Enter your MyOpenID username.", URL: "http://{username}.myopenid.com/", Tier: ProviderTierLarge},
	{ID: "openid", Name: "OpenID", Label: "Enter your OpenID.", URL: "", Tier: ProviderTierLarge},

	{ID: "livejournal", Name: "LiveJournal", Label: "Enter your Livejournal username.", URL: "http://{username}.livejournal.com/", Tier: ProviderTierSmall},
	{ID: "wordpress", Name: "Wordpress", Label: "Enter your Wordpress.com username.", URL: "http://{username}.wordpress.com/", Tier: ProviderTierSmall},
	{ID: "blogger", Name: "Blogger", Label: "Your Blogger account", URL: "http://{username}.blogspot.com/", Tier: ProviderTierSmall},
	{ID: "verisign", Name: "Verisign", Label: "Your Verisign username", URL: "http://{username}.pip.verisignlabs.com/", Tier: ProviderTierSmall},
	{ID: "claimid", Name: "ClaimID", Label: "Your ClaimID username", URL: "http://claimid.com/{username}", Tier: ProviderTierSmall},
	{ID: "clickpass", Name: "ClickPass", Label: "Enter your ClickPass username", URL: "http://clickpass.com/public/{username}", Tier: ProviderTierSmall},
	{ID: "google_profile", Name: "Google Profile", Label: "Enter your Google Profile username", URL: "http://www.google.com/profiles/{username}", Tier: ProviderTierSmall},
}

func loadOpenIDSelectorFrom(rootCfg ConfigProvider) error {
	sec := rootCfg.Section("openid_selector")
	OpenIDSelector.CookieName = sec.Key("COOKIE_NAME").MustString(OpenIDSelector.CookieName)
	OpenIDSelector.CookiePath = sec.Key("COOKIE_PATH").MustString(OpenIDSelector.CookiePath)
	OpenIDSelector.CookieExpires = sec.Key("COOKIE_EXPIRES").MustInt(OpenIDSelector.CookieExpires)
	OpenIDSelector.InputID = sec.Key("INPUT_ID").MustString(OpenIDSelector.InputID)
	OpenIDSelector.FormAction = sec.Key("FORM_ACTION").MustString(OpenIDSelector.FormAction)
	OpenIDSelector.ImgPath = sec.Key("IMG_PATH").MustString(OpenIDSelector.ImgPath)
	OpenIDSelector.Sprite = sec.Key("SPRITE").MustString(OpenIDSelector.Sprite)
	OpenIDSelector.AllSmall = sec.Key("ALL_SMALL").MustBool(OpenIDSelector.AllSmall)
	OpenIDSelector.NoSprite = sec.Key("NO_SPRITE").MustBool(OpenIDSelector.NoSprite)
	OpenIDSelector.ImageTitle = sec.Key("IMAGE_TITLE").MustString(OpenIDSelector.ImageTitle)
	OpenIDSelector.SigninText = sec.Key("SIGNIN_TEXT").MustString(OpenIDSelector.SigninText)
	OpenIDSelector.Demo = sec.Key("DEMO").MustBool(OpenIDSelector.Demo)
	OpenIDSelector.DemoText = sec.Key("DEMO_TEXT").MustString(OpenIDSelector.DemoText)
	OpenIDSelector.InstanceTTL = sec.Key("INSTANCE_TTL").MustDuration(OpenIDSelector.InstanceTTL)
	OpenIDSelector.MaxInstances = sec.Key("MAX_INSTANCES").MustInt(OpenIDSelector.MaxInstances)
	OpenIDSelector.DefaultProviders = sec.Key("DEFAULT_PROVIDERS").MustBool(OpenIDSelector.DefaultProviders)

	if OpenIDSelector.CookieExpires <= 0 {
		return fmt.Errorf("[openid_selector] COOKIE_EXPIRES must be a positive number of days, got %d", OpenIDSelector.CookieExpires)
	}
	if OpenIDSelector.InputID == "" {
		return fmt.Errorf("[openid_selector] INPUT_ID must not be empty")
	}

	OpenIDSelector.Providers = nil
	for _, child := range sec.ChildSections() {
		// child names look like "openid_selector.provider.google"
		id, ok := strings.CutPrefix(child.Name(), "openid_selector.provider.")
		if !ok || id == "" || strings.Contains(id, ".") {
			continue
		}
		p := OpenIDSelectorProvider{
			ID:    id,
			Name:  child.Key("NAME").MustString(id),
			URL:   child.Key("URL").MustString(""),
			Label: child.Key("LABEL").MustString(""),
			Tier:  strings.ToLower(child.Key("TIER").MustString(ProviderTierLarge)),
		}
		if p.Tier != ProviderTierLarge && p.Tier != ProviderTierSmall {
			return fmt.Errorf("[%s] TIER must be %q or %q, got %q", child.Name(), ProviderTierLarge, ProviderTierSmall, p.Tier)
		}
		OpenIDSelector.Providers = append(OpenIDSelector.Providers, p)
	}
	if !OpenIDSelector.DefaultProviders && len(OpenIDSelector.Providers) == 0 {
		return fmt.Errorf("[openid_selector] DEFAULT_PROVIDERS is disabled but no provider is configured")
	}
	return nil
}

// OpenIDSelectorProviderGroups returns the provider lists to register, defaults first so that
// configured providers with the same id replace them
func OpenIDSelectorProviderGroups() [][]OpenIDSelectorProvider {
	var groups [][]OpenIDSelectorProvider
	if OpenIDSelector.DefaultProviders {
		groups = append(groups, DefaultOpenIDProviders)
	}
	if len(OpenIDSelector.Providers) > 0 {
		groups = append(groups, OpenIDSelector.Providers)
	}
	return groups
}
