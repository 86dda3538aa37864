// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRenderDescriptors(t *testing.T) {
	r := NewRegistry(
		ProviderGroup{Tier: TierSmall, Providers: []Provider{{ID: "blogger", Name: "Blogger"}}},
		ProviderGroup{Tier: TierLarge, Providers: []Provider{
			{ID: "google", Name: "Google"},
			{ID: "yahoo", Name: "Yahoo"},
		}},
	)
	descs := BuildRenderDescriptors(r, RenderOptions{ImgPath: "/assets/img/", Sprite: "en", ImageTitle: "log in with {provider}"}, "yahoo")
	require.Len(t, descs, 3)

	assert.Equal(t, RenderDescriptor{
		ID: "google", Name: "Google", Title: "log in with Google", Tier: TierLarge, Index: 0,
		ImageURL: "/assets/img/openid-providers-en.png",
	}, descs[0])
	assert.Equal(t, "yahoo", descs[1].ID)
	assert.Equal(t, -100, descs[1].SpriteX)
	assert.True(t, descs[1].Highlighted)

	assert.Equal(t, "blogger", descs[2].ID)
	assert.Equal(t, TierSmall, descs[2].Tier)
	assert.Equal(t, 2, descs[2].Index)
	assert.Equal(t, -48, descs[2].SpriteX)
	assert.Equal(t, -60, descs[2].SpriteY)
	assert.False(t, descs[2].Highlighted)
}

func TestBuildRenderDescriptorsAllSmallNoSprite(t *testing.T) {
	r := NewRegistry(
		ProviderGroup{Tier: TierLarge, Providers: []Provider{{ID: "google", Name: "Google"}}},
		ProviderGroup{Tier: TierSmall, Providers: []Provider{{ID: "blogger", Name: "Blogger"}}},
	)

	descs := BuildRenderDescriptors(r, RenderOptions{ImgPath: "img/", Sprite: "en", AllSmall: true}, "")
	require.Len(t, descs, 2)
	assert.Equal(t, TierSmall, descs[0].Tier)
	assert.Equal(t, 0, descs[0].SpriteX)
	assert.Equal(t, -60, descs[0].SpriteY)
	assert.Equal(t, "Google", descs[0].Title)
	assert.Equal(t, -24, descs[1].SpriteX)

	descs = BuildRenderDescriptors(r, RenderOptions{ImgPath: "img/", NoSprite: true}, "")
	assert.True(t, descs[0].NoSprite)
	assert.Equal(t, "img/../images.large/google.gif", descs[0].ImageURL)
	assert.Equal(t, "img/../images.small/blogger.ico.gif", descs[1].ImageURL)
	assert.Zero(t, descs[1].SpriteX)
}
