// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

import (
	"strings"
)

const (
	largeSpriteWidth = 100
	smallSpriteWidth = 24
	smallSpriteRow   = -60
)

// RenderOptions controls how the provider buttons are drawn
type RenderOptions struct {
	ImgPath string
	// Sprite is the suffix of the sprite image, usually the locale
	Sprite   string
	AllSmall bool
	NoSprite bool
	// ImageTitle is the button title, "{provider}" is replaced by the provider name
	ImageTitle string
}

// RenderDescriptor is everything the presentation layer needs to draw one provider button
type RenderDescriptor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	// Tier is the size the button is drawn with, it differs from the provider tier with AllSmall
	Tier     Tier   `json:"tier"`
	Index    int    `json:"index"`
	SpriteX  int    `json:"sprite_x"`
	SpriteY  int    `json:"sprite_y"`
	ImageURL string `json:"image_url"`
	// NoSprite is set when ImageURL is a single image instead of the sprite
	NoSprite    bool `json:"no_sprite,omitempty"`
	Highlighted bool `json:"highlighted,omitempty"`
}

// BuildRenderDescriptors lays out the providers, large ones first. The sprite index runs across both tiers.
func BuildRenderDescriptors(registry *Registry, opts RenderOptions, highlighted string) []RenderDescriptor {
	providers := registry.Providers()
	ordered := make([]Provider, 0, len(providers))
	for _, tier := range []Tier{TierLarge, TierSmall} {
		for _, p := range providers {
			if p.Tier == tier {
				ordered = append(ordered, p)
			}
		}
	}

	title := opts.ImageTitle
	if title == "" {
		title = "{provider}"
	}

	res := make([]RenderDescriptor, 0, len(ordered))
	for i, p := range ordered {
		size := p.Tier
		if opts.AllSmall {
			size = TierSmall
		}
		desc := RenderDescriptor{
			ID:          p.ID,
			Name:        p.Name,
			Title:       strings.Replace(title, "{provider}", p.Name, 1),
			Tier:        size,
			Index:       i,
			Highlighted: p.ID == highlighted,
		}
		if opts.NoSprite {
			ext := ".gif"
			if size == TierSmall {
				ext = ".ico.gif"
			}
			desc.NoSprite = true
			desc.ImageURL = opts.ImgPath + "../images." + string(size) + "/" + p.ID + ext
		} else {
			if size == TierSmall {
				desc.SpriteX, desc.SpriteY = -i*smallSpriteWidth, smallSpriteRow
			} else {
				desc.SpriteX = -i * largeSpriteWidth
			}
			desc.ImageURL = opts.ImgPath + "openid-providers-" + opts.Sprite + ".png"
		}
		res = append(res, desc)
	}
	return res
}
