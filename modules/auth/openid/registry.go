// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

import (
	"code.gitea.io/openid-selector/modules/log"
)

// Registry maps provider ids to providers. It is built once at startup and only read afterwards.
type Registry struct {
	providers map[string]Provider
	order     []string
}

// NewRegistry creates a registry from the given groups, see Register
func NewRegistry(groups ...ProviderGroup) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	r.Register(groups...)
	return r
}

// Register merges the groups into the registry. A provider with an id that is already known
// replaces the previous one, the display position of the first registration is kept.
func (r *Registry) Register(groups ...ProviderGroup) {
	for _, group := range groups {
		for _, p := range group.Providers {
			if p.ID == "" {
				log.Warn("Ignoring openid provider %q without id", p.Name)
				continue
			}
			if p.Tier == "" {
				p.Tier = group.Tier
			}
			if p.Tier == "" {
				p.Tier = TierLarge
			}
			if _, ok := r.providers[p.ID]; !ok {
				r.order = append(r.order, p.ID)
			} else {
				log.Trace("openid provider %q is overridden", p.ID)
			}
			r.providers[p.ID] = p
		}
	}
}

// Get returns the provider with the given id
func (r *Registry) Get(id string) (Provider, bool) {
	p, ok := r.providers[id]
	return p, ok
}

// Providers returns all providers in display order
func (r *Registry) Providers() []Provider {
	res := make([]Provider, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, r.providers[id])
	}
	return res
}

func (r *Registry) Len() int {
	return len(r.order)
}
