// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

import (
	"net/url"
	"strings"

	"code.gitea.io/openid-selector/modules/log"

	"github.com/dustin/go-humanize"
)

// State is the state of the provider selection
type State int

const (
	StateIdle State = iota
	StateSelected
	StateAwaitingInput
	StateReady
)

var stateNames = map[State]string{
	StateIdle:          "idle",
	StateSelected:      "selected",
	StateAwaitingInput: "awaiting-input",
	StateReady:         "ready",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// UsernameFieldID is the scratch field used for provider input
const UsernameFieldID = "openid_username"

// Highlighter marks the selected provider in the presentation layer.
// Highlight replaces any previous highlight, so at most one provider is highlighted.
type Highlighter interface {
	Highlight(id string)
}

// InputField describes the text field shown while a provider waits for input
type InputField struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
	// UsesHostField is set when the input is typed straight into the host form identifier field
	UsesHostField bool `json:"uses_host_field"`
}

// Options configures a Controller
type Options struct {
	// CookieExpires is the lifetime of the persisted choice in days
	CookieExpires int
	CookiePath    string
	// InputID is the identifier field of the host form
	InputID string
}

// Selection is the result of SelectProvider
type Selection struct {
	Provider Provider
	State    State
	Input    *InputField
	// AutoSubmit is set when a provider without input was picked by the user, the form can be submitted right away
	AutoSubmit bool
	// Err is ErrProviderNotFound for unknown ids, the selection is then a no-op
	Err error
}

// Controller is the provider selection state machine of one selector instance
type Controller struct {
	registry    *Registry
	store       Store
	highlighter Highlighter
	opts        Options

	state       State
	provider    *Provider
	resolvedURL string
	input       *InputField
	restored    bool
	highlighted string
}

// NewController creates a controller in the idle state, store and highlighter may be nil
func NewController(registry *Registry, store Store, highlighter Highlighter, opts Options) *Controller {
	return &Controller{
		registry:    registry,
		store:       store,
		highlighter: highlighter,
		opts:        opts,
	}
}

// SetStore binds the persistence store, eg: the cookie store of the current request
func (c *Controller) SetStore(store Store) {
	c.store = store
}

// Restore selects the persisted provider, if any
func (c *Controller) Restore() Selection {
	if c.store == nil {
		return Selection{State: c.state}
	}
	id, ok := c.store.Load()
	if !ok {
		return Selection{State: c.state}
	}
	return c.SelectProvider(id, true)
}

// SelectProvider picks the provider with the given id. Unknown ids leave the state unchanged.
// A restore never asks for an automatic submit, the persisted choice is refreshed in both cases.
func (c *Controller) SelectProvider(id string, isRestore bool) Selection {
	p, ok := c.registry.Get(id)
	if !ok {
		log.Debug("Ignoring selection of unknown openid provider %q (restore: %t)", id, isRestore)
		return Selection{State: c.state, Err: ErrProviderNotFound{ID: id}}
	}

	// re-selection drops whatever the previous provider was waiting for
	c.state = StateSelected
	c.provider = &p
	c.resolvedURL = ""
	c.input = nil
	c.restored = isRestore

	c.highlight(p.ID)
	c.persist()

	sel := Selection{Provider: p}
	if p.RequiresInput() {
		c.input = c.inputFieldFor(&p)
		c.state = StateAwaitingInput
		field := *c.input
		sel.Input = &field
	} else {
		c.resolvedURL = expandTemplate(p.URL, "")
		c.state = StateReady
		sel.AutoSubmit = !isRestore
	}
	sel.State = c.state
	return sel
}

// ResolveFinalValue builds the identifier from the selected provider and the user input.
// Without input the resolved URL of a provider that takes no input is returned,
// otherwise the template unchanged.
// It returns "" when no provider is selected.
func (c *Controller) ResolveFinalValue(userInput string) string {
	if c.provider == nil {
		return ""
	}
	input := strings.TrimSpace(userInput)
	if input == "" {
		if c.state == StateReady && c.input == nil {
			return c.resolvedURL
		}
		return c.provider.URL
	}
	return expandTemplate(c.provider.URL, input)
}

// complete records the final value once the submit was accepted
func (c *Controller) complete(value string) {
	if c.provider == nil {
		return
	}
	c.resolvedURL = value
	c.state = StateReady
}

func (c *Controller) State() State {
	return c.state
}

// Provider returns the selected provider
func (c *Controller) Provider() (Provider, bool) {
	if c.provider == nil {
		return Provider{}, false
	}
	return *c.provider, true
}

// InputField returns the field the selected provider waits for
func (c *Controller) InputField() (InputField, bool) {
	if c.input == nil {
		return InputField{}, false
	}
	return *c.input, true
}

func (c *Controller) ResolvedURL() string {
	return c.resolvedURL
}

// IsRestored reports whether the current selection came from the persisted choice
func (c *Controller) IsRestored() bool {
	return c.restored
}

// Highlighted returns the id of the highlighted provider, "" if none
func (c *Controller) Highlighted() string {
	return c.highlighted
}

func (c *Controller) highlight(id string) {
	if c.highlighted == id {
		return
	}
	c.highlighted = id
	if c.highlighter != nil {
		c.highlighter.Highlight(id)
	}
}

func (c *Controller) persist() {
	if c.store == nil || c.provider == nil {
		return
	}
	if err := c.store.Save(c.provider.ID, c.opts.CookieExpires, c.opts.CookiePath); err != nil {
		log.Warn("Unable to persist openid provider %q: %v", c.provider.ID, err)
		return
	}
	if log.IsTrace() {
		expires := timeNow().AddDate(0, 0, c.opts.CookieExpires)
		log.Trace("Persisted openid provider %q, expires %s", c.provider.ID, humanize.Time(expires))
	}
}

func (c *Controller) inputFieldFor(p *Provider) *InputField {
	if p.IsGenericOpenID() {
		return &InputField{ID: c.opts.InputID, Label: p.Label, Value: "http://", UsesHostField: true}
	}
	return &InputField{ID: UsernameFieldID, Label: p.Label}
}

// expandTemplate substitutes the first placeholder. A bare placeholder or an empty template
// take the input verbatim, inside a URL the input is escaped.
func expandTemplate(tpl, input string) string {
	if tpl == "" || tpl == UsernamePlaceholder {
		return input
	}
	if !strings.Contains(tpl, UsernamePlaceholder) {
		return tpl
	}
	return strings.Replace(tpl, UsernamePlaceholder, url.PathEscape(input), 1)
}
