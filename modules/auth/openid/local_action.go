// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

import (
	"strings"
)

// LocalActionPrefix marks a resolved value that is a local directive instead of an URL
const LocalActionPrefix = "javascript:"

// LocalAction is a directive parsed from a resolved value like "javascript:name(payload)"
type LocalAction struct {
	// Directive is everything after the prefix, eg: "doThing()"
	Directive string `json:"directive"`
	Name      string `json:"name"`
	Payload   string `json:"payload,omitempty"`
}

// ParseLocalAction splits a directive into the action name and its payload.
// Nothing is evaluated, the name only selects a registered action.
func ParseLocalAction(directive string) LocalAction {
	act := LocalAction{Directive: directive}
	call := strings.TrimSuffix(strings.TrimSpace(directive), ";")
	open := strings.IndexByte(call, '(')
	if open < 0 || !strings.HasSuffix(call, ")") {
		act.Name = call
		return act
	}
	act.Name = strings.TrimSpace(call[:open])
	act.Payload = strings.TrimSpace(call[open+1 : len(call)-1])
	return act
}

// LocalActionFunc runs a local action with the payload of the directive
type LocalActionFunc func(payload string) error

// LocalActions is the closed set of actions the host allows providers to trigger
type LocalActions struct {
	actions map[string]LocalActionFunc
}

func NewLocalActions() *LocalActions {
	return &LocalActions{actions: make(map[string]LocalActionFunc)}
}

// Register adds or replaces the named action
func (a *LocalActions) Register(name string, fn LocalActionFunc) {
	a.actions[name] = fn
}

// Clone returns a copy that can be extended without changing a
func (a *LocalActions) Clone() *LocalActions {
	res := NewLocalActions()
	if a != nil {
		for name, fn := range a.actions {
			res.actions[name] = fn
		}
	}
	return res
}

// Has reports whether the named action is registered
func (a *LocalActions) Has(name string) bool {
	if a == nil {
		return false
	}
	_, ok := a.actions[name]
	return ok
}

// Run executes the action, executed is false when the name is not registered
func (a *LocalActions) Run(act LocalAction) (executed bool, err error) {
	if a == nil {
		return false, nil
	}
	fn, ok := a.actions[act.Name]
	if !ok {
		return false, nil
	}
	return true, fn(act.Payload)
}
