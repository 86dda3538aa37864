// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

import (
	"fmt"
	"strings"

	"code.gitea.io/openid-selector/modules/log"
)

// OutcomeKind is the decision of the submission gate
type OutcomeKind int

const (
	OutcomeBlock OutcomeKind = iota
	OutcomeAllow
	OutcomeLocalAction
	OutcomeDemo
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAllow:
		return "Allow"
	case OutcomeLocalAction:
		return "LocalAction"
	case OutcomeDemo:
		return "Demo"
	default:
		return "Block"
	}
}

// Outcome is returned by PrepareSubmit
type Outcome struct {
	Kind OutcomeKind
	// Value is the identifier for Allow and Demo, the directive for LocalAction
	Value string
	// Action is the parsed directive of a LocalAction
	Action LocalAction
	// Executed is set when a registered local action was run
	Executed bool
	// Message is shown to the user in demo mode
	Message string
	// Err is the block reason, or the error of a local action
	Err error
}

func (o Outcome) String() string {
	if o.Kind == OutcomeBlock {
		return fmt.Sprintf("Block(%v)", o.Err)
	}
	return fmt.Sprintf("%s(%q)", o.Kind, o.Value)
}

// GateOptions configures a Gate
type GateOptions struct {
	// InputID is the identifier field of the host form
	InputID  string
	Demo     bool
	DemoText string
}

// Gate decides whether the host form may be submitted
type Gate struct {
	controller *Controller
	form       HostForm
	actions    *LocalActions
	opts       GateOptions
}

// NewGate creates a gate for the controller writing into form, actions may be nil
func NewGate(controller *Controller, form HostForm, actions *LocalActions, opts GateOptions) *Gate {
	return &Gate{controller: controller, form: form, actions: actions, opts: opts}
}

// SetForm binds the host form, eg: the form of the current request
func (g *Gate) SetForm(form HostForm) {
	g.form = form
}

// PrepareSubmit builds the final identifier and writes it into the host form.
// Calling it again with the same state gives the same outcome.
func (g *Gate) PrepareSubmit(userInput string) Outcome {
	p, ok := g.controller.Provider()
	if !ok {
		return Outcome{Kind: OutcomeBlock, Err: ErrNoProviderSelected}
	}
	if p.RequiresInput() {
		// a cleared field or the untouched prefill is no input, whatever was submitted before
		field, _ := g.controller.InputField()
		if input := strings.TrimSpace(userInput); input == "" || input == field.Value {
			return Outcome{Kind: OutcomeBlock, Err: ErrMissingRequiredInput}
		}
	}

	value := g.controller.ResolveFinalValue(userInput)
	if value == "" {
		log.Debug("openid provider %q resolved to an empty identifier", p.ID)
		return Outcome{Kind: OutcomeBlock, Err: ErrMissingRequiredInput}
	}

	if directive, ok := strings.CutPrefix(value, LocalActionPrefix); ok {
		g.controller.persist()
		act := ParseLocalAction(directive)
		executed, err := g.actions.Run(act)
		if !executed {
			log.Warn("openid provider %q requested unknown local action %q", p.ID, act.Name)
		} else if err != nil {
			log.Error("Local action %q of openid provider %q failed: %v", act.Name, p.ID, err)
		}
		return Outcome{Kind: OutcomeLocalAction, Value: directive, Action: act, Executed: executed, Err: err}
	}

	if g.form != nil {
		g.form.SetField(g.opts.InputID, value)
	}
	g.controller.complete(value)

	if g.opts.Demo {
		msg := value
		if g.opts.DemoText != "" {
			msg = g.opts.DemoText + "\n" + value
		}
		return Outcome{Kind: OutcomeDemo, Value: value, Message: msg}
	}

	g.controller.persist()
	return Outcome{Kind: OutcomeAllow, Value: value}
}
