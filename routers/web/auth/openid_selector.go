// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package auth

import (
	"errors"
	"html/template"
	"net/http"
	"strings"
	"sync"

	"code.gitea.io/openid-selector/modules/auth/openid"
	"code.gitea.io/openid-selector/modules/json"
	"code.gitea.io/openid-selector/modules/log"
	"code.gitea.io/openid-selector/modules/setting"
	"code.gitea.io/openid-selector/modules/templates"
	"code.gitea.io/openid-selector/modules/web/middleware"
	auth_service "code.gitea.io/openid-selector/services/auth"
	"code.gitea.io/openid-selector/services/forms"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	tplSignInOpenIDSelector templates.TplName = "user/auth/openid_selector"
	tplOpenIDHandoff        templates.TplName = "user/auth/openid_handoff"

	sessionName        = "openid_selector"
	sessionInstanceKey = "instance"
)

// selectorInstance is the selector state of one visitor, requests of the same visitor run one after another
type selectorInstance struct {
	mu         sync.Mutex
	id         string
	controller *openid.Controller
	gate       *openid.Gate
	restored   bool
	flash      string
}

// OpenIDSelector serves the provider selector pages
type OpenIDSelector struct {
	registry        *openid.Registry
	renderer        *templates.HTMLRenderer
	labels          map[string]template.HTML
	smallGroupIndex int

	sessions  *sessions.CookieStore
	instances *expirable.LRU[string, *selectorInstance]
	actions   *openid.LocalActions
}

// NewOpenIDSelector creates the selector handlers, actions are the local actions providers may trigger
func NewOpenIDSelector(registry *openid.Registry, renderer *templates.HTMLRenderer, actions *openid.LocalActions) *OpenIDSelector {
	labels := make(map[string]template.HTML, registry.Len())
	for _, p := range registry.Providers() {
		labels[p.ID] = templates.SanitizeHTML(p.Label)
	}

	store := sessions.NewCookieStore([]byte(setting.SecretKey))
	store.Options = &sessions.Options{
		Path:     setting.AppSubURL + "/",
		MaxAge:   int(setting.OpenIDSelector.InstanceTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &OpenIDSelector{
		registry:        registry,
		renderer:        renderer,
		labels:          labels,
		smallGroupIndex: auth_service.SmallGroupIndex(registry),
		sessions:        store,
		instances: expirable.NewLRU[string, *selectorInstance](setting.OpenIDSelector.MaxInstances, func(id string, _ *selectorInstance) {
			log.Trace("openid selector instance %s expired", id)
		}, setting.OpenIDSelector.InstanceTTL),
		actions: actions,
	}
}

func (s *OpenIDSelector) newInstance() *selectorInstance {
	inst := &selectorInstance{id: uuid.NewString()}
	actions := s.actions.Clone()
	// "alert" shows its payload to the user on the next page
	actions.Register("alert", func(payload string) error {
		inst.flash = strings.Trim(payload, `"'`)
		return nil
	})
	inst.controller = openid.NewController(s.registry, nil, nil, auth_service.OpenIDControllerOptions())
	inst.gate = openid.NewGate(inst.controller, nil, actions, auth_service.OpenIDGateOptions())
	return inst
}

// lookupInstance returns the instance of the visitor, nil if there is none
func (s *OpenIDSelector) lookupInstance(req *http.Request) *selectorInstance {
	sess, err := s.sessions.Get(req, sessionName)
	if err != nil {
		log.Debug("Unable to decode openid selector session: %v", err)
	}
	id, ok := sess.Values[sessionInstanceKey].(string)
	if !ok {
		return nil
	}
	inst, ok := s.instances.Get(id)
	if !ok {
		return nil
	}
	return inst
}

// instance returns the instance of the visitor, a new one is created when the visitor has none or it expired.
// The returned instance is locked and bound to the current request.
func (s *OpenIDSelector) instance(w http.ResponseWriter, req *http.Request) *selectorInstance {
	inst := s.lookupInstance(req)
	if inst == nil {
		inst = s.newInstance()
		sess, _ := s.sessions.Get(req, sessionName)
		sess.Values[sessionInstanceKey] = inst.id
		if err := sess.Save(req, w); err != nil {
			log.Error("Unable to save openid selector session: %v", err)
		}
		log.Trace("New openid selector instance %s", inst.id)
	}
	// adding again restarts the ttl
	s.instances.Add(inst.id, inst)

	inst.mu.Lock()
	inst.controller.SetStore(openid.NewCookieStore(w, req, setting.OpenIDSelector.CookieName))
	return inst
}

func (s *OpenIDSelector) release(inst *selectorInstance) {
	inst.controller.SetStore(nil)
	inst.gate.SetForm(nil)
	inst.mu.Unlock()
}

// SignIn renders the selector, the persisted provider is restored on the first view
func (s *OpenIDSelector) SignIn(w http.ResponseWriter, req *http.Request) {
	inst := s.instance(w, req)
	defer s.release(inst)

	if !inst.restored {
		inst.restored = true
		if sel := inst.controller.Restore(); sel.Err != nil {
			log.Debug("Persisted openid provider not restored: %v", sel.Err)
			if openid.IsErrProviderNotFound(sel.Err) {
				middleware.DeleteCookie(w, setting.OpenIDSelector.CookieName, setting.OpenIDSelector.CookiePath)
			}
		}
	}
	s.renderSelector(w, inst, http.StatusOK, "", "")
}

// Select handles a click on a provider button
func (s *OpenIDSelector) Select(w http.ResponseWriter, req *http.Request) {
	form := &forms.SelectOpenIDProviderForm{}
	errs := forms.Bind(req, form)

	inst := s.instance(w, req)
	defer s.release(inst)
	inst.restored = true

	if len(errs) > 0 {
		s.renderSelector(w, inst, http.StatusOK, "error", forms.ErrorMessage(form, errs))
		return
	}

	sel := inst.controller.SelectProvider(form.Provider, false)
	if sel.AutoSubmit {
		s.submit(w, req, inst, "")
		return
	}
	s.renderSelector(w, inst, http.StatusOK, "", "")
}

// SignInPost handles the sign-in button
func (s *OpenIDSelector) SignInPost(w http.ResponseWriter, req *http.Request) {
	form := &forms.SignInOpenIDSelectorForm{}
	errs := forms.Bind(req, form)

	inst := s.instance(w, req)
	defer s.release(inst)
	inst.restored = true

	if len(errs) > 0 {
		s.renderSelector(w, inst, http.StatusOK, "error", forms.ErrorMessage(form, errs))
		return
	}
	s.submit(w, req, inst, userInput(req, inst.controller, form))
}

// userInput picks the value the user typed, the generic provider uses the host identifier field
func userInput(req *http.Request, controller *openid.Controller, form *forms.SignInOpenIDSelectorForm) string {
	field, ok := controller.InputField()
	if !ok || !field.UsesHostField {
		return form.Username
	}
	return strings.TrimSpace(req.PostFormValue(field.ID))
}

func (s *OpenIDSelector) submit(w http.ResponseWriter, req *http.Request, inst *selectorInstance, input string) {
	hostForm := openid.NewForm(setting.OpenIDSelector.InputID)
	inst.gate.SetForm(hostForm)

	out := inst.gate.PrepareSubmit(input)
	log.Trace("openid selector submit: %v", out)

	switch out.Kind {
	case openid.OutcomeBlock:
		s.renderSelector(w, inst, http.StatusOK, "error", blockMessage(out.Err))
	case openid.OutcomeLocalAction:
		msg := inst.flash
		inst.flash = ""
		if !out.Executed {
			msg = "This provider is not available here."
		}
		s.renderSelector(w, inst, http.StatusOK, "info", msg)
	case openid.OutcomeDemo:
		s.renderSelector(w, inst, http.StatusOK, "info", out.Message)
	default:
		s.handoff(w, req, inst, hostForm, out.Value)
	}
}

func blockMessage(err error) string {
	switch {
	case errors.Is(err, openid.ErrNoProviderSelected):
		return "Please click your account provider."
	case errors.Is(err, openid.ErrMissingRequiredInput):
		return "Please enter your account name."
	default:
		return err.Error()
	}
}

// handoff checks the identifier and posts the host form to FORM_ACTION
func (s *OpenIDSelector) handoff(w http.ResponseWriter, req *http.Request, inst *selectorInstance, hostForm *openid.Form, value string) {
	id, err := openid.Normalize(value)
	if err != nil {
		s.renderSelector(w, inst, http.StatusOK, "error", err.Error())
		return
	}
	log.Trace("OpenID uri: %s", id)

	if err = openid.AllowedURI(id, setting.OpenID.Whitelist, setting.OpenID.Blacklist); err != nil {
		log.Debug("Rejected openid identifier from %s: %v", req.RemoteAddr, err)
		s.renderSelector(w, inst, http.StatusOK, "error", err.Error())
		return
	}
	hostForm.SetField(setting.OpenIDSelector.InputID, id)

	if setting.OpenIDSelector.FormAction == "" {
		s.renderSelector(w, inst, http.StatusOK, "success", "Signing in with "+id)
		return
	}
	s.renderer.HTML(w, http.StatusOK, tplOpenIDHandoff, templates.BaseVars().Merge(map[string]any{
		"Title":      "Signing in",
		"FormAction": setting.OpenIDSelector.FormAction,
		"Fields":     hostForm.Fields(),
	}))
}

// ProvidersJSON returns the render descriptors of all providers
func (s *OpenIDSelector) ProvidersJSON(w http.ResponseWriter, req *http.Request) {
	highlighted := ""
	if inst := s.lookupInstance(req); inst != nil {
		inst.mu.Lock()
		highlighted = inst.controller.Highlighted()
		inst.mu.Unlock()
	}
	descs := openid.BuildRenderDescriptors(s.registry, auth_service.OpenIDRenderOptions(), highlighted)

	w.Header().Set("Content-Type", "application/json;charset=utf-8")
	if err := json.NewEncoder(w).Encode(descs); err != nil {
		log.Error("Unable to write openid providers: %v", err)
	}
}

func (s *OpenIDSelector) renderSelector(w http.ResponseWriter, inst *selectorInstance, status int, flashClass, flash string) {
	data := templates.BaseVars().Merge(map[string]any{
		"Title":           "Sign in with OpenID",
		"Providers":       openid.BuildRenderDescriptors(s.registry, auth_service.OpenIDRenderOptions(), inst.controller.Highlighted()),
		"SmallGroupIndex": s.smallGroupIndex,
		"Ready":           inst.controller.State() == openid.StateReady,
		"Flash":           flash,
		"FlashClass":      flashClass,
	})
	if field, ok := inst.controller.InputField(); ok {
		data["Input"] = field
		if p, ok := inst.controller.Provider(); ok {
			data["InputLabel"] = s.labels[p.ID]
		}
	}
	s.renderer.HTML(w, status, tplSignInOpenIDSelector, data)
}
