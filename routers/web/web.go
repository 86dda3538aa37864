// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package web

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"code.gitea.io/openid-selector/modules/auth/openid"
	"code.gitea.io/openid-selector/modules/setting"
	"code.gitea.io/openid-selector/modules/templates"
	"code.gitea.io/openid-selector/modules/web/routing"
	"code.gitea.io/openid-selector/routers/web/auth"
	"code.gitea.io/openid-selector/routers/web/healthcheck"
	auth_service "code.gitea.io/openid-selector/services/auth"

	"github.com/chi-middleware/proxy"
	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Routes returns the web routes, actions are the local actions providers may trigger
func Routes(ctx context.Context, actions *openid.LocalActions) (http.Handler, error) {
	renderer, err := templates.NewHTMLRenderer()
	if err != nil {
		return nil, err
	}
	registry := auth_service.NewOpenIDRegistry()
	selector := auth.NewOpenIDSelector(registry, renderer, actions)

	r := chi.NewRouter()
	if setting.ReverseProxyLimit > 0 {
		r.Use(forwardedHeadersHandler())
	}
	r.Use(routing.NewLoggerHandler(ctx, 3*time.Second))
	r.Use(chi_middleware.Recoverer)

	loginURL := setting.AppSubURL + "/user/login/openid"
	r.Get(setting.AppSubURL+"/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, loginURL, http.StatusSeeOther)
	})
	r.Route(loginURL, func(r chi.Router) {
		r.Get("/", selector.SignIn)
		r.Post("/", selector.SignInPost)
		r.Post("/select", selector.Select)
		r.Group(func(r chi.Router) {
			r.Use(corsHandler())
			r.Get("/providers.json", selector.ProvidersJSON)
			// preflight requests are answered by the cors handler
			r.Options("/providers.json", func(http.ResponseWriter, *http.Request) {})
		})
	})
	r.Get(setting.AppSubURL+"/api/healthz", healthcheck.NewCheck("openid-selector", map[string]healthcheck.Checker{
		"providers:registry": func() error {
			if registry.Len() == 0 {
				return errors.New("no openid provider registered")
			}
			return nil
		},
		"templates": func() error {
			if !renderer.HasTemplate("user/auth/openid_selector") {
				return errors.New("selector template is missing")
			}
			return nil
		},
	}))
	return r, nil
}

// forwardedHeadersHandler takes the client address from the X-Forwarded-For headers set by trusted proxies
func forwardedHeadersHandler() func(next http.Handler) http.Handler {
	opt := proxy.NewForwardedHeadersOptions().
		WithForwardLimit(setting.ReverseProxyLimit).
		ClearTrustedProxies()
	for _, n := range setting.ReverseProxyTrustedProxies {
		if !strings.Contains(n, "/") {
			opt.AddTrustedProxy(n)
		} else {
			opt.AddTrustedNetwork(n)
		}
	}
	return proxy.ForwardedHeaders(opt)
}

// corsHandler lets other sites fetch the provider descriptors when [cors] is enabled
func corsHandler() func(next http.Handler) http.Handler {
	if !setting.CORSConfig.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   setting.CORSConfig.AllowDomain,
		AllowedMethods:   setting.CORSConfig.Methods,
		AllowCredentials: setting.CORSConfig.AllowCredentials,
		MaxAge:           int(setting.CORSConfig.MaxAge.Seconds()),
	})
}
