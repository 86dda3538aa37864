// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"code.gitea.io/openid-selector/modules/log"
	builtin_templates "code.gitea.io/openid-selector/templates"
)

// HTMLRenderer executes the page templates
type HTMLRenderer struct {
	templates *template.Template
}

// NewHTMLRenderer parses every .tmpl file of the builtin templates
func NewHTMLRenderer() (*HTMLRenderer, error) {
	return NewHTMLRendererFromFS(builtin_templates.BuiltinFS())
}

// NewHTMLRendererFromFS parses every .tmpl file of fsys, "user/auth/x.tmpl" is named "user/auth/x"
func NewHTMLRendererFromFS(fsys fs.FS) (*HTMLRenderer, error) {
	tmpls := template.New("").Funcs(NewFuncMap())
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return err
		}
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path, ".tmpl")
		if _, err = tmpls.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("unable to parse template %q: %w", name, err)
		}
		log.Trace("Loaded template %s", name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{templates: tmpls}, nil
}

// HasTemplate reports whether the named template exists
func (r *HTMLRenderer) HasTemplate(name TplName) bool {
	return r.templates.Lookup(string(name)) != nil
}

// ExecuteTemplate writes the named template to w
func (r *HTMLRenderer) ExecuteTemplate(w io.Writer, name TplName, data any) error {
	t := r.templates.Lookup(string(name))
	if t == nil {
		return fmt.Errorf("template %q not found", name)
	}
	return t.Execute(w, data)
}

// HTML renders the template into a buffer first, so a failing template never leaves a half written page
func (r *HTMLRenderer) HTML(w http.ResponseWriter, status int, name TplName, data any) {
	var buf bytes.Buffer
	if err := r.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error("Render template %s failed: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
