// Copyright 2018 The Gitea Authors. All rights reserved.
// Copyright 2014 The Gogs Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package templates

import (
	"fmt"
	"html/template"
	"net/url"

	"code.gitea.io/openid-selector/modules/json"
)

// NewFuncMap returns functions for injecting to templates
func NewFuncMap() template.FuncMap {
	return map[string]any{
		"dict":         dict,
		"Safe":         Safe,
		"SanitizeHTML": SanitizeHTML,
		"QueryEscape":  url.QueryEscape,
		"PathEscape":   url.PathEscape,
		"JSEscape":     template.JSEscapeString,
		"JsonEncode":   jsonEncode,
	}
}

// Safe render raw as HTML
func Safe(raw string) template.HTML {
	return template.HTML(raw)
}

func dict(args ...any) (map[string]any, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("invalid dict constructor syntax: must have key-value pairs")
	}
	m := make(map[string]any, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			return nil, fmt.Errorf("invalid dict constructor syntax: unable to merge args[%d]", i)
		}
		m[key] = args[i+1]
	}
	return m, nil
}

func jsonEncode(v any) (string, error) {
	b, err := json.Marshal(v)
	return string(b), err
}
