// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package forms

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"gitea.com/go-chi/binding"
)

// SelectOpenIDProviderForm is posted when a provider button is clicked
type SelectOpenIDProviderForm struct {
	Provider string `form:"provider" binding:"Required;AlphaDashDot;MaxSize(100)"`
}

// SignInOpenIDSelectorForm is posted by the sign-in button.
// The identifier field name is configurable, Identifier holds it when the default name is used.
type SignInOpenIDSelectorForm struct {
	Username   string `form:"openid_username" binding:"MaxSize(254)"`
	Identifier string `form:"openid_identifier" binding:"MaxSize(2048)"`
}

// Validate drops surrounding whitespace, an input of spaces counts as no input
func (f *SignInOpenIDSelectorForm) Validate(req *http.Request, errs binding.Errors) binding.Errors {
	f.Username = strings.TrimSpace(f.Username)
	f.Identifier = strings.TrimSpace(f.Identifier)
	return errs
}

// Bind fills obj from the request, it returns the binding errors
func Bind(req *http.Request, obj any) binding.Errors {
	return binding.Bind(req, obj)
}

// ErrorMessage returns a message for the first binding error of form, "" when there is none.
// Fields are named by their form tag.
func ErrorMessage(form any, errs binding.Errors) string {
	if len(errs) == 0 {
		return ""
	}
	field := formFieldName(form, errs[0].FieldNames)
	switch errs[0].Classification {
	case binding.ERR_REQUIRED:
		return fmt.Sprintf("%s cannot be empty.", field)
	case binding.ERR_ALPHA_DASH_DOT:
		return fmt.Sprintf("%s should contain only alphanumeric, dash ('-'), underscore ('_') and dot ('.') characters.", field)
	case binding.ERR_MAX_SIZE:
		return fmt.Sprintf("%s is too long.", field)
	default:
		return fmt.Sprintf("%s is invalid: %s", field, errs[0].Message)
	}
}

func formFieldName(form any, names []string) string {
	if len(names) == 0 {
		return "form"
	}
	typ := reflect.TypeOf(form)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ != nil && typ.Kind() == reflect.Struct {
		if field, ok := typ.FieldByName(names[0]); ok {
			if name := field.Tag.Get("form"); name != "" && name != "-" {
				return name
			}
		}
	}
	return names[0]
}
