// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package openid

// HostForm is the form the identifier is written into before it is submitted
type HostForm interface {
	Field(name string) (string, bool)
	// SetField writes the value, a missing field is appended as a hidden field
	SetField(name, value string)
}

// FormField is one field of a Form
type FormField struct {
	Name   string
	Value  string
	Hidden bool
}

// Form is a HostForm kept in memory, the presentation layer renders its fields
type Form struct {
	fields []FormField
}

var _ HostForm = (*Form)(nil)

// NewForm creates a form with the given visible fields
func NewForm(names ...string) *Form {
	f := &Form{}
	for _, name := range names {
		f.fields = append(f.fields, FormField{Name: name})
	}
	return f
}

func (f *Form) index(name string) int {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return i
		}
	}
	return -1
}

func (f *Form) Field(name string) (string, bool) {
	if i := f.index(name); i >= 0 {
		return f.fields[i].Value, true
	}
	return "", false
}

func (f *Form) SetField(name, value string) {
	if i := f.index(name); i >= 0 {
		f.fields[i].Value = value
		return
	}
	f.fields = append(f.fields, FormField{Name: name, Value: value, Hidden: true})
}

// Fields returns a copy of the fields in form order
func (f *Form) Fields() []FormField {
	return append([]FormField(nil), f.fields...)
}

// HiddenFields returns the fields appended by SetField
func (f *Form) HiddenFields() []FormField {
	var res []FormField
	for _, field := range f.fields {
		if field.Hidden {
			res = append(res, field)
		}
	}
	return res
}
