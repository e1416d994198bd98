// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"testing"

	"github.com/linkforge/session-runtime/pkg/apierrors"
)

type signup struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name          string
		input         signup
		expectedKind  error
		expectedField string
	}{
		{name: "valid", input: signup{Name: "a", Email: "a@x.com", Password: "12345678"}},
		{name: "missing wins over format", input: signup{Email: "nope", Password: "1"}, expectedKind: apierrors.ErrMissingField, expectedField: "name"},
		{name: "bad email", input: signup{Name: "a", Email: "nope", Password: "12345678"}, expectedKind: apierrors.ErrValidation, expectedField: "email"},
		{name: "short password", input: signup{Name: "a", Email: "a@x.com", Password: "1"}, expectedKind: apierrors.ErrValidation, expectedField: "password"},
	}

	v := NewValidator()

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := v.Struct(test.input)

			if test.expectedKind == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, test.expectedKind) {
				t.Fatalf("expected %v, got %v", test.expectedKind, err)
			}

			var e *apierrors.Error
			if !errors.As(err, &e) || e.Field != test.expectedField {
				t.Errorf("expected field %q, got %+v", test.expectedField, e)
			}
		})
	}
}

func TestVar(t *testing.T) {
	v := NewValidator()

	if err := v.Var("email", "", "required,email"); !errors.Is(err, apierrors.ErrMissingField) {
		t.Errorf("expected MissingField, got %v", err)
	}
	if err := v.Var("email", "b@", "required,email"); !errors.Is(err, apierrors.ErrValidation) {
		t.Errorf("expected Validation, got %v", err)
	}
	if err := v.Var("email", "b@x.com", "required,email"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
