// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package validation checks user input before it reaches the backend.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/linkforge/session-runtime/pkg/apierrors"
)

type Validator struct {
	validate *validator.Validate
}

// Struct reports a missing required field first, then the first format
// violation, in field declaration order.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid input: %w", err)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return apierrors.MissingField(fe.Field())
		}
	}

	fe := fieldErrs[0]
	return apierrors.Invalid(fe.Field(), describe(fe.Field(), fe))
}

// Var validates a single value named field against tag.
func (v *Validator) Var(field string, value any, tag string) error {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("invalid %s: %w", field, err)
	}

	if fieldErrs[0].Tag() == "required" {
		return apierrors.MissingField(field)
	}
	return apierrors.Invalid(field, describe(field, fieldErrs[0]))
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func NewValidator() *Validator {
	v := new(Validator)

	v.validate = validator.New(validator.WithRequiredStructEnabled())
	v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	return v
}
