// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

type teamInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

type updateTeamInput struct {
	TeamID string `json:"teamId" validate:"required"`
	Name   string `json:"name" validate:"required,max=100"`
}

type inviteInput struct {
	TeamID string `json:"teamId" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required"`
}

type acceptInput struct {
	Token string `json:"token" validate:"required"`
}

type memberInput struct {
	TeamID string `json:"teamId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

type roleInput struct {
	TeamID string `json:"teamId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

type inviteBody struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type roleBody struct {
	Role string `json:"role"`
}
