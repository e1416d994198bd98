// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"errors"
)

var (
	ErrNotFound       = errors.New("credential not found")
	ErrInvalidBackend = errors.New("invalid credential backend")
)
