// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/linkforge/session-runtime/internal/types"
)

// Envelope is the shape of every backend response.
type Envelope struct {
	Success   *bool            `json:"success,omitempty"`
	Message   string           `json:"message,omitempty"`
	Field     string           `json:"field,omitempty"`
	Token     string           `json:"token,omitempty"`
	ExpiresAt Timestamp        `json:"expiresAt,omitempty"`
	User      *types.Principal `json:"user,omitempty"`
	Team      *types.Team      `json:"team,omitempty"`
	Teams     []*types.Team    `json:"teams,omitempty"`
	Members   []*types.Member  `json:"members,omitempty"`
	Member    *types.Member    `json:"member,omitempty"`
	Invite    *types.Invite    `json:"invite,omitempty"`
	Data      json.RawMessage  `json:"data,omitempty"`
}

// Succeeded treats a missing success flag as success.
func (e *Envelope) Succeeded() bool {
	return e.Success == nil || *e.Success
}

// Timestamp accepts RFC 3339 strings and unix epoch numbers in seconds or
// milliseconds.
type Timestamp struct {
	time.Time
}

// epoch values above this are milliseconds
const epochMillisThreshold = 1e12

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		t.Time = parsed
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", data, err)
	}
	if n > epochMillisThreshold {
		t.Time = time.UnixMilli(n)
	} else {
		t.Time = time.Unix(n, 0)
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}
