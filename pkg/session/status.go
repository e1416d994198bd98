// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

// Status is the externally observable session state.
type Status int

const (
	StatusLoading Status = iota
	StatusAuthenticated
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "loading"
	}
}

type state int

const (
	stateUnknown state = iota
	stateRestoring
	stateAuthenticated
	stateAnonymous
	stateRefreshing
)

// status hides the refreshing state behind the one it left, which is
// always authenticated.
func (s state) status() Status {
	switch s {
	case stateAuthenticated, stateRefreshing:
		return StatusAuthenticated
	case stateAnonymous:
		return StatusAnonymous
	default:
		return StatusLoading
	}
}
