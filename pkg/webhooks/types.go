// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// SubscriptionEvent is posted by the checkout page once a plan change completed.
type SubscriptionEvent struct {
	Plan string `json:"plan" validate:"required,max=50"`
}
