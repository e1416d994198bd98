// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

// SubscriberInterface records plan changes on the live session.
type SubscriberInterface interface {
	ApplySubscription(context.Context, string) error
}
