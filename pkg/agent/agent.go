// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/pkg/apierrors"
	"github.com/linkforge/session-runtime/pkg/session"
)

const heartbeatTimeout = 30 * time.Second

// Agent keeps a restored session alive for as long as the process runs.
// Token refresh is driven by the session itself, the agent adds a periodic
// heartbeat so plan changes and revocations are noticed between requests.
type Agent struct {
	session   SessionInterface
	workspace WorkspaceInterface

	schedule string
	cron     *cron.Cron

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Start restores the session, picks up an invite parked before login and
// schedules the heartbeat. A restore failure is logged, the agent keeps
// running anonymously so a later login through the callback can succeed.
func (a *Agent) Start(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "agent.Agent.Start")
	defer span.End()

	if _, err := a.cron.AddFunc(a.schedule, a.heartbeat); err != nil {
		return fmt.Errorf("invalid heartbeat schedule %q: %w", a.schedule, err)
	}

	if err := a.session.Restore(ctx); err != nil {
		a.logger.Warnf("session restore failed: %v", err)
	}

	if a.session.Status() == session.StatusAuthenticated {
		a.warmUp(ctx)
	}

	a.cron.Start()
	a.logger.Infof("heartbeat scheduled %s", a.schedule)

	return nil
}

func (a *Agent) warmUp(ctx context.Context) {
	member, err := a.workspace.ResumePendingInvite(ctx)
	if err != nil {
		a.logger.Warnf("parked invite not accepted: %v", err)
	} else if member != nil {
		a.logger.Infof("accepted parked invite for team %s", member.TeamID)
	}

	if _, err := a.workspace.LoadTeams(ctx); err != nil {
		a.logger.Warnf("failed to load teams: %v", err)
	}
}

// Stop halts the scheduler. The returned context is done once a running
// heartbeat has finished.
func (a *Agent) Stop() context.Context {
	return a.cron.Stop()
}

func (a *Agent) heartbeat() {
	ctx, cancel := context.WithTimeout(context.Background(), heartbeatTimeout)
	defer cancel()

	ctx, span := a.tracer.Start(ctx, "agent.Agent.heartbeat")
	defer span.End()

	if a.session.Status() != session.StatusAuthenticated {
		return
	}

	err := a.session.Heartbeat(ctx)

	switch {
	case err == nil:
		a.logger.Debug("heartbeat ok")
	case errors.Is(err, apierrors.ErrLoginRequired), errors.Is(err, apierrors.ErrAuthExpiredUnrecoverable):
		a.logger.Infof("session ended during heartbeat: %v", err)
	default:
		a.logger.Warnf("heartbeat failed: %v", err)
	}
}

func NewAgent(s SessionInterface, ws WorkspaceInterface, schedule string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Agent {
	a := new(Agent)

	a.session = s
	a.workspace = ws
	a.schedule = schedule
	a.cron = cron.New()

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
