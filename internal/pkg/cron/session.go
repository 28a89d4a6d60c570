package cron

import (
	"context"
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
)

// SessionSweepJob drops expired entries from the logout revocation set so the
// map does not grow without bound.
func SessionSweepJob(jwtService jwt.Service) Job {
	return Job{
		Name:     "session-revocation-sweep",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			jwtService.SweepRevokedTokens(time.Now())
			return nil
		},
	}
}
