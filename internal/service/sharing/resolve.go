package sharing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/cyclecare-backend/internal/auth"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

// ResolveByToken returns the sharer's public profile and every enabled
// category in full. Unknown and revoked tokens both yield ErrInvalidToken.
func (s *Service) ResolveByToken(ctx context.Context, token string) (*domain.SharedPayload, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}

	grant, err := s.grants.GetActiveByTokenHash(ctx, auth.HashToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("sharing.ResolveByToken: %w", err)
	}

	sharer, err := s.users.GetByID(ctx, grant.SharerID)
	if err != nil {
		return nil, fmt.Errorf("sharing.ResolveByToken sharer: %w", err)
	}

	payload := &domain.SharedPayload{Sharer: sharer.Public(), Options: grant.Options}
	opts, uid := grant.Options, grant.SharerID
	all := domain.TrackingFilter{}

	g, gctx := errgroup.WithContext(ctx)
	if opts.PeriodDates {
		g.Go(func() error {
			periods, err := s.readers.Periods.ListByUser(gctx, uid, 0)
			if err != nil {
				return fmt.Errorf("periods: %w", err)
			}
			payload.Periods = nonNil(periods)
			return nil
		})
	}
	if opts.Symptoms {
		g.Go(func() error {
			list, err := s.readers.Symptoms.List(gctx, uid, all)
			if err != nil {
				return fmt.Errorf("symptoms: %w", err)
			}
			payload.Symptoms = nonNil(list)
			return nil
		})
	}
	if opts.Activities {
		g.Go(func() error {
			list, err := s.readers.Activities.List(gctx, uid, all)
			if err != nil {
				return fmt.Errorf("activities: %w", err)
			}
			payload.Activities = nonNil(list)
			return nil
		})
	}
	if opts.HealthMetrics {
		g.Go(func() error {
			list, err := s.readers.Metrics.List(gctx, uid, all)
			if err != nil {
				return fmt.Errorf("health metrics: %w", err)
			}
			payload.HealthMetrics = nonNil(list)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sharing.ResolveByToken: %w", err)
	}

	s.log.InfoContext(ctx, "shared data accessed",
		slog.String("grant_id", grant.ID.String()),
		slog.String("sharer_id", uid.String()))

	return payload, nil
}

// nonNil keeps an enabled but empty category distinguishable from a
// category that is not shared.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
