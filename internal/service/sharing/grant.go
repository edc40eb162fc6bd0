package sharing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/auth"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/pkg/ctxutil"
)

// CreateGrant shares the caller's data with the account registered under
// input.PartnerEmail. A sharer holds at most one grant.
func (s *Service) CreateGrant(ctx context.Context, input CreateGrantInput) (*CreateGrantResult, error) {
	sharerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	raw, hash, err := auth.GenerateOpaqueToken(s.cfg.TokenBytes)
	if err != nil {
		return nil, fmt.Errorf("sharing.CreateGrant: %w", err)
	}

	var created *domain.SharingGrant
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		partner, err := s.users.GetByEmail(txCtx, input.PartnerEmail)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrTargetNotFound
			}
			return fmt.Errorf("get partner: %w", err)
		}
		if partner.ID == sharerID {
			return domain.ErrSelfShare
		}

		now := time.Now()
		g, err := s.grants.Create(txCtx, &domain.SharingGrant{
			ID:            uuid.New(),
			SharerID:      sharerID,
			PartnerID:     partner.ID,
			Options:       input.Options,
			TokenHash:     hash,
			AccessGranted: true,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrDuplicateGrant
			}
			return fmt.Errorf("create grant: %w", err)
		}
		g.PartnerEmail = partner.Email
		created = g
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sharing.CreateGrant: %w", err)
	}

	s.log.InfoContext(ctx, "sharing grant created",
		slog.String("user_id", sharerID.String()),
		slog.String("grant_id", created.ID.String()),
		slog.String("partner_id", created.PartnerID.String()))

	return &CreateGrantResult{Grant: created, Token: raw}, nil
}

// UpdateOptions replaces the shared categories of the caller's grant.
// The token is unchanged.
func (s *Service) UpdateOptions(ctx context.Context, grantID uuid.UUID, opts domain.SharedOptions) (*domain.SharingGrant, error) {
	sharerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.SharingGrant
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkOwner(txCtx, sharerID, grantID); err != nil {
			return err
		}
		g, err := s.grants.UpdateOptions(txCtx, grantID, opts)
		if err != nil {
			return fmt.Errorf("update options: %w", err)
		}
		updated = g
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sharing.UpdateOptions: %w", err)
	}

	s.log.InfoContext(ctx, "sharing options updated",
		slog.String("user_id", sharerID.String()),
		slog.String("grant_id", grantID.String()))

	return updated, nil
}

// Revoke deletes the caller's grant; its token stops resolving at once.
func (s *Service) Revoke(ctx context.Context, grantID uuid.UUID) error {
	sharerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkOwner(txCtx, sharerID, grantID); err != nil {
			return err
		}
		return s.grants.Delete(txCtx, grantID)
	})
	if err != nil {
		return fmt.Errorf("sharing.Revoke: %w", err)
	}

	s.log.InfoContext(ctx, "sharing grant revoked",
		slog.String("user_id", sharerID.String()),
		slog.String("grant_id", grantID.String()))

	return nil
}

// ListForSharer returns the grants the caller has issued.
func (s *Service) ListForSharer(ctx context.Context) ([]domain.GrantView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	views, err := s.grants.ListBySharer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sharing.ListForSharer: %w", err)
	}
	return views, nil
}

// ListForPartner returns the grants that name the caller as partner.
func (s *Service) ListForPartner(ctx context.Context) ([]domain.GrantView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	views, err := s.grants.ListByPartner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sharing.ListForPartner: %w", err)
	}
	return views, nil
}

func (s *Service) checkOwner(ctx context.Context, sharerID, grantID uuid.UUID) error {
	g, err := s.grants.GetByID(ctx, grantID)
	if err != nil {
		return fmt.Errorf("get grant: %w", err)
	}
	if g.SharerID != sharerID {
		return domain.ErrForbidden
	}
	return nil
}
