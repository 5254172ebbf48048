package usecase

import (
	"context"
	"errors"
	"strings"

	"customer_portal/internal/domain/entities"
	"customer_portal/internal/usecase/interfaces"
	"customer_portal/pkg/logger"
)

var (
	ErrInvalidProfileDraft = errors.New("invalid profile draft")
	ErrProfileVanished     = errors.New("profile missing after provisioning")
)

// IProfileUseCase provisions the caller's profile when none exists yet.

type IProfileUseCase interface {
	Provision(ctx context.Context, auth string, draft entities.ProfileDraft) (entities.CustomerProfile, error)
}

type ProfileUseCase struct {
	client interfaces.ICustomerServiceClient
	log    logger.ILogger
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(client interfaces.ICustomerServiceClient, log logger.ILogger) *ProfileUseCase {
	return &ProfileUseCase{client: client, log: log}
}

// Provision upserts the caller's own profile and then performs a fresh read
// of the same resource, returning the canonical, possibly server-enriched
// record instead of trusting the write's echoed body. Either step failing is
// reported as a single failure; there is no retry.
//
// The operation carries no idempotency key: the upstream PUT is an upsert
// keyed by the authenticated user, and at-most-one-profile-per-user is
// enforced upstream, not here.
func (u *ProfileUseCase) Provision(ctx context.Context, auth string, draft entities.ProfileDraft) (entities.CustomerProfile, error) {
	if u.client == nil {
		return entities.CustomerProfile{}, ErrClientNotConfigured
	}

	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.TrimSpace(draft.Email)
	draft.Phone = strings.TrimSpace(draft.Phone)
	if draft.Name == "" && draft.Email == "" && draft.Phone == "" {
		return entities.CustomerProfile{}, ErrInvalidProfileDraft
	}

	if _, err := u.client.UpsertOwnProfile(ctx, auth, draft); err != nil {
		u.log.Error("profile provisioning: upsert failed", logger.Error(err))
		return entities.CustomerProfile{}, err
	}

	profile, err := u.client.GetOwnProfile(ctx, auth)
	if errors.Is(err, interfaces.ErrProfileNotFound) {
		// The write succeeded but the re-read found nothing; surface it
		// instead of answering with an empty profile.
		u.log.Error("profile provisioning: profile missing on re-read")
		return entities.CustomerProfile{}, ErrProfileVanished
	}
	if err != nil {
		u.log.Error("profile provisioning: re-read failed", logger.Error(err))
		return entities.CustomerProfile{}, err
	}

	u.log.Info("profile provisioned", logger.String("user_id", profile.UserID))
	return profile, nil
}
