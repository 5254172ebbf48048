package interfaces

import (
	"context"
	"errors"
	"fmt"

	"customer_portal/internal/domain/entities"
)

// ErrProfileNotFound signals that the authenticated user has no profile yet.
// This is the expected state for a first-time user, not a failure.
var ErrProfileNotFound = errors.New("profile not found")

// UpstreamError is any other failed upstream read/write: a transport error
// has StatusCode 0, otherwise it carries the non-success HTTP status.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("customer service: %s returned status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("customer service: %s failed: %v", e.Operation, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ICustomerServiceClient abstracts the gateway-fronted upstream customer
// service. Every call forwards the caller's Authorization header value
// unchanged; token acquisition is outside this layer.
type ICustomerServiceClient interface {
	// GetOwnProfile reads the caller's profile. A not-found upstream
	// response is reported as ErrProfileNotFound.
	GetOwnProfile(ctx context.Context, auth string) (entities.CustomerProfile, error)
	// UpsertOwnProfile writes the caller's profile. The response body is
	// echoed back but callers should re-read for canonical state.
	UpsertOwnProfile(ctx context.Context, auth string, draft entities.ProfileDraft) (entities.CustomerProfile, error)
	// ListVehicles returns the caller's vehicles; never nil on success.
	ListVehicles(ctx context.Context, auth string) ([]entities.Vehicle, error)
	// ListHistory returns the caller's service history; never nil on success.
	ListHistory(ctx context.Context, auth string) ([]entities.HistoryItem, error)
}
