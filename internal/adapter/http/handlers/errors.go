package handlers

import (
	"errors"
	"net/http"

	"customer_portal/internal/usecase"
	"customer_portal/internal/usecase/interfaces"
	"customer_portal/pkg"
)

// mapPortalError flattens usecase failures into the generic messages the
// portal surfaces; there is no retry or structured recovery at this layer.
func mapPortalError(err error) *pkg.DomainError {
	var upstream *interfaces.UpstreamError

	switch {
	case errors.Is(err, usecase.ErrInvalidProfileDraft):
		return pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileVanished):
		return pkg.NewDomainErrorSimple("UPSTREAM_FAILURE", "Profile could not be read back after creation", http.StatusBadGateway)
	case errors.As(err, &upstream):
		return pkg.NewDomainErrorSimple("UPSTREAM_FAILURE", "Failed to load data from the service platform", http.StatusBadGateway)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Unexpected error", http.StatusInternalServerError)
	}
}
