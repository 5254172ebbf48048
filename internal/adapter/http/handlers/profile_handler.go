package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "customer_portal/internal/adapter/http/dto/request"
	"customer_portal/internal/adapter/http/dto/response"
	"customer_portal/internal/usecase"
	"customer_portal/pkg"
)

var errInvalidProfilePayload = pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)

// ProfileHandler provisions the caller's profile when the dashboard reports
// none exists yet.

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// UpsertProfile godoc
// @Summary      Provision own profile
// @Description  Creates or updates the caller's profile and returns the canonical re-read record.
// @Tags         portal
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        profile  body      request.ProfileRequest  true  "Profile draft"
// @Success      200      {object}  response.ProfileResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /portal/profile [put]
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	profile, err := h.usecase.Provision(c.Request.Context(), c.GetHeader("Authorization"), payload.ToDraft())
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerProfile(profile))
}
