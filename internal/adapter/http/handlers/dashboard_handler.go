package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"customer_portal/internal/adapter/http/dto/response"
	"customer_portal/internal/usecase"
)

// DashboardHandler serves the consolidated dashboard view: profile,
// vehicles and the most recent service history in one response.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard godoc
// @Summary      Customer dashboard
// @Description  Aggregated profile, vehicles and recent service history for the authenticated customer. Profile is null until provisioned.
// @Tags         portal
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.DashboardResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /portal/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	load, err := h.usecase.Load(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardLoad(load))
}
