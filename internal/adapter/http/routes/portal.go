package routes

import (
	"customer_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPortal    = "/portal"
	PathDashboard = "/dashboard"
	PathProfile   = "/profile"
	PathHistory   = "/history"
)

func addPortalRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, profileHandler *handlers.ProfileHandler, historyHandler *handlers.HistoryHandler) {
	portal := rg.Group(PathPortal)
	{
		portal.GET(PathDashboard, dashboardHandler.GetDashboard)
		portal.PUT(PathProfile, profileHandler.UpsertProfile)
		portal.GET(PathHistory, historyHandler.SearchHistory)
	}
}
