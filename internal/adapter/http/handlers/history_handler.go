package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"customer_portal/internal/adapter/http/dto/response"
	"customer_portal/internal/domain/entities"
	"customer_portal/internal/usecase"
	"customer_portal/pkg"
)

var errInvalidStatusFilter = pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Status must be one of: all, OPEN, IN_PROGRESS, DONE, CANCELLED", http.StatusBadRequest)

// HistoryHandler serves the searchable full-history view.

type HistoryHandler struct {
	usecase usecase.IHistoryUseCase
}

func NewHistoryHandler(uc usecase.IHistoryUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

// SearchHistory godoc
// @Summary      Search service history
// @Description  Full service history in recency order, filtered by free text and status.
// @Tags         portal
// @Produce      json
// @Security     Bearer
// @Param        q       query     string  false  "Free-text query over title, plate, make and model"
// @Param        status  query     string  false  "all, OPEN, IN_PROGRESS, DONE or CANCELLED"  default(all)
// @Success      200     {object}  response.HistorySearchResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      502     {object}  pkg.HTTPError
// @Router       /portal/history [get]
func (h *HistoryHandler) SearchHistory(c *gin.Context) {
	status, ok := entities.ParseStatusFilter(c.DefaultQuery("status", string(entities.StatusFilterAll)))
	if !ok {
		c.JSON(errInvalidStatusFilter.HTTPStatus, errInvalidStatusFilter.ToHTTPError())
		return
	}

	result, err := h.usecase.Search(c.Request.Context(), c.GetHeader("Authorization"), c.Query("q"), status)
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHistorySearch(result))
}
