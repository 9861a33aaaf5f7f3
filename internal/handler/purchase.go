package handler

import (
	"net/http"

	"scriptmarket/internal/dto"
	"scriptmarket/internal/middleware"
	"scriptmarket/internal/service"

	"github.com/labstack/echo/v4"
)

type PurchaseHandler struct {
	purchaseService service.PurchaseService
}

func NewPurchaseHandler(purchaseService service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

func (h *PurchaseHandler) DemoPurchase(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}

	ids := make([]int64, 0, len(req.ScriptIDs))
	for _, id := range req.ScriptIDs {
		ids = append(ids, id.Int64())
	}

	resp, err := h.purchaseService.DemoPurchase(ctx, middleware.UserID(c), ids)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, resp)
}
