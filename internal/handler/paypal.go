package handler

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"scriptmarket/internal/dto"
	"scriptmarket/internal/model"
	"scriptmarket/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var paypalOrderID = regexp.MustCompile(`^[A-Z0-9]+$`)

type PaymentHandler struct {
	paymentService service.PaymentService
	baseURL        string
}

func NewPaymentHandler(paymentService service.PaymentService, baseURL string) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		baseURL:        strings.TrimRight(baseURL, "/"),
	}
}

func (h *PaymentHandler) webhook(c echo.Context, provider string) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return errInvalidBody
	}

	if err := h.paymentService.HandleWebhook(ctx, provider, c.Request().Header, body); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, &dto.WebhookResponse{Received: true})
}

func (h *PaymentHandler) StripeWebhook(c echo.Context) error {
	return h.webhook(c, model.ProviderStripe)
}

func (h *PaymentHandler) PaypalWebhook(c echo.Context) error {
	return h.webhook(c, model.ProviderPaypal)
}

// HandlePaypalSuccess captures the order the buyer just approved and sends them back to the storefront.
func (h *PaymentHandler) HandlePaypalSuccess(c echo.Context) error {
	ctx := c.Request().Context()

	orderID := c.QueryParam("token")
	if orderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing order token")
	}
	if !paypalOrderID.MatchString(orderID) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order token")
	}

	if err := h.paymentService.CapturePaypalOrder(ctx, orderID); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("order_id", orderID).Msg("paypal capture failed")
		return c.Redirect(http.StatusFound, h.baseURL+"?purchase=cancelled")
	}

	return c.Redirect(http.StatusFound, h.baseURL+"?purchase=success&session_id="+url.QueryEscape(orderID))
}
