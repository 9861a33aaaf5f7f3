package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"scriptmarket/internal/config"
	"scriptmarket/internal/model"

	"github.com/shopspring/decimal"
)

type PaypalClient interface {
	PaymentProvider
	CaptureOrder(ctx context.Context, orderID string) error
}

type paypalClientImpl struct {
	httpClient         *http.Client
	baseApiURL         string
	paypalClientID     string
	paypalClientSecret string
	webhookID          string
	returnURL          string
	currency           string
}

func NewPaypalClient(paypalCfg *config.Paypal, returnURL, currency string) PaypalClient {
	return &paypalClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL:         strings.TrimRight(paypalCfg.BaseApiURL, "/"),
		paypalClientID:     paypalCfg.ClientID,
		paypalClientSecret: paypalCfg.ClientSecret,
		webhookID:          paypalCfg.WebhookID,
		returnURL:          returnURL,
		currency:           strings.ToUpper(currency),
	}
}

func (c *paypalClientImpl) Name() string {
	return model.ProviderPaypal
}

func (c *paypalClientImpl) Configured() bool {
	return c.paypalClientID != "" && c.paypalClientSecret != ""
}

func (c *paypalClientImpl) getAccessToken(ctx context.Context) (string, error) {
	auth := base64.StdEncoding.EncodeToString(
		[]byte(c.paypalClientID + ":" + c.paypalClientSecret),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseApiURL+"/v1/oauth2/token",
		bytes.NewBufferString("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("paypal oauth error %d: %s", resp.StatusCode, string(b))
	}

	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode oauth response: %w", err)
	}
	if res.AccessToken == "" {
		return "", fmt.Errorf("paypal oauth returned empty access token")
	}

	return res.AccessToken, nil
}

func (c *paypalClientImpl) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("get paypal access token: %w", err)
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal req payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseApiURL+path, body)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("paypal error %d: %s", resp.StatusCode, string(b))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode paypal response: %w", err)
	}
	return nil
}

func (c *paypalClientImpl) CreateCheckoutSession(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutSession, error) {
	if !c.Configured() {
		return nil, ErrProviderNotConfigured
	}

	customID, err := json.Marshal(req.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal custom id: %w", err)
	}
	if len(customID) > model.PaypalCustomIDMaxLength {
		return nil, fmt.Errorf("paypal custom_id is %d bytes, limit is %d", len(customID), model.PaypalCustomIDMaxLength)
	}

	currency := c.currency
	if req.Currency != "" {
		currency = strings.ToUpper(req.Currency)
	}

	items := make([]model.PaypalItem, 0, len(req.Lines))
	for _, line := range req.Lines {
		items = append(items, model.PaypalItem{
			Name: line.Title,
			SKU:  strconv.FormatInt(line.ScriptID, 10),
			UnitAmount: model.PaypalAmount{
				Currency: currency,
				Value:    model.FromCents(line.UnitAmount).StringFixed(2),
			},
			Quantity: strconv.FormatInt(line.Quantity, 10),
		})
	}

	total := model.FromCents(req.TotalCents()).StringFixed(2)
	payload := model.PaypalCreateOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []model.PaypalPurchaseUnit{
			{
				CustomID: string(customID),
				Amount: model.PaypalAmount{
					Currency: currency,
					Value:    total,
					Breakdown: &model.PaypalBreakdown{
						ItemTotal: model.PaypalAmount{Currency: currency, Value: total},
					},
				},
				Items: items,
			},
		},
		ApplicationContext: model.PaypalApplicationContext{
			ReturnURL:  c.returnURL,
			CancelURL:  req.CancelURL,
			UserAction: "PAY_NOW",
		},
	}

	var result model.PaypalResult
	if err := c.doJSON(ctx, http.MethodPost, "/v2/checkout/orders", payload, &result); err != nil {
		return nil, fmt.Errorf("paypal create order: %w", err)
	}

	return &model.CheckoutSession{
		ID:  result.ID,
		URL: extractApproveURL(result.Links),
	}, nil
}

func (c *paypalClientImpl) CaptureOrder(ctx context.Context, orderID string) error {
	if !c.Configured() {
		return ErrProviderNotConfigured
	}

	path := fmt.Sprintf("/v2/checkout/orders/%s/capture", url.PathEscape(orderID))
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("paypal capture order: %w", err)
	}
	return nil
}

func (c *paypalClientImpl) verifyWebhookSignature(ctx context.Context, headers http.Header, body []byte) error {
	req := model.PaypalVerifySignatureRequest{
		AuthAlgo:         headers.Get("PAYPAL-AUTH-ALGO"),
		CertURL:          headers.Get("PAYPAL-CERT-URL"),
		TransmissionID:   headers.Get("PAYPAL-TRANSMISSION-ID"),
		TransmissionSig:  headers.Get("PAYPAL-TRANSMISSION-SIG"),
		TransmissionTime: headers.Get("PAYPAL-TRANSMISSION-TIME"),
		WebhookID:        c.webhookID,
		WebhookEvent:     json.RawMessage(body),
	}
	if req.AuthAlgo == "" || req.CertURL == "" || req.TransmissionID == "" || req.TransmissionSig == "" || req.TransmissionTime == "" {
		return fmt.Errorf("%w: missing transmission headers", ErrInvalidSignature)
	}
	if !json.Valid(body) {
		return fmt.Errorf("%w: body is not json", ErrInvalidPayload)
	}

	var res struct {
		VerificationStatus string `json:"verification_status"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/v1/notifications/verify-webhook-signature", req, &res); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if res.VerificationStatus != "SUCCESS" {
		return fmt.Errorf("%w: status %s", ErrInvalidSignature, res.VerificationStatus)
	}
	return nil
}

func (c *paypalClientImpl) ParseWebhookEvent(ctx context.Context, headers http.Header, body []byte) (*model.PaymentEvent, error) {
	if c.webhookID != "" {
		if err := c.verifyWebhookSignature(ctx, headers, body); err != nil {
			return nil, err
		}
	}

	var eventPayload model.PaypalWebhookEvent
	if err := json.Unmarshal(body, &eventPayload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	result := &model.PaymentEvent{
		ID:       eventPayload.ID,
		Provider: model.ProviderPaypal,
		Type:     eventPayload.EventType,
		Verified: c.webhookID != "",
	}
	if eventPayload.EventType != model.PaypalEventCaptureCompleted {
		return result, nil
	}

	var capture model.PaypalCaptureResource
	if err := json.Unmarshal(eventPayload.Resource, &capture); err != nil {
		return nil, fmt.Errorf("%w: decode capture resource: %v", ErrInvalidPayload, err)
	}

	amount, err := decimal.NewFromString(capture.Amount.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: capture amount %q", ErrInvalidPayload, capture.Amount.Value)
	}

	metadata := map[string]string{}
	if capture.CustomID != "" {
		if err := json.Unmarshal([]byte(capture.CustomID), &metadata); err != nil {
			return nil, fmt.Errorf("%w: decode custom_id: %v", ErrInvalidPayload, err)
		}
	}

	result.Completed = true
	result.SessionID = capture.SupplementaryData.RelatedIDs.OrderID
	result.PaymentIntentID = capture.ID
	result.AmountTotal = model.ToCents(amount)
	result.Metadata = metadata
	return result, nil
}

func extractApproveURL(links []model.PaypalLink) string {
	for _, link := range links {
		if link.Rel == "approve" || link.Rel == "payer-action" {
			return link.Href
		}
	}
	return ""
}
