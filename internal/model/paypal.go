package model

import "encoding/json"

const (
	PaypalEventCaptureCompleted = "PAYMENT.CAPTURE.COMPLETED"
	PaypalCustomIDMaxLength     = 127
)

type PaypalLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type PaypalResult struct {
	ID     string       `json:"id"`
	Links  []PaypalLink `json:"links"`
	Status string       `json:"status"`
}

type PaypalAmount struct {
	Currency  string           `json:"currency_code"`
	Value     string           `json:"value"`
	Breakdown *PaypalBreakdown `json:"breakdown,omitempty"`
}

type PaypalBreakdown struct {
	ItemTotal PaypalAmount `json:"item_total"`
}

type PaypalItem struct {
	Name       string       `json:"name"`
	SKU        string       `json:"sku,omitempty"`
	UnitAmount PaypalAmount `json:"unit_amount"`
	Quantity   string       `json:"quantity"`
}

type PaypalPurchaseUnit struct {
	ReferenceID string       `json:"reference_id,omitempty"`
	CustomID    string       `json:"custom_id,omitempty"`
	Amount      PaypalAmount `json:"amount"`
	Items       []PaypalItem `json:"items,omitempty"`
}

type PaypalApplicationContext struct {
	ReturnURL  string `json:"return_url"`
	CancelURL  string `json:"cancel_url"`
	UserAction string `json:"user_action,omitempty"`
}

type PaypalCreateOrderRequest struct {
	Intent             string                   `json:"intent"`
	PurchaseUnits      []PaypalPurchaseUnit     `json:"purchase_units"`
	ApplicationContext PaypalApplicationContext `json:"application_context"`
}

type PaypalRelatedIDs struct {
	OrderID string `json:"order_id"`
}

type PaypalSupplementaryData struct {
	RelatedIDs PaypalRelatedIDs `json:"related_ids"`
}

// PaypalCaptureResource is the resource of a PAYMENT.CAPTURE.* event.
type PaypalCaptureResource struct {
	ID                string                  `json:"id"`
	Status            string                  `json:"status"`
	Amount            PaypalAmount            `json:"amount"`
	CustomID          string                  `json:"custom_id"`
	SupplementaryData PaypalSupplementaryData `json:"supplementary_data"`
}

type PaypalWebhookEvent struct {
	ID         string          `json:"id"`
	EventType  string          `json:"event_type"`
	CreateTime string          `json:"create_time"`
	Resource   json.RawMessage `json:"resource"`
}

type PaypalVerifySignatureRequest struct {
	AuthAlgo         string          `json:"auth_algo"`
	CertURL          string          `json:"cert_url"`
	TransmissionID   string          `json:"transmission_id"`
	TransmissionSig  string          `json:"transmission_sig"`
	TransmissionTime string          `json:"transmission_time"`
	WebhookID        string          `json:"webhook_id"`
	WebhookEvent     json.RawMessage `json:"webhook_event"`
}
