package dto

import (
	"time"

	"scriptmarket/internal/model"

	"github.com/shopspring/decimal"
)

type CheckoutItem struct {
	ID       FlexibleID      `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

type CheckoutRequest struct {
	Items []*CheckoutItem `json:"items"`
}

type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

type FavoriteRequest struct {
	ScriptID FlexibleID `json:"scriptId"`
}

type FavoritesResponse struct {
	FavoriteIDs []int64 `json:"favoriteIds"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type PurchaseRequest struct {
	ScriptIDs []FlexibleID `json:"scriptIds"`
}

type PurchaseFailure struct {
	ScriptID int64  `json:"scriptId"`
	Error    string `json:"error"`
}

type PurchaseResponse struct {
	Success            bool              `json:"success"`
	PurchasedScriptIDs []int64           `json:"purchasedScriptIds"`
	Message            string            `json:"message"`
	Failures           []PurchaseFailure `json:"failures,omitempty"`
}

type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	UserType    string `json:"userType"`
	Location    string `json:"location"`
	Partner     string `json:"partner"`
	WeddingDate string `json:"weddingDate"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest applies only the fields that are present.
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	UserType    *string `json:"userType"`
	Location    *string `json:"location"`
	Partner     *string `json:"partner"`
	WeddingDate *string `json:"weddingDate"`
	Bio         *string `json:"bio"`
	Avatar      *string `json:"avatar"`
}

type AuthResult struct {
	User      *MeResponse `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

type MeResponse struct {
	*model.Profile
	FavoriteScripts  []int64 `json:"favoriteScripts"`
	PurchasedScripts []int64 `json:"purchasedScripts"`
}

type CartItemRequest struct {
	ID FlexibleID `json:"id"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type ReplaceCartRequest struct {
	Items []model.CartItem `json:"items"`
}

type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
	Count int              `json:"count"`
}

func NewCartResponse(cart *model.Cart) *CartResponse {
	items := cart.Items
	if items == nil {
		items = []model.CartItem{}
	}
	return &CartResponse{
		Items: items,
		Total: cart.Total(),
		Count: cart.Count(),
	}
}

type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type FacetsResponse struct {
	Categories []FacetCount `json:"categories"`
	Types      []FacetCount `json:"types"`
	Languages  []FacetCount `json:"languages"`
}

type Download struct {
	Filename string
	Content  []byte
}

type HealthResponse struct {
	Status            string    `json:"status"`
	PaymentProvider   string    `json:"paymentProvider"`
	StripeConfigured  bool      `json:"stripeConfigured"`
	PaypalConfigured  bool      `json:"paypalConfigured"`
	RedisConfigured   bool      `json:"redisConfigured"`
	StorageConfigured bool      `json:"storageConfigured"`
	Database          string    `json:"database"`
	Timestamp         time.Time `json:"timestamp"`
}
