package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Script struct {
	ID              int64           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title           string          `gorm:"size:255;not null" json:"title"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	FullDescription string          `gorm:"type:text" json:"fullDescription,omitempty"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Rating          float64         `gorm:"not null" json:"rating"`
	Reviews         int             `gorm:"not null" json:"reviews"`
	Category        string          `gorm:"size:64;index;not null" json:"category"`
	Type            string          `gorm:"size:64;index;not null" json:"type"`
	Language        string          `gorm:"size:32;index;not null" json:"language"`
	Author          string          `gorm:"size:128;not null" json:"author"`
	Tags            []string        `gorm:"serializer:json;type:text" json:"tags"`
	IsPopular       bool            `gorm:"not null;default:false" json:"isPopular"`
	PreviewContent  string          `gorm:"type:text" json:"previewContent"`
	CreatedAt       time.Time       `json:"-"`
}

const (
	UserTypeProfessionalWriter = "professional-writer"
	UserTypeOfficiant          = "officiant"
	UserTypeGuest              = "guest"
)

func ValidUserType(t string) bool {
	switch t {
	case UserTypeProfessionalWriter, UserTypeOfficiant, UserTypeGuest:
		return true
	}
	return false
}

type Profile struct {
	ID           string    `gorm:"primaryKey;size:36;not null" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	UserType     string    `gorm:"size:32;not null;default:guest" json:"userType"`
	Location     string    `gorm:"size:255" json:"location,omitempty"`
	Partner      string    `gorm:"size:255" json:"partner,omitempty"`
	WeddingDate  string    `gorm:"size:10" json:"weddingDate,omitempty"` // YYYY-MM-DD
	Bio          string    `gorm:"type:text" json:"bio,omitempty"`
	AvatarURL    string    `gorm:"size:512" json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"joinDate"`
	UpdatedAt    time.Time `json:"-"`
}

type Favorite struct {
	UserID    string `gorm:"primaryKey;size:36;not null"`
	ScriptID  int64  `gorm:"primaryKey;index;not null"`
	CreatedAt time.Time
}

const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusDemo      = "demo"
)

// Purchase rows are insert-only. (user_id, script_id) is unique.
type Purchase struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	UserID           string          `gorm:"size:36;not null;uniqueIndex:idx_purchases_user_script" json:"userId"`
	ScriptID         int64           `gorm:"not null;uniqueIndex:idx_purchases_user_script" json:"scriptId"`
	AmountPaid       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"amountPaid"`
	PaymentProvider  string          `gorm:"size:16" json:"paymentProvider,omitempty"`
	PaymentSessionID string          `gorm:"size:255;index" json:"paymentSessionId,omitempty"`
	PaymentIntentID  string          `gorm:"size:255" json:"paymentIntentId,omitempty"`
	Status           string          `gorm:"size:16;not null;default:pending" json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}

type WebhookEvent struct {
	EventID     string `gorm:"primaryKey;size:128;not null"`
	Provider    string `gorm:"size:16;index;not null"`
	EventType   string `gorm:"size:64;index"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}

// AllModels lists every table migrated at start-up.
func AllModels() []any {
	return []any{
		&Script{},
		&Profile{},
		&Favorite{},
		&Purchase{},
		&WebhookEvent{},
	}
}
