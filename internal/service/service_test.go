package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"scriptmarket/internal/client"
	"scriptmarket/internal/config"
	"scriptmarket/internal/model"
	"scriptmarket/internal/repository"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := client.InitDatabase(context.Background(), &config.Database{
		Driver: "sqlite",
		URL:    fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name),
	}, client.Backoff{
		PingTimeout: time.Second,
		MaxWait:     time.Second,
		Initial:     time.Millisecond,
		Max:         time.Millisecond,
	})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

type testRepos struct {
	db            *gorm.DB
	scripts       repository.ScriptRepository
	favorites     repository.FavoriteRepository
	purchases     repository.PurchaseRepository
	profiles      repository.ProfileRepository
	webhookEvents repository.WebhookEventRepository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()

	db := newTestDB(t)
	r := &testRepos{
		db:            db,
		scripts:       repository.NewScriptRepository(db),
		favorites:     repository.NewFavoriteRepository(db),
		purchases:     repository.NewPurchaseRepository(db),
		profiles:      repository.NewProfileRepository(db),
		webhookEvents: repository.NewWebhookEventRepository(db),
	}
	if err := r.scripts.Seed(context.Background(), model.Catalog()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return r
}

// stubProvider records checkout requests and replays a canned webhook result.
type stubProvider struct {
	name       string
	configured bool
	session    *model.CheckoutSession
	createErr  error
	lastReq    *model.CheckoutRequest
	event      *model.PaymentEvent
	parseErr   error
}

func (p *stubProvider) Name() string {
	if p.name == "" {
		return model.ProviderStripe
	}
	return p.name
}

func (p *stubProvider) Configured() bool {
	return p.configured
}

func (p *stubProvider) CreateCheckoutSession(_ context.Context, req *model.CheckoutRequest) (*model.CheckoutSession, error) {
	p.lastReq = req
	if p.createErr != nil {
		return nil, p.createErr
	}
	return p.session, nil
}

func (p *stubProvider) ParseWebhookEvent(_ context.Context, _ http.Header, _ []byte) (*model.PaymentEvent, error) {
	if p.parseErr != nil {
		return nil, p.parseErr
	}
	return p.event, nil
}
