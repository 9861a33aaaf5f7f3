package service

import (
	"context"
	"time"

	"scriptmarket/internal/dto"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type HealthOptions struct {
	PaymentProvider   string
	StripeConfigured  bool
	PaypalConfigured  bool
	RedisConfigured   bool
	StorageConfigured bool
}

type HealthService interface {
	Check(ctx context.Context) *dto.HealthResponse
}

type healthServiceImpl struct {
	db   *gorm.DB
	opts HealthOptions
	now  func() time.Time
}

func NewHealthService(db *gorm.DB, opts HealthOptions) HealthService {
	return &healthServiceImpl{
		db:   db,
		opts: opts,
		now:  time.Now,
	}
}

func (s *healthServiceImpl) Check(ctx context.Context) *dto.HealthResponse {
	resp := &dto.HealthResponse{
		Status:            "ok",
		PaymentProvider:   s.opts.PaymentProvider,
		StripeConfigured:  s.opts.StripeConfigured,
		PaypalConfigured:  s.opts.PaypalConfigured,
		RedisConfigured:   s.opts.RedisConfigured,
		StorageConfigured: s.opts.StorageConfigured,
		Database:          "ok",
		Timestamp:         s.now().UTC(),
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(pingCtx)
	}
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("database ping failed")
		resp.Status = "degraded"
		resp.Database = "error"
	}

	return resp
}
