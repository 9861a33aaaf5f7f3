package service

import (
	"context"
	"errors"
	"fmt"

	"scriptmarket/internal/dto"
	"scriptmarket/internal/model"
	"scriptmarket/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseService grants scripts without payment. Only wired when demo purchases are enabled.
type PurchaseService interface {
	DemoPurchase(ctx context.Context, userID string, scriptIDs []int64) (*dto.PurchaseResponse, error)
}

type purchaseServiceImpl struct {
	purchaseRepo repository.PurchaseRepository
	scriptRepo   repository.ScriptRepository
}

func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	scriptRepo repository.ScriptRepository,
) PurchaseService {
	return &purchaseServiceImpl{
		purchaseRepo: purchaseRepo,
		scriptRepo:   scriptRepo,
	}
}

func (s *purchaseServiceImpl) DemoPurchase(ctx context.Context, userID string, scriptIDs []int64) (*dto.PurchaseResponse, error) {
	logger := zerolog.Ctx(ctx)

	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if len(scriptIDs) == 0 {
		return nil, ErrNoItems
	}

	purchased := make([]int64, 0, len(scriptIDs))
	var failures []dto.PurchaseFailure
	for _, scriptID := range scriptIDs {
		if _, err := s.scriptRepo.FindByID(ctx, scriptID); err != nil {
			msg := "failed to look up script"
			if errors.Is(err, gorm.ErrRecordNotFound) {
				msg = ErrScriptNotFound.Error()
			} else {
				logger.Error().Err(err).Int64("script_id", scriptID).Msg("find script for demo purchase")
			}
			failures = append(failures, dto.PurchaseFailure{ScriptID: scriptID, Error: msg})
			continue
		}

		_, err := s.purchaseRepo.CreateIfAbsent(ctx, &model.Purchase{
			UserID:     userID,
			ScriptID:   scriptID,
			AmountPaid: decimal.Zero,
			Status:     model.PurchaseStatusDemo,
		})
		if err != nil {
			logger.Error().Err(err).Int64("script_id", scriptID).Msg("failed to record demo purchase")
			failures = append(failures, dto.PurchaseFailure{ScriptID: scriptID, Error: "failed to record purchase"})
			continue
		}
		purchased = append(purchased, scriptID)
	}

	logger.Info().
		Str("user_id", userID).
		Int("purchased", len(purchased)).
		Int("failed", len(failures)).
		Msg("demo purchase")

	return &dto.PurchaseResponse{
		Success:            len(failures) == 0,
		PurchasedScriptIDs: purchased,
		Message:            fmt.Sprintf("Successfully purchased %d script(s)", len(purchased)),
		Failures:           failures,
	}, nil
}
