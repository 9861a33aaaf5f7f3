package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"scriptmarket/internal/dto"
	"scriptmarket/internal/model"
	"scriptmarket/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type LibraryService interface {
	// Download checks ownership on every call before returning content.
	Download(ctx context.Context, userID string, scriptID int64) (*dto.Download, error)
	Purchased(ctx context.Context, userID string) ([]*model.Script, error)
}

type libraryServiceImpl struct {
	scriptRepo   repository.ScriptRepository
	purchaseRepo repository.PurchaseRepository
	contentRepo  repository.ContentRepository
}

// NewLibraryService builds the download gate. contentRepo may be nil.
func NewLibraryService(
	scriptRepo repository.ScriptRepository,
	purchaseRepo repository.PurchaseRepository,
	contentRepo repository.ContentRepository,
) LibraryService {
	return &libraryServiceImpl{
		scriptRepo:   scriptRepo,
		purchaseRepo: purchaseRepo,
		contentRepo:  contentRepo,
	}
}

func (s *libraryServiceImpl) Download(ctx context.Context, userID string, scriptID int64) (*dto.Download, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	owned, err := s.purchaseRepo.Exists(ctx, userID, scriptID)
	if err != nil {
		return nil, fmt.Errorf("check purchase: %w", err)
	}
	if !owned {
		return nil, ErrNotPurchased
	}

	script, err := s.scriptRepo.FindByID(ctx, scriptID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrScriptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find script: %w", err)
	}

	content := s.storedContent(ctx, scriptID)
	if content == nil {
		content = []byte(RenderScript(script))
	}

	return &dto.Download{
		Filename: DownloadFilename(script.Title),
		Content:  content,
	}, nil
}

func (s *libraryServiceImpl) storedContent(ctx context.Context, scriptID int64) []byte {
	if s.contentRepo == nil {
		return nil
	}

	content, found, err := s.contentRepo.Get(ctx, scriptID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("script_id", scriptID).Msg("read script file, falling back to catalog text")
		return nil
	}
	if !found {
		return nil
	}
	return content
}

func (s *libraryServiceImpl) Purchased(ctx context.Context, userID string) ([]*model.Script, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	ids, err := s.purchaseRepo.ListScriptIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	scripts, err := s.scriptRepo.FindMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find scripts: %w", err)
	}
	return scripts, nil
}

// DownloadFilename lower-cases the title and replaces anything outside [a-z0-9] with '_'.
func DownloadFilename(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String() + ".txt"
}

func RenderScript(script *model.Script) string {
	description := script.FullDescription
	if description == "" {
		description = script.Description
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", script.Title, strings.Repeat("=", utf8.RuneCountInString(script.Title)))
	fmt.Fprintf(&b, "Author: %s\nCategory: %s\nLanguage: %s\n\n", script.Author, script.Category, script.Language)
	fmt.Fprintf(&b, "Description:\n%s\n\n", description)
	fmt.Fprintf(&b, "--- SCRIPT CONTENT ---\n\n%s\n\n", script.PreviewContent)
	b.WriteString("[This is a demo. In production, the full script content would be here.]")
	return b.String()
}
