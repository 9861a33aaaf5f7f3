package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"scriptmarket/internal/dto"
	"scriptmarket/internal/model"
	"scriptmarket/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SortPopular   = "popular"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"

	filterAll = "All"
)

// CatalogFilter narrows the catalog. Zero values match everything.
type CatalogFilter struct {
	Query         string
	Category      string
	Type          string
	Languages     []string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	MinRating     float64
	Sort          string
	OnlyFavorites bool
	UserID        string
}

type CatalogService interface {
	Seed(ctx context.Context) error
	List(ctx context.Context, filter CatalogFilter) ([]*model.Script, error)
	Get(ctx context.Context, scriptID int64) (*model.Script, error)
	Popular(ctx context.Context, limit int) ([]*model.Script, error)
	Facets(ctx context.Context) (*dto.FacetsResponse, error)
}

type catalogServiceImpl struct {
	scriptRepo   repository.ScriptRepository
	favoriteRepo repository.FavoriteRepository
}

func NewCatalogService(
	scriptRepo repository.ScriptRepository,
	favoriteRepo repository.FavoriteRepository,
) CatalogService {
	return &catalogServiceImpl{
		scriptRepo:   scriptRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (s *catalogServiceImpl) Seed(ctx context.Context) error {
	if err := s.scriptRepo.Seed(ctx, model.Catalog()); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

func (s *catalogServiceImpl) List(ctx context.Context, filter CatalogFilter) ([]*model.Script, error) {
	scripts, err := s.scriptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}

	var favorites map[int64]bool
	if filter.OnlyFavorites {
		if filter.UserID == "" {
			return nil, ErrUnauthenticated
		}
		ids, err := s.favoriteRepo.ListScriptIDs(ctx, filter.UserID)
		if err != nil {
			return nil, fmt.Errorf("list favorites: %w", err)
		}
		favorites = make(map[int64]bool, len(ids))
		for _, id := range ids {
			favorites[id] = true
		}
	}

	matched := make([]*model.Script, 0, len(scripts))
	for _, script := range scripts {
		if favorites != nil && !favorites[script.ID] {
			continue
		}
		if filter.matches(script) {
			matched = append(matched, script)
		}
	}

	sortScripts(matched, filter.Sort)
	return matched, nil
}

func (f *CatalogFilter) matches(script *model.Script) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		found := strings.Contains(strings.ToLower(script.Title), q) ||
			strings.Contains(strings.ToLower(script.Description), q)
		for _, tag := range script.Tags {
			if found {
				break
			}
			found = strings.Contains(strings.ToLower(tag), q)
		}
		if !found {
			return false
		}
	}

	if f.Category != "" && f.Category != filterAll && script.Category != f.Category {
		return false
	}
	if f.Type != "" && f.Type != filterAll && script.Type != f.Type {
		return false
	}

	if len(f.Languages) > 0 {
		found := false
		for _, lang := range f.Languages {
			if script.Language == lang {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.MinPrice != nil && script.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && script.Price.GreaterThan(*f.MaxPrice) {
		return false
	}

	return script.Rating >= f.MinRating
}

func sortScripts(scripts []*model.Script, order string) {
	var less func(a, b *model.Script) bool
	switch order {
	case SortPriceLow:
		less = func(a, b *model.Script) bool { return a.Price.LessThan(b.Price) }
	case SortPriceHigh:
		less = func(a, b *model.Script) bool { return a.Price.GreaterThan(b.Price) }
	case SortRating:
		less = func(a, b *model.Script) bool { return a.Rating > b.Rating }
	case SortPopular, "":
		less = func(a, b *model.Script) bool {
			if a.IsPopular != b.IsPopular {
				return a.IsPopular
			}
			return a.Rating > b.Rating
		}
	default:
		return
	}

	sort.SliceStable(scripts, func(i, j int) bool {
		return less(scripts[i], scripts[j])
	})
}

func (s *catalogServiceImpl) Get(ctx context.Context, scriptID int64) (*model.Script, error) {
	script, err := s.scriptRepo.FindByID(ctx, scriptID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrScriptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find script: %w", err)
	}
	return script, nil
}

// Popular returns popular scripts in catalog order.
func (s *catalogServiceImpl) Popular(ctx context.Context, limit int) ([]*model.Script, error) {
	scripts, err := s.scriptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}

	popular := make([]*model.Script, 0, limit)
	for _, script := range scripts {
		if len(popular) == limit {
			break
		}
		if script.IsPopular {
			popular = append(popular, script)
		}
	}
	return popular, nil
}

func (s *catalogServiceImpl) Facets(ctx context.Context) (*dto.FacetsResponse, error) {
	scripts, err := s.scriptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}

	categories := newCounter()
	types := newCounter()
	languages := newCounter()
	for _, script := range scripts {
		categories.add(script.Category)
		types.add(script.Type)
		languages.add(script.Language)
	}

	return &dto.FacetsResponse{
		Categories: categories.result(),
		Types:      types.result(),
		Languages:  languages.result(),
	}, nil
}

// counter preserves first-seen order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(v string) {
	if _, ok := c.counts[v]; !ok {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

func (c *counter) result() []dto.FacetCount {
	out := make([]dto.FacetCount, 0, len(c.order))
	for _, v := range c.order {
		out = append(out, dto.FacetCount{Value: v, Count: c.counts[v]})
	}
	return out
}
