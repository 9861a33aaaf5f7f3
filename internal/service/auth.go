package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"scriptmarket/internal/auth"
	"scriptmarket/internal/dto"
	"scriptmarket/internal/model"
	"scriptmarket/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLength = 6
	weddingDateLayout = "2006-01-02"
)

type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResult, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResult, error)
	Me(ctx context.Context, userID string) (*dto.MeResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.MeResponse, error)
}

type authServiceImpl struct {
	profileRepo  repository.ProfileRepository
	favoriteRepo repository.FavoriteRepository
	purchaseRepo repository.PurchaseRepository
	tokens       *auth.TokenManager
	dummyHash    []byte
}

func NewAuthService(
	profileRepo repository.ProfileRepository,
	favoriteRepo repository.FavoriteRepository,
	purchaseRepo repository.PurchaseRepository,
	tokens *auth.TokenManager,
) AuthService {
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

	return &authServiceImpl{
		profileRepo:  profileRepo,
		favoriteRepo: favoriteRepo,
		purchaseRepo: purchaseRepo,
		tokens:       tokens,
		dummyHash:    dummyHash,
	}
}

func invalidProfile(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidProfile, fmt.Sprintf(format, args...))
}

func validWeddingDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(weddingDateLayout, s)
	return err == nil
}

func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, invalidProfile("email is invalid")
	}
	if len(req.Password) < minPasswordLength {
		return nil, invalidProfile("password must be at least %d characters", minPasswordLength)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidProfile("name is required")
	}

	userType := req.UserType
	if userType == "" {
		userType = model.UserTypeGuest
	}
	if !model.ValidUserType(userType) {
		return nil, invalidProfile("unknown user type %q", userType)
	}
	if !validWeddingDate(req.WeddingDate) {
		return nil, invalidProfile("wedding date must be YYYY-MM-DD")
	}

	_, err := s.profileRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find profile by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := &model.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		UserType:     userType,
		Location:     strings.TrimSpace(req.Location),
		Partner:      strings.TrimSpace(req.Partner),
		WeddingDate:  req.WeddingDate,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	zerolog.Ctx(ctx).Info().Str("user_id", profile.ID).Msg("profile created")

	return s.session(&dto.MeResponse{
		Profile:          profile,
		FavoriteScripts:  []int64{},
		PurchasedScripts: []int64{},
	})
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResult, error) {
	profile, err := s.profileRepo.FindByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// keep timing close to the found path
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find profile by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	me, err := s.withLibrary(ctx, profile)
	if err != nil {
		return nil, err
	}
	return s.session(me)
}

func (s *authServiceImpl) session(me *dto.MeResponse) (*dto.AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(me.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &dto.AuthResult{
		User:      me,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authServiceImpl) withLibrary(ctx context.Context, profile *model.Profile) (*dto.MeResponse, error) {
	favorites, err := s.favoriteRepo.ListScriptIDs(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	purchased, err := s.purchaseRepo.ListScriptIDs(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	if favorites == nil {
		favorites = []int64{}
	}
	if purchased == nil {
		purchased = []int64{}
	}

	return &dto.MeResponse{
		Profile:          profile,
		FavoriteScripts:  favorites,
		PurchasedScripts: purchased,
	}, nil
}

func (s *authServiceImpl) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	profile, err := s.profileRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	return s.withLibrary(ctx, profile)
}

func (s *authServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.MeResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalidProfile("name is required")
		}
		updates["name"] = name
	}
	if req.UserType != nil {
		if !model.ValidUserType(*req.UserType) {
			return nil, invalidProfile("unknown user type %q", *req.UserType)
		}
		updates["user_type"] = *req.UserType
	}
	if req.WeddingDate != nil {
		if !validWeddingDate(*req.WeddingDate) {
			return nil, invalidProfile("wedding date must be YYYY-MM-DD")
		}
		updates["wedding_date"] = *req.WeddingDate
	}
	if req.Location != nil {
		updates["location"] = strings.TrimSpace(*req.Location)
	}
	if req.Partner != nil {
		updates["partner"] = strings.TrimSpace(*req.Partner)
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Avatar != nil {
		updates["avatar_url"] = strings.TrimSpace(*req.Avatar)
	}

	if len(updates) == 0 {
		return s.Me(ctx, userID)
	}

	profile, err := s.profileRepo.Update(ctx, userID, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return s.withLibrary(ctx, profile)
}
