package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/entity"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/repository"
	"github.com/nishantgoyal/fashionhub-api/pkg/apperror"
	"github.com/nishantgoyal/fashionhub-api/pkg/oauth"
	"github.com/nishantgoyal/fashionhub-api/pkg/utils"
	"golang.org/x/oauth2"
)

// GoogleVerifier resolves a Google authorization code to the account
// behind it.
type GoogleVerifier interface {
	IsConfigured() bool
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*oauth.GoogleUserInfo, error)
}

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	oauthSvc   GoogleVerifier
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	jwtManager *utils.JWTManager,
	oauthSvc GoogleVerifier,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		oauthSvc:   oauthSvc,
	}
}

// LoginInput represents the login input. Owners sign in with email and
// password; staff sign in with their staff ID and PIN. Exactly one pair
// should be set.
type LoginInput struct {
	Email    string
	Password string
	StaffID  string
	PIN      string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	var (
		user   *entity.User
		err    error
		secret string
	)

	switch {
	case input.StaffID != "":
		user, err = s.userRepo.GetByStaffID(ctx, input.StaffID)
		secret = input.PIN
	case input.Email != "":
		user, err = s.userRepo.GetByEmail(ctx, input.Email)
		secret = input.Password
	default:
		return nil, apperror.NewBadRequestError("Either email or staff ID is required")
	}

	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(secret, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RegisterStaffInput represents the staff registration input
type RegisterStaffInput struct {
	Name    string
	StaffID string
	PIN     string
}

// RegisterStaff creates a staff account. Only owners may call this; the
// handler enforces the role check.
func (s *AuthService) RegisterStaff(ctx context.Context, input *RegisterStaffInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByStaffID(ctx, input.StaffID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Staff ID already registered")
	}

	hashedPIN, err := utils.HashPassword(input.PIN)
	if err != nil {
		return nil, err
	}

	staffID := input.StaffID
	user := &entity.User{
		Name:     input.Name,
		StaffID:  &staffID,
		Password: hashedPIN,
		Role:     enum.RoleStaff,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	return s.issueTokens(user)
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// ListStaff returns every user account, owners and staff alike
func (s *AuthService) ListStaff(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}

// GoogleAuth signs in a user from an exchanged Google OAuth code. Only
// accounts that already exist may complete the flow: staff are
// provisioned by the owner, so an unknown Google account must never
// mint a new user, let alone an owner.
func (s *AuthService) GoogleAuth(ctx context.Context, code string) (*LoginOutput, error) {
	if s.oauthSvc == nil || !s.oauthSvc.IsConfigured() {
		return nil, apperror.NewBadRequestError("Google sign-in is not configured")
	}

	token, err := s.oauthSvc.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid authorization code")
	}

	info, err := s.oauthSvc.GetUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	if !info.VerifiedEmail {
		return nil, apperror.NewForbiddenError("Google account email is not verified")
	}

	user, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewForbiddenError("Google account is not registered for this store")
	}

	// Link the Google identity on first sign-in
	if user.Provider != "google" {
		providerID := info.ID
		user.Provider = "google"
		user.ProviderID = &providerID
		if info.Picture != "" && user.Photo == nil {
			picture := info.Picture
			user.Photo = &picture
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	// Roles may predate normalization; parse before signing the token
	role := user.Role
	if !role.IsValid() {
		role = enum.ParseRole(string(role))
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Name, role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
