package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
	"github.com/MKhiriev/go-pod-sync/models"
)

const tokenTypeBearer = "Bearer"

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; refresh tokens are stored as
// HMAC-SHA256 hashes under hashKey and rotated on every use.
type authService struct {
	accounts AccountStore

	tokenSignKey         string
	tokenIssuer          string
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
	hashKey              string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService on top of accounts with the
// token parameters of cfg.
func NewAuthService(accounts AccountStore, cfg config.ServerAuth, logger *logger.Logger) AuthService {
	return &authService{
		accounts:             accounts,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		hashKey:              cfg.HashKey,
		logger:               logger,
	}
}

// Register validates the login and password, stores the account and issues
// its first token pair.
//
// Returns ErrInvalidData if login or password is empty, or the store error
// when the login is taken.
func (a *authService) Register(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	req.Login = strings.TrimSpace(req.Login)
	if req.Login == "" || req.Password == "" {
		log.Error().Str("func", "authService.Register").Msg("invalid account data provided")
		return models.TokenResponse{}, fmt.Errorf("%w: login and password are required", ErrInvalidData)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("hash password: %w", err)
	}

	account := models.Account{Login: req.Login, UUID: uuid.NewString(), PasswordHash: hash}
	if err = a.accounts.CreateAccount(ctx, account); err != nil {
		log.Err(err).Str("func", "authService.Register").Str("login", req.Login).Msg("account creation ended with error")
		return models.TokenResponse{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return a.issue(ctx, account)
}

// Login checks the password of an existing account.
//
// Returns ErrInvalidData for an empty login or password and ErrWrongPassword
// for an unknown login or a password mismatch.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	req.Login = strings.TrimSpace(req.Login)
	if req.Login == "" || req.Password == "" {
		log.Error().Str("func", "authService.Login").Msg("invalid account data provided")
		return models.TokenResponse{}, fmt.Errorf("%w: login and password are required", ErrInvalidData)
	}

	account, err := a.accounts.FindAccount(ctx, req.Login)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("login", req.Login).Msg("account search by login failed")
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrWrongPassword, err)
	}

	if err = bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(req.Password)); err != nil {
		log.Error().Str("func", "authService.Login").Str("login", req.Login).Msg("wrong password")
		return models.TokenResponse{}, ErrWrongPassword
	}

	return a.issue(ctx, account)
}

// RefreshToken validates the refresh token, consumes its stored hash and
// issues a new pair.
func (a *authService) RefreshToken(ctx context.Context, req models.RefreshTokenRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(req.RefreshToken, a.tokenSignKey, a.tokenIssuer, models.TokenKindRefresh)
	if err != nil {
		log.Err(err).Str("func", "authService.RefreshToken").Msg("refresh token rejected")
		return models.TokenResponse{}, ErrTokenIsExpiredOrInvalid
	}

	login, err := a.accounts.ConsumeRefreshToken(ctx, utils.HashString(req.RefreshToken, a.hashKey))
	if err != nil || login != token.Login {
		log.Error().Str("func", "authService.RefreshToken").Str("login", token.Login).Msg("refresh token is not live")
		return models.TokenResponse{}, ErrTokenIsExpiredOrInvalid
	}

	account, err := a.accounts.FindAccount(ctx, login)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return a.issue(ctx, account)
}

// ParseToken validates an access token. An expired token fails with
// ErrTokenIsExpired, any other failure with ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, models.TokenKindAccess)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

func (a *authService) issue(ctx context.Context, account models.Account) (models.TokenResponse, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, account.Login, models.TokenKindAccess, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, account.Login, models.TokenKindRefresh, a.refreshTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.accounts.SaveRefreshToken(ctx, account.Login, utils.HashString(refresh.String(), a.hashKey)); err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenResponse{
		Login:        account.Login,
		UUID:         account.UUID,
		AccessToken:  access.String(),
		RefreshToken: refresh.String(),
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(a.accessTokenDuration.Seconds()),
	}, nil
}
