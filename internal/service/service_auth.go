package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tin-keeper/internal/config"
	"github.com/MKhiriev/go-tin-keeper/internal/crypto"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/utils"
	"github.com/MKhiriev/go-tin-keeper/models"
)

// authService authenticates the single configured administrator and issues
// HS256 tokens for the admin endpoints.
type authService struct {
	adminLogin        string
	adminPasswordHash string

	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService]. With an empty cfg.AdminLogin
// every operation fails with [ErrAdminDisabled].
func NewAuthService(cfg config.Auth, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	logger.Debug().Bool("enabled", cfg.AdminLogin != "").Msg("creating auth service")
	return &authService{
		adminLogin:        cfg.AdminLogin,
		adminPasswordHash: cfg.AdminPasswordHash,
		hasher:            hasher,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

func (a *authService) Enabled() bool {
	return a.adminLogin != ""
}

// Login verifies creds and issues a token.
//
// Returns:
//   - ErrAdminDisabled if no administrator is configured.
//   - ErrInvalidDataProvided if login or password is empty.
//   - ErrWrongCredentials if either does not match.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, creds models.AdminCredentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if !a.Enabled() {
		return models.Token{}, ErrAdminDisabled
	}
	if creds.Login == "" || creds.Password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	loginOK := subtle.ConstantTimeCompare([]byte(creds.Login), []byte(a.adminLogin)) == 1

	passwordOK, err := a.hasher.Verify(creds.Password, a.adminPasswordHash)
	if err != nil {
		log.Err(err).Msg("configured admin password hash is unusable")
		return models.Token{}, fmt.Errorf("verifying admin password: %w", err)
	}

	if !loginOK || !passwordOK {
		log.Warn().Str("login", creds.Login).Msg("admin login failed")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.adminLogin, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("login", a.adminLogin).Msg("admin logged in")
	return token, nil
}

// ParseToken validates a raw JWT. Any failure, including a token issued to
// another subject, is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if !a.Enabled() {
		return models.Token{}, ErrAdminDisabled
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if token.Login() != a.adminLogin {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
