package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"telephysio/internal/dto"
	"telephysio/internal/models"
	"telephysio/internal/repository"
	"telephysio/pkg/auth"
	"telephysio/pkg/config"
	"telephysio/pkg/emailcheck"
	"telephysio/pkg/mailer"
	"telephysio/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrDisposableEmail    = errors.New("disposable email addresses are not allowed")
)

const (
	signupVerifyMessage = "Signup successful. Please check your email to verify your account."
	signupMessage       = "Signup successful."
)

type AuthService struct {
	users      UserStore
	jwtManager *auth.JWTManager
	mailer     mailer.Sender
	emails     *emailcheck.Checker
	jwtCfg     *config.JWTConfig
	serverCfg  *config.ServerConfig
	logger     *zap.Logger
}

func NewAuthService(
	users UserStore,
	jwtManager *auth.JWTManager,
	sender mailer.Sender,
	emails *emailcheck.Checker,
	jwtCfg *config.JWTConfig,
	serverCfg *config.ServerConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		jwtManager: jwtManager,
		mailer:     sender,
		emails:     emails,
		jwtCfg:     jwtCfg,
		serverCfg:  serverCfg,
		logger:     logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	email := normalizeEmail(req.Email)
	if s.emails.IsDisposable(email) {
		return nil, ErrDisposableEmail
	}

	// Check if user exists
	existingUser, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	username := cleanText(strings.TrimSpace(req.Username))
	now := time.Now()
	user := &models.User{
		ID:            uuid.New(),
		Name:          username,
		Username:      username,
		Email:         email,
		Password:      hashedPassword,
		EmailVerified: !s.jwtCfg.RequireVerify,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if user.EmailVerified {
		user.VerifiedAt = &now
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	message := signupMessage
	if s.jwtCfg.RequireVerify {
		message = signupVerifyMessage
		s.sendVerification(ctx, user)
	}

	s.logger.Info("User signed up", zap.String("user_id", user.ID.String()))
	return &dto.SignupResponse{User: toUserResponse(user), Message: message}, nil
}

// VerifyEmail marks the token's owner as verified. already is true when the
// address had been verified before.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (already bool, err error) {
	email, err := s.jwtManager.ValidateEmailToken(token, auth.KindEmailVerify)
	if err != nil {
		return false, ErrInvalidToken
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrInvalidToken
		}
		return false, err
	}

	changed, err := s.users.MarkVerified(ctx, user.ID)
	if err != nil {
		return false, err
	}
	return !changed, nil
}

// ResendVerification mails a fresh link when the account exists and is still
// unverified. Unknown addresses are not reported.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if !user.EmailVerified {
		s.sendVerification(ctx, user)
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	if s.jwtCfg.RequireVerify && !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	return s.issueTokens(user)
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.issueTokens(user)
}

// ForgotPassword mails a reset link when the account exists. Delivery
// failures are logged and never reported to the caller.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := s.jwtManager.GenerateEmailToken(auth.KindPasswordReset, user.Email, s.jwtCfg.ResetExp)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password/%s", s.serverCfg.FrontendURL, token)
	msg := mailer.Message{
		To:      []string{user.Email},
		Subject: "Password Reset Request",
		Body: fmt.Sprintf("Click the link to reset your password: %s\nThis link is valid for %s.",
			link, humanDuration(s.jwtCfg.ResetExp)),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		metrics.MailFailures.WithLabelValues("reset").Inc()
		s.logger.Error("Failed to send reset email", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	email, err := s.jwtManager.ValidateEmailToken(token, auth.KindPasswordReset)
	if err != nil {
		return ErrInvalidToken
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	s.logger.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID.String(), user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		User:         toUserResponse(user),
	}, nil
}

func (s *AuthService) sendVerification(ctx context.Context, user *models.User) {
	token, err := s.jwtManager.GenerateEmailToken(auth.KindEmailVerify, user.Email, s.jwtCfg.VerifyExp)
	if err != nil {
		s.logger.Error("Failed to create verification token", zap.Error(err))
		return
	}

	link := fmt.Sprintf("%s/api/verify-email/%s", s.serverCfg.PublicURL, token)
	msg := mailer.Message{
		To:      []string{user.Email},
		Subject: "Verify your email",
		Body: fmt.Sprintf("Hi %s,\n\nPlease confirm your email address by opening this link: %s\nThis link is valid for %s.",
			user.Username, link, humanDuration(s.jwtCfg.VerifyExp)),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		metrics.MailFailures.WithLabelValues("verify").Inc()
		s.logger.Error("Failed to send verification email", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
}

func humanDuration(d time.Duration) string {
	switch {
	case d%(24*time.Hour) == 0 && d >= 24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	case d%time.Hour == 0 && d >= time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/time.Minute), "minute")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
