package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"telephysio/internal/dto"
	"telephysio/internal/models"
	"telephysio/internal/repository"
	"telephysio/pkg/auth"
	"telephysio/pkg/config"
	"telephysio/pkg/emailcheck"
	"telephysio/pkg/mailer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	svc    *AuthService
	users  *MockUserStore
	mail   *MockSender
	jwt    *auth.JWTManager
	jwtCfg *config.JWTConfig
}

func newAuthFixture(requireVerify bool) *authFixture {
	jwtCfg := &config.JWTConfig{
		SecretKey:     "test-secret",
		Expiration:    15 * time.Minute,
		RefreshExp:    time.Hour,
		ResetExp:      time.Hour,
		VerifyExp:     24 * time.Hour,
		RequireVerify: requireVerify,
	}
	serverCfg := &config.ServerConfig{PublicURL: "http://api.test", FrontendURL: "http://app.test"}
	m := auth.NewJWTManager(jwtCfg.SecretKey, jwtCfg.Expiration, jwtCfg.RefreshExp)
	users := new(MockUserStore)
	sender := new(MockSender)
	svc := NewAuthService(users, m, sender, emailcheck.New(), jwtCfg, serverCfg, zap.NewNop())
	return &authFixture{svc: svc, users: users, mail: sender, jwt: m, jwtCfg: jwtCfg}
}

func existingUser(t *testing.T, email, password string, verified bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		ID:            uuid.New(),
		Name:          "sohel",
		Username:      "sohel",
		Email:         email,
		Password:      hash,
		EmailVerified: verified,
		CreatedAt:     time.Now(),
	}
}

// linkToken pulls the token off the end of the first URL in body.
func linkToken(t *testing.T, body, prefix string) string {
	t.Helper()
	i := strings.Index(body, prefix)
	require.GreaterOrEqual(t, i, 0, body)
	rest := body[i+len(prefix):]
	if j := strings.IndexByte(rest, '\n'); j >= 0 {
		rest = rest[:j]
	}
	return rest
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unverified user and mails link", func(t *testing.T) {
		f := newAuthFixture(true)
		f.users.On("GetByEmail", ctx, "sohel@example.com").Return(nil, repository.ErrNotFound)
		f.users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "sohel@example.com" && u.Name == "sohel" && !u.EmailVerified &&
				auth.CheckPasswordHash("secret1", u.Password)
		})).Return(nil)

		var sent mailer.Message
		f.mail.On("Send", ctx, mock.Anything).Run(func(args mock.Arguments) {
			sent = args.Get(1).(mailer.Message)
		}).Return(nil)

		resp, err := f.svc.Signup(ctx, &dto.SignupRequest{Username: "sohel", Email: " Sohel@Example.com ", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "sohel@example.com", resp.User.Email)
		assert.False(t, resp.User.EmailVerified)
		assert.Equal(t, signupVerifyMessage, resp.Message)

		assert.Equal(t, []string{"sohel@example.com"}, sent.To)
		token := linkToken(t, sent.Body, "http://api.test/api/verify-email/")
		email, err := f.jwt.ValidateEmailToken(token, auth.KindEmailVerify)
		require.NoError(t, err)
		assert.Equal(t, "sohel@example.com", email)
		assert.Contains(t, sent.Body, "1 day")

		f.users.AssertExpectations(t)
	})

	t.Run("mail failure does not fail signup", func(t *testing.T) {
		f := newAuthFixture(true)
		f.users.On("GetByEmail", ctx, "a@example.com").Return(nil, repository.ErrNotFound)
		f.users.On("Create", ctx, mock.Anything).Return(nil)
		f.mail.On("Send", ctx, mock.Anything).Return(errors.New("smtp down"))

		_, err := f.svc.Signup(ctx, &dto.SignupRequest{Username: "a", Email: "a@example.com", Password: "secret1"})
		assert.NoError(t, err)
	})

	t.Run("verification disabled", func(t *testing.T) {
		f := newAuthFixture(false)
		f.users.On("GetByEmail", ctx, "a@example.com").Return(nil, repository.ErrNotFound)
		f.users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.EmailVerified && u.VerifiedAt != nil
		})).Return(nil)

		resp, err := f.svc.Signup(ctx, &dto.SignupRequest{Username: "a", Email: "a@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, signupMessage, resp.Message)
		f.mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("existing email", func(t *testing.T) {
		f := newAuthFixture(true)
		f.users.On("GetByEmail", ctx, "a@example.com").Return(&models.User{}, nil)

		_, err := f.svc.Signup(ctx, &dto.SignupRequest{Username: "a", Email: "a@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("lookup failure", func(t *testing.T) {
		f := newAuthFixture(true)
		dbErr := errors.New("connection reset")
		f.users.On("GetByEmail", ctx, "a@example.com").Return(nil, dbErr)

		_, err := f.svc.Signup(ctx, &dto.SignupRequest{Username: "a", Email: "a@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrUserExists)
		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("duplicate on insert", func(t *testing.T) {
		f := newAuthFixture(true)
		f.users.On("GetByEmail", ctx, "a@example.com").Return(nil, repository.ErrNotFound)
		f.users.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicate)

		_, err := f.svc.Signup(ctx, &dto.SignupRequest{Username: "a", Email: "a@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("disposable email", func(t *testing.T) {
		f := newAuthFixture(true)
		_, err := f.svc.Signup(ctx, &dto.SignupRequest{Username: "a", Email: "a@mailinator.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrDisposableEmail)
		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(true)
	user := existingUser(t, "a@example.com", "secret1", false)
	f.users.On("GetByEmail", ctx, "a@example.com").Return(user, nil)
	f.users.On("MarkVerified", ctx, user.ID).Return(true, nil).Once()
	f.users.On("MarkVerified", ctx, user.ID).Return(false, nil).Once()

	token, err := f.jwt.GenerateEmailToken(auth.KindEmailVerify, "a@example.com", time.Hour)
	require.NoError(t, err)

	already, err := f.svc.VerifyEmail(ctx, token)
	require.NoError(t, err)
	assert.False(t, already)

	already, err = f.svc.VerifyEmail(ctx, token)
	require.NoError(t, err)
	assert.True(t, already)

	resetToken, err := f.jwt.GenerateEmailToken(auth.KindPasswordReset, "a@example.com", time.Hour)
	require.NoError(t, err)
	_, err = f.svc.VerifyEmail(ctx, resetToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = f.svc.VerifyEmail(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ResendVerification(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(true)
	unverified := existingUser(t, "new@example.com", "secret1", false)
	verified := existingUser(t, "old@example.com", "secret1", true)
	f.users.On("GetByEmail", ctx, "new@example.com").Return(unverified, nil)
	f.users.On("GetByEmail", ctx, "old@example.com").Return(verified, nil)
	f.users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound)
	f.mail.On("Send", ctx, mock.MatchedBy(func(m mailer.Message) bool {
		return len(m.To) == 1 && m.To[0] == "new@example.com"
	})).Return(nil).Once()

	assert.NoError(t, f.svc.ResendVerification(ctx, "NEW@example.com"))
	assert.NoError(t, f.svc.ResendVerification(ctx, "old@example.com"))
	assert.NoError(t, f.svc.ResendVerification(ctx, "ghost@example.com"))
	f.mail.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	f := newAuthFixture(true)
	user := existingUser(t, "a@example.com", "secret1", true)
	pending := existingUser(t, "p@example.com", "secret1", false)
	f.users.On("GetByEmail", ctx, "a@example.com").Return(user, nil)
	f.users.On("GetByEmail", ctx, "p@example.com").Return(pending, nil)
	f.users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound)

	resp, err := f.svc.Login(ctx, &dto.LoginRequest{Email: "A@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(900), resp.ExpiresIn)
	assert.Equal(t, "Bearer", resp.TokenType)
	claims, err := f.jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	_, err = f.jwt.ValidateRefreshToken(resp.RefreshToken)
	assert.NoError(t, err)

	_, err = f.svc.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, &dto.LoginRequest{Email: "p@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailNotVerified)

	// Wrong password on an unverified account still reads as bad credentials.
	_, err = f.svc.Login(ctx, &dto.LoginRequest{Email: "p@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(true)
	user := existingUser(t, "a@example.com", "secret1", true)
	f.users.On("GetByID", ctx, user.ID).Return(user, nil)

	refresh, err := f.jwt.GenerateRefreshToken(user.ID.String())
	require.NoError(t, err)
	resp, err := f.svc.RefreshToken(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	access, err := f.jwt.GenerateToken(user.ID.String(), "a", "a@example.com")
	require.NoError(t, err)
	_, err = f.svc.RefreshToken(ctx, access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	ghost := uuid.New()
	f.users.On("GetByID", ctx, ghost).Return(nil, repository.ErrNotFound)
	refresh, err = f.jwt.GenerateRefreshToken(ghost.String())
	require.NoError(t, err)
	_, err = f.svc.RefreshToken(ctx, refresh)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_ForgotAndResetPassword(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(true)
	user := existingUser(t, "a@example.com", "secret1", true)
	f.users.On("GetByEmail", ctx, "a@example.com").Return(user, nil)
	f.users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound)

	var sent mailer.Message
	f.mail.On("Send", ctx, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(mailer.Message)
	}).Return(nil).Once()

	require.NoError(t, f.svc.ForgotPassword(ctx, "a@example.com"))
	require.NoError(t, f.svc.ForgotPassword(ctx, "ghost@example.com"))
	f.mail.AssertNumberOfCalls(t, "Send", 1)
	assert.Equal(t, "Password Reset Request", sent.Subject)
	assert.Contains(t, sent.Body, "1 hour")

	token := linkToken(t, sent.Body, "http://app.test/reset-password/")
	f.users.On("UpdatePassword", ctx, user.ID, mock.MatchedBy(func(h string) bool {
		return auth.CheckPasswordHash("brand-new", h)
	})).Return(nil)

	require.NoError(t, f.svc.ResetPassword(ctx, token, "brand-new"))
	assert.ErrorIs(t, f.svc.ResetPassword(ctx, "garbage", "x"), ErrInvalidToken)

	ghostToken, err := f.jwt.GenerateEmailToken(auth.KindPasswordReset, "ghost@example.com", time.Hour)
	require.NoError(t, err)
	assert.ErrorIs(t, f.svc.ResetPassword(ctx, ghostToken, "x"), ErrUserNotFound)
}

func TestAuthService_ForgotPasswordMailFailure(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(true)
	f.users.On("GetByEmail", ctx, "a@example.com").Return(existingUser(t, "a@example.com", "x", true), nil)
	f.mail.On("Send", ctx, mock.Anything).Return(errors.New("smtp down"))

	assert.NoError(t, f.svc.ForgotPassword(ctx, "a@example.com"))
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "1 hour", humanDuration(time.Hour))
	assert.Equal(t, "2 days", humanDuration(48*time.Hour))
	assert.Equal(t, "90 minutes", humanDuration(90*time.Minute))
	assert.Equal(t, "1 day", humanDuration(24*time.Hour))
}
