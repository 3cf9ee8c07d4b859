package handlers

import (
	"context"

	"telephysio/internal/dto"
	"telephysio/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const resetRequestedMessage = "If an account exists, a reset link has been sent."
const resendMessage = "If the account exists and is not verified, a new verification link has been sent."

type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	VerifyEmail(ctx context.Context, token string) (bool, error)
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type AuthHandler struct {
	authService AuthService
	frontendURL string
	logger      *zap.Logger
}

func NewAuthHandler(authService AuthService, frontendURL string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// Signup godoc
// @Summary Register a new user
// @Description Register with username, email and password. A verification link is mailed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup request"
// @Success 201 {object} dto.SignupResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if ok, err := parseBody(c, &req, "Please provide username, email, and password"); !ok {
		return err
	}

	resp, err := h.authService.Signup(c.Context(), &req)
	if err != nil {
		switch err {
		case service.ErrUserExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Email already registered",
			})
		case service.ErrDisposableEmail:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Disposable email addresses are not allowed",
			})
		}
		h.logger.Error("Signup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Signup failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// VerifyEmail godoc
// @Summary Confirm an email address
// @Description Redirects to the frontend success or failure page
// @Tags auth
// @Param token path string true "Verification token"
// @Success 302
// @Router /api/verify-email/{token} [get]
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	already, err := h.authService.VerifyEmail(c.Context(), c.Params("token"))
	if err != nil {
		if err != service.ErrInvalidToken {
			h.logger.Error("Email verification failed", zap.Error(err))
		}
		return c.Redirect(h.frontendURL+"/verify-email-failure", fiber.StatusFound)
	}

	target := h.frontendURL + "/verify-email-success"
	if already {
		target += "?already=true"
	}
	return c.Redirect(target, fiber.StatusFound)
}

// ResendVerification godoc
// @Summary Resend the verification link
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.EmailRequest true "Email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string
// @Router /api/resend-verification [post]
func (h *AuthHandler) ResendVerification(c *fiber.Ctx) error {
	var req dto.EmailRequest
	if ok, err := parseBody(c, &req, "Email required"); !ok {
		return err
	}

	if err := h.authService.ResendVerification(c.Context(), req.Email); err != nil {
		h.logger.Error("Resend verification failed", zap.Error(err))
	}
	return c.JSON(dto.MessageResponse{Message: resendMessage})
}

// Login godoc
// @Summary Login user
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if ok, err := parseBody(c, &req, "Please provide email and password"); !ok {
		return err
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		switch err {
		case service.ErrInvalidCredentials:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid email or password",
			})
		case service.ErrEmailNotVerified:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Please verify your email before logging in",
			})
		}
		h.logger.Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}

	return c.JSON(resp)
}

// RefreshToken godoc
// @Summary Refresh access token
// @Description Get new access token using refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /api/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if ok, err := parseBody(c, &req, "Refresh token required"); !ok {
		return err
	}

	resp, err := h.authService.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		if err == service.ErrInvalidToken || err == service.ErrUserNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}
		h.logger.Error("Token refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token refresh failed",
		})
	}

	return c.JSON(resp)
}

// ForgotPassword godoc
// @Summary Request a password reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.EmailRequest true "Email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string
// @Router /api/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.EmailRequest
	if ok, err := parseBody(c, &req, "Email required"); !ok {
		return err
	}

	if err := h.authService.ForgotPassword(c.Context(), req.Email); err != nil {
		h.logger.Error("Forgot password failed", zap.Error(err))
	}
	return c.JSON(dto.MessageResponse{Message: resetRequestedMessage})
}

// ResetPassword godoc
// @Summary Set a new password
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param request body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if ok, err := parseBody(c, &req, "Password required"); !ok {
		return err
	}

	err := h.authService.ResetPassword(c.Context(), c.Params("token"), req.Password)
	if err != nil {
		switch err {
		case service.ErrInvalidToken:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		case service.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		h.logger.Error("Password reset failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Password reset failed",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Password reset successful"})
}
