package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/internal/dto"
	"github.com/fechasapp/fechas_backend/internal/middleware"
	"github.com/fechasapp/fechas_backend/pkg/config"
)

// authHandler handles authentication related requests.
type authHandler struct {
	tokenService portssvc.TokenSvcFacade
	userService  portssvc.UserSvcFacade
	cfg          *config.Config
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *authHandler {
	return &authHandler{
		tokenService: services.TokenService,
		userService:  services.User,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the public routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services, cfg)

	// Credential endpoints get a tighter rate limit than the rest of the API.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/register", limitMiddleware, h.register)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.logout)
	}
}

// setRefreshTokenCookie attaches the raw refresh token as an HTTP-only cookie
// scoped to the auth endpoints.
func (h *authHandler) setRefreshTokenCookie(c *gin.Context, rawToken string) {
	maxAge := int(h.cfg.RefreshTokenExpiryDuration.Seconds())
	if rawToken == "" {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, rawToken, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token. The refresh token travels in an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, rawRefreshToken, err := h.tokenService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	h.setRefreshTokenCookie(c, rawRefreshToken)
	c.JSON(http.StatusOK, resp)
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.CreateUserRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}

// refresh godoc
// @Summary Refresh access token
// @Description Rotates the token pair using the refresh token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rawToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token missing"})
		return
	}

	resp, newRawToken, err := h.tokenService.RefreshAccessToken(c.Request.Context(), rawToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			h.setRefreshTokenCookie(c, "")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired refresh token"})
			return
		}
		logger.Error("Token refresh failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to refresh token"})
		return
	}

	h.setRefreshTokenCookie(c, newRawToken)
	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Logout
// @Description Invalidates the stored refresh token and clears the cookie.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tokenService.Logout(c.Request.Context(), userID); err != nil {
		logger.Error("Logout failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log out"})
		return
	}

	h.setRefreshTokenCookie(c, "")
	c.Status(http.StatusNoContent)
}
