package delivery

import (
	"errors"
	"net/http"
	"time"

	"learnsphere/config"
	"learnsphere/domain"
	"learnsphere/dto"
	"learnsphere/middleware"
	"learnsphere/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUseCase
}

func NewAuthHandler(r *gin.Engine, authUC domain.AuthUseCase, limiter *middleware.RateLimiter) {
	handler := &AuthHandler{authUC: authUC}

	// Ping Route (no rate limiting)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Public routes with stricter rate limiting for auth
	public := r.Group("/auth")
	public.Use(limiter.Limit(middleware.RateLimiterConfig{
		RequestsPerWindow: 10,
		WindowDuration:    1 * time.Minute,
		KeyPrefix:         "ratelimit:auth",
	}))
	{
		public.POST("/register", handler.Register)
		public.POST("/logout", handler.Logout)

		// Login gets its own tighter window against brute force.
		login := r.Group("/auth")
		login.Use(limiter.Limit(middleware.RateLimiterConfig{
			RequestsPerWindow: 5,
			WindowDuration:    5 * time.Minute,
			KeyPrefix:         "ratelimit:login",
		}))
		login.POST("/login", handler.Login)
	}

	protected := r.Group("/auth")
	protected.Use(config.AuthMiddleware(authUC.GetAccessTokenManager()))
	{
		protected.GET("/me", handler.Me)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "Register", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to register",
		})
		return
	}

	result, err := h.authUC.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			utils.PrintLogInfo(&name, 409, "Register", &err)
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to register",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "Register", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to register",
		})
		return
	}

	utils.PrintLogInfo(&name, 201, "Register", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "Login", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to login",
		})
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			utils.PrintLogInfo(&name, 401, "Login", &err)
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to login",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "Login", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to login",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "Login", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// Logout is stateless: the client discards its token. The response carries
// the route to navigate to, mirroring login's redirect field.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Logout successful",
		"redirect": "/login",
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	userID, exists := c.Get("userID")
	if !exists {
		utils.PrintLogInfo(&name, 401, "Me", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to fetch profile",
		})
		return
	}

	user, err := h.authUC.Me(c.Request.Context(), userID.(string))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.PrintLogInfo(&name, 404, "Me", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to fetch profile",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "Me", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to fetch profile",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "Me", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}
