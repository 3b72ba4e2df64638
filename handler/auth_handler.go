package handler

import (
	"errors"
	"net/http"

	"main/config"
	"main/dto"
	"main/middleware"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func setTokenCookie(c *gin.Context, token string) {
	cfg := config.LoadServerConfig()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, token,
		int(utils.JWTExpiry.Seconds()), "/", cfg.CookieDomain, cfg.CookieSecure, true)
}

func clearTokenCookie(c *gin.Context) {
	cfg := config.LoadServerConfig()
	c.SetCookie(middleware.AccessTokenCookie, "",
		-1, "/", cfg.CookieDomain, cfg.CookieSecure, true)
}

func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	user, err := userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			middleware.TrackAuthAttempt("failure", "register")
			utils.Conflict(c, "User already exists with this email")
			return
		}
		utils.InternalError(c, "Registration failed")
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex())
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	setTokenCookie(c, token)

	middleware.TrackAuthAttempt("success", "register")
	utils.Created(c, gin.H{"user": user.Public()})
}

func LoginHandler(c *gin.Context, userService *usecase.UserService, limiter *services.LoginLimiter) {
	if !limiter.Allow(c.Request.Context(), c.ClientIP()) {
		utils.TooManyRequests(c, "Too many login attempts. Try again later.")
		return
	}

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	user, err := userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			middleware.TrackAuthAttempt("failure", "login")
			utils.Unauthorized(c, "Invalid email or password")
			return
		}
		utils.InternalError(c, "Login failed")
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex())
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	setTokenCookie(c, token)

	middleware.TrackAuthAttempt("success", "login")
	utils.Success(c, gin.H{"user": user.Public()})
}

// LogoutHandler clears the client cookie. The token itself stays valid until
// expiry; there is no server-side revocation.
func LogoutHandler(c *gin.Context) {
	clearTokenCookie(c)
	utils.Success(c, gin.H{"message": "Logged out successfully"})
}

func MeHandler(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	utils.Success(c, gin.H{"user": user})
}
