package middleware

import (
	"errors"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccessTokenCookie is the HTTP-only cookie carrying the session token.
const AccessTokenCookie = "accessToken"

const (
	contextUserKey   = "user"
	contextUserIDKey = "userID"
)

// AuthMiddleware resolves the request identity from the session cookie and
// attaches the user's public fields to the context. It fails distinctly for
// missing, expired and malformed tokens and for users that no longer exist.
func AuthMiddleware(usersRepo *repository.UsersRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AccessTokenCookie)
		if err != nil || tokenString == "" {
			utils.Unauthorized(c, "Access denied. No token provided.")
			c.Abort()
			return
		}

		userIDHex, err := utils.VerifyToken(tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				utils.Unauthorized(c, "Token expired. Please login again.")
			} else {
				utils.Unauthorized(c, "Invalid token format.")
			}
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			utils.Unauthorized(c, "Invalid token format.")
			c.Abort()
			return
		}

		user, err := usersRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			// A missing user is an auth failure; a failing database is not.
			if errors.Is(err, repository.ErrNotFound) {
				utils.Unauthorized(c, "Invalid token. User not found.")
			} else {
				utils.InternalError(c, "Failed to resolve user")
			}
			c.Abort()
			return
		}

		c.Set(contextUserIDKey, user.ID)
		c.Set(contextUserKey, user.Public())
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the context.
func CurrentUserID(c *gin.Context) primitive.ObjectID {
	if v, ok := c.Get(contextUserIDKey); ok {
		if id, ok := v.(primitive.ObjectID); ok {
			return id
		}
	}
	return primitive.NilObjectID
}

// CurrentUser returns the authenticated user's public fields.
func CurrentUser(c *gin.Context) (model.PublicUser, bool) {
	if v, ok := c.Get(contextUserKey); ok {
		if user, ok := v.(model.PublicUser); ok {
			return user, true
		}
	}
	return model.PublicUser{}, false
}
