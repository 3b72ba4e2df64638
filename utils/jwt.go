package utils

import (
	"errors"
	"log"
	"os"
	"time"

	"main/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	JWTSecretKey string
	JWTExpiry    time.Duration
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)

func InitJWT() {
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "test_secret_key_for_studyshare_tests")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET")
	if JWTSecretKey == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Session cookie and token share the same 7-day lifetime.
	JWTExpiry = config.GetEnvAsDuration("JWT_EXPIRES_IN", 7*24*time.Hour)
}

// GenerateToken signs a token carrying the user id claim. Validity is
// determined purely by signature and expiry; there is no server-side store.
func GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(JWTExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(JWTSecretKey))
}

// VerifyToken parses the token and returns the user id claim. It fails
// distinctly for expired and malformed tokens so the auth middleware can
// answer with precise messages.
func VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(JWTSecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrTokenMalformed
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", ErrTokenMalformed
	}
	return userID, nil
}
