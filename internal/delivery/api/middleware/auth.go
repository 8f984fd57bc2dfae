package middleware

import (
	"strings"

	"greenloop/config"
	"greenloop/internal/delivery/api/response"
	"greenloop/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDKey is the echo.Context key under which Authenticate stores the caller.
const userIDKey = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "En-tête Authorization manquant")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Format de jeton invalide, Bearer attendu")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "INVALID_TOKEN", "Jeton invalide ou expiré")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Jeton invalide ou expiré")
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Identifiant utilisateur absent du jeton")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Identifiant utilisateur invalide dans le jeton")
		}

		// Set user info on the context for handlers to use
		c.Set(userIDKey, userID)

		return next(c)
	}
}

// GetUserID extracts the authenticated user ID stored by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDKey).(uuid.UUID)

	return userID, ok
}
