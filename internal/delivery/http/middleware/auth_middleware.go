package middleware

import (
	"net/http"
	"strings"

	deliverycontext "stallbook/internal/delivery/context"
	"stallbook/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// keyClaims is the echo.Context key the verified token claims live under.
const keyClaims = "claims"

// AuthMiddleware provides middleware for JWT authentication.
// Authorization (role ranks, super admin checks) happens in the use
// case layer against the live user record, not here.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores its claims
// on the request context for handlers to pass into use cases.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Refresh tokens only work on the refresh endpoint.
		if claims.Type != "access" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Access token required"})
		}

		c.Set(keyClaims, claims)

		if logger := deliverycontext.GetLogger(c.Request().Context()); logger != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(), logger.With("userID", claims.UserID.String()))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// GetClaims extracts the verified claims set by Authenticate. Returns
// nil when the route skipped authentication.
func GetClaims(c echo.Context) *service.Claims {
	claims, _ := c.Get(keyClaims).(*service.Claims)

	return claims
}
