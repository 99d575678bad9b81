package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"influmarket/internal/infrastructure/firebase"
)

type AuthMiddleware struct {
	authClient *firebase.FirebaseAuthClient
}

func NewAuthMiddleware(authClient *firebase.FirebaseAuthClient) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
	}
}

// Authenticate verifies the bearer token and stores the user id under "uid".
// Websocket and SSE clients cannot set headers, so a "token" query parameter
// is accepted as a fallback.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		idToken := ""

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
			}
			idToken = parts[1]
		} else {
			idToken = c.QueryParam("token")
		}

		if idToken == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
		}

		uid, err := m.authClient.VerifyToken(c.Request().Context(), idToken)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", uid)
		return next(c)
	}
}
