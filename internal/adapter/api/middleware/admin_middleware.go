package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"influmarket/internal/usecase"
)

type AdminMiddleware struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminMiddleware(adminUseCase *usecase.AdminUseCase) *AdminMiddleware {
	return &AdminMiddleware{
		adminUseCase: adminUseCase,
	}
}

// AdminOnly must run after Authenticate.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok || uid == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		if !m.adminUseCase.IsAdmin(c.Request().Context(), uid) {
			return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
		}
		return next(c)
	}
}
