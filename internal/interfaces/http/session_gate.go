package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/invoice-dashboard/pkg/config"
	"github.com/tu-usuario/invoice-dashboard/pkg/session"
)

// Locals keys para UserID y Email en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

// Decision resultado del gate para un request.
type Decision int

const (
	DecisionAllow Decision = iota
	DecisionRedirectLogin
	DecisionRedirectDashboard
)

// SkipGate indica los paths excluidos del gate: rutas de API, estáticos y .png.
func SkipGate(path string) bool {
	return strings.HasPrefix(path, "/api") ||
		strings.HasPrefix(path, "/static") ||
		strings.HasSuffix(path, ".png")
}

// Decide es la función pura del gate: (sesión, path) con tres ramas, sin estado propio.
//   - bajo /dashboard: permitir solo con sesión, si no redirigir a login
//   - con sesión fuera de /dashboard: redirigir al dashboard
//   - resto: permitir
func Decide(hasSession bool, path string) Decision {
	onDashboard := strings.HasPrefix(path, "/dashboard")
	switch {
	case onDashboard && !hasSession:
		return DecisionRedirectLogin
	case !onDashboard && hasSession:
		return DecisionRedirectDashboard
	default:
		return DecisionAllow
	}
}

// SessionGate corre en cada request: valida la cookie de sesión, carga
// user_id y email en Locals y aplica Decide sobre el path.
func SessionGate(cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if SkipGate(path) {
			return c.Next()
		}

		hasSession := false
		if tok := c.Cookies(cfg.CookieName); tok != "" {
			if userID, email, err := session.Parse(cfg.Secret, tok); err == nil {
				hasSession = true
				c.Locals(LocalUserID, userID)
				c.Locals(LocalEmail, email)
			}
		}

		switch Decide(hasSession, path) {
		case DecisionRedirectLogin:
			return c.Redirect("/login", fiber.StatusSeeOther)
		case DecisionRedirectDashboard:
			return c.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID de la sesión (después del gate).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devuelve el email de la sesión (después del gate).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
