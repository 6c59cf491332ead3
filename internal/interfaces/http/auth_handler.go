package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/invoice-dashboard/internal/application/auth"
	"github.com/tu-usuario/invoice-dashboard/internal/application/dto"
	"github.com/tu-usuario/invoice-dashboard/pkg/config"
	"github.com/tu-usuario/invoice-dashboard/pkg/session"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc  *auth.UseCase
	cfg config.SessionConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg}
}

// Authenticate procesa el formulario de login.
// POST /login
// Credenciales malas (cualquiera sea la causa) -> 401 "Invalid Credentials".
// Falla inesperada al emitir la sesión -> 500 "Something went wrong.".
// Éxito -> cookie de sesión y redirect al dashboard.
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	var in dto.Credentials
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.State{Message: "Something went wrong."})
	}

	user := h.uc.Authorize(c.Context(), in)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.State{Message: "Invalid Credentials"})
	}

	tok, err := session.Issue(h.cfg.Secret, user.ID, user.Email, h.cfg.Issuer, h.cfg.ExpMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.State{Message: "Something went wrong."})
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   h.cfg.ExpMinutes * 60,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// Logout termina la sesión: expira la cookie y redirige a la raíz.
// POST /dashboard/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}
