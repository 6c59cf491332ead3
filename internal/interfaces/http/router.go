package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/invoice-dashboard/internal/application/auth"
	"github.com/tu-usuario/invoice-dashboard/internal/application/invoices"
	"github.com/tu-usuario/invoice-dashboard/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC *invoices.UseCase
	AuthUC    *auth.UseCase
	Session   config.SessionConfig
}

// Router registra el gate de sesión y las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	// El gate corre en todo request salvo /api, /static y *.png.
	app.Use(SessionGate(deps.Session))

	// Login (público; con sesión activa el gate redirige al dashboard)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	app.Get("/login", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Please log in"})
	})
	app.Post("/login", authHandler.Authenticate)

	// Dashboard (protegido por el gate)
	dashboard := app.Group("/dashboard")
	dashboard.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": GetUserID(c), "email": GetEmail(c)})
	})
	dashboard.Post("/logout", authHandler.Logout)

	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	dashboard.Get("/invoices", invoiceHandler.List)
	dashboard.Post("/invoices", invoiceHandler.Create)
	dashboard.Get("/invoices/:id", invoiceHandler.GetByID)
	dashboard.Post("/invoices/:id", invoiceHandler.Update)
	dashboard.Post("/invoices/:id/delete", invoiceHandler.Delete)
	dashboard.Get("/customers", invoiceHandler.Customers)
}
