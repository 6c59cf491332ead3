package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/invoice-dashboard/internal/application/dto"
	"github.com/tu-usuario/invoice-dashboard/internal/application/invoices"
)

// InvoiceHandler maneja las acciones de formulario y lecturas de facturas (protegido por el gate).
type InvoiceHandler struct {
	uc *invoices.UseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *invoices.UseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create crea una factura desde el formulario.
// POST /dashboard/invoices
// Errores de validación -> 400 con State; error de DB -> 500 con State;
// éxito -> 303 al listado.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.State{Message: "Missing Fields. Failed to Create Invoice."})
	}
	if state := h.uc.Create(c.Context(), in); state != nil {
		return c.Status(stateStatus(state)).JSON(state)
	}
	return c.Redirect("/dashboard/invoices", fiber.StatusSeeOther)
}

// Update actualiza una factura existente. La fecha almacenada no cambia.
// POST /dashboard/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.InvoiceForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.State{Message: "Missing Fields. Failed to Update Invoice."})
	}
	if state := h.uc.Update(c.Context(), id, in); state != nil {
		return c.Status(stateStatus(state)).JSON(state)
	}
	return c.Redirect("/dashboard/invoices", fiber.StatusSeeOther)
}

// Delete elimina una factura. Sin confirmación ni chequeo de existencia;
// un error de DB se propaga al error handler de Fiber.
// POST /dashboard/invoices/:id/delete
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.Redirect("/dashboard/invoices", fiber.StatusSeeOther)
}

// List devuelve el listado de facturas (vía cache).
// GET /dashboard/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.ToListedInvoiceResponses(list))
}

// GetByID obtiene una factura para el formulario de edición.
// GET /dashboard/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if inv == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.State{Message: "Invoice not found"})
	}
	return c.JSON(dto.ToInvoiceResponse(inv))
}

// Customers lista los clientes para el selector del formulario.
// GET /dashboard/customers
func (h *InvoiceHandler) Customers(c *fiber.Ctx) error {
	list, err := h.uc.Customers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.ToCustomerResponses(list))
}

// stateStatus distingue validación (errores por campo) de error de DB.
func stateStatus(state *dto.State) int {
	if len(state.Errors) > 0 {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
