package dto

import (
	"time"

	"github.com/tu-usuario/invoice-dashboard/internal/domain/entity"
)

// InvoiceForm campos crudos del formulario de factura (todo llega como string).
// El monto se ingresa en unidades mayores (£) y se persiste en peniques.
type InvoiceForm struct {
	CustomerID string `form:"customer_id" json:"customer_id" validate:"required"`
	Amount     string `form:"amount" json:"amount"`
	Status     string `form:"status" json:"status" validate:"required,oneof=pending paid"`
}

// State resultado de una acción de formulario: mensaje general más errores por campo.
// Transitorio, se construye por request y se descarta tras renderizar.
type State struct {
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// InvoiceResponse salida de una factura. Amount en peniques; Date como YYYY-MM-DD.
type InvoiceResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// ListedInvoiceResponse fila del listado: factura más datos del cliente.
type ListedInvoiceResponse struct {
	InvoiceResponse
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

// CustomerResponse salida de un cliente (para el selector del formulario).
type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// ToInvoiceResponse mapea la entidad a la respuesta.
func ToInvoiceResponse(inv *entity.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		Status:     inv.Status,
		Date:       inv.Date.UTC().Format(time.DateOnly),
	}
}

// ToListedInvoiceResponses mapea el listado.
func ToListedInvoiceResponses(list []*entity.ListedInvoice) []ListedInvoiceResponse {
	out := make([]ListedInvoiceResponse, 0, len(list))
	for _, li := range list {
		out = append(out, ListedInvoiceResponse{
			InvoiceResponse: *ToInvoiceResponse(&li.Invoice),
			CustomerName:    li.CustomerName,
			CustomerEmail:   li.CustomerEmail,
		})
	}
	return out
}

// ToCustomerResponses mapea los clientes.
func ToCustomerResponses(list []*entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, ImageURL: c.ImageURL})
	}
	return out
}
