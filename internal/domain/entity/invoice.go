package entity

import "time"

// Estados válidos de una factura.
const (
	StatusPending = "pending" // Emitida, pago pendiente
	StatusPaid    = "paid"    // Pagada
)

// Invoice representa una factura.
// Amount siempre en unidades menores (peniques): valor × 100, nunca decimales.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64     // unidades menores
	Status     string    // pending | paid
	Date       time.Time // fecha de emisión; la asigna el create y el update no la toca
}

// ListedInvoice es una fila del listado: factura más datos del cliente para mostrar.
type ListedInvoice struct {
	Invoice
	CustomerName  string
	CustomerEmail string
}
