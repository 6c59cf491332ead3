package repository

import (
	"context"

	"github.com/tu-usuario/invoice-dashboard/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice (DIP).
// Cada operación es una única sentencia parametrizada; no hay transacciones
// multi-sentencia en este subsistema.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update cambia customer_id, amount y status por id. La fecha no se toca.
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete por id. Borrar un id inexistente es un no-op silencioso.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.ListedInvoice, error)
}
