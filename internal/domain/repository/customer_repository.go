package repository

import (
	"context"

	"github.com/tu-usuario/invoice-dashboard/internal/domain/entity"
)

// CustomerRepository define el puerto de lectura de clientes.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
}
