package repository

import (
	"context"

	"github.com/tu-usuario/invoice-dashboard/internal/domain/entity"
)

// UserRepository define el puerto de lectura de credenciales.
// Solo lectura: los usuarios no se crean ni se modifican desde la aplicación.
type UserRepository interface {
	// FindByEmail devuelve (nil, nil) si el usuario no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
