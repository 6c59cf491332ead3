package auth

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/tu-usuario/invoice-dashboard/internal/application/dto"
	"github.com/tu-usuario/invoice-dashboard/internal/domain/entity"
	"github.com/tu-usuario/invoice-dashboard/internal/domain/repository"
	"github.com/tu-usuario/invoice-dashboard/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// UseCase autorizador de credenciales: email/password contra la tabla users.
type UseCase struct {
	users repository.UserRepository
	log   *logger.Logger
}

// NewUseCase construye el autorizador.
func NewUseCase(users repository.UserRepository, log *logger.Logger) *UseCase {
	return &UseCase{users: users, log: log}
}

// Authorize verifica las credenciales y devuelve el usuario, o nil si fallan.
// Toda causa de falla (forma inválida, usuario inexistente, password incorrecto,
// error de DB) colapsa al mismo nil: la respuesta no filtra cuál verificación
// falló. No "arreglar" esto con errores granulares.
//
// La validación de forma (email válido, password >= 6) corre antes de cualquier
// consulta: una password corta nunca llega a la DB.
func (uc *UseCase) Authorize(ctx context.Context, in dto.Credentials) *entity.User {
	if err := validate.Struct(in); err != nil {
		uc.log.Debug().Msg("login: credenciales con forma inválida")
		return nil
	}

	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error().Err(err).Msg("login: consulta de usuario")
		return nil
	}
	if user == nil {
		uc.log.Debug().Msg("login: usuario no encontrado")
		return nil
	}

	// Comparación de hash en tiempo constante (bcrypt).
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Debug().Msg("login: password incorrecto")
		return nil
	}
	return user
}
