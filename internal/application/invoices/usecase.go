package invoices

import (
	"context"
	"time"

	"github.com/tu-usuario/invoice-dashboard/internal/application/dto"
	"github.com/tu-usuario/invoice-dashboard/internal/domain/entity"
	"github.com/tu-usuario/invoice-dashboard/internal/domain/repository"
	"github.com/tu-usuario/invoice-dashboard/pkg/logger"
)

// Mensajes de las acciones de formulario.
const (
	msgCreateMissing = "Missing Fields. Failed to Create Invoice."
	msgCreateDB      = "Database Error: Failed to Create Invoice."
	msgUpdateMissing = "Missing Fields. Failed to Update Invoice."
	msgUpdateDB      = "Database Error: Failed to Update Invoice."
)

// ListCache puerto del cache de la vista de listado. La invalidación es
// fire-and-forget respecto a la mutación: un fallo se loguea, no revierte la escritura.
type ListCache interface {
	Get(ctx context.Context) ([]*entity.ListedInvoice, bool, error)
	Set(ctx context.Context, list []*entity.ListedInvoice) error
	Invalidate(ctx context.Context) error
}

// UseCase acciones de facturas: create, update, delete y lecturas para el dashboard.
type UseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	cache     ListCache
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso de facturas.
func NewUseCase(invoices repository.InvoiceRepository, customers repository.CustomerRepository, cache ListCache, log *logger.Logger) *UseCase {
	return &UseCase{invoices: invoices, customers: customers, cache: cache, log: log, now: time.Now}
}

// Create valida el formulario y persiste una factura nueva.
// Devuelve nil en éxito; un *State con errores si la validación o la DB fallan.
// Sin validación no hay I/O. La fecha es la del día (UTC) y la asigna el servidor.
func (uc *UseCase) Create(ctx context.Context, in dto.InvoiceForm) *dto.State {
	parsed, fieldErrs := parseForm(in)
	if fieldErrs != nil {
		return &dto.State{Message: msgCreateMissing, Errors: fieldErrs}
	}

	now := uc.now().UTC()
	inv := &entity.Invoice{
		CustomerID: parsed.CustomerID,
		Amount:     toMinorUnits(parsed.Amount),
		Status:     parsed.Status,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		uc.log.Error().Err(err).Msg("crear factura")
		return &dto.State{Message: msgCreateDB}
	}

	uc.invalidateList(ctx)
	return nil
}

// Update valida el formulario y actualiza customer, monto y estado por id.
// La fecha almacenada nunca cambia. Los errores de DB se devuelven al caller
// igual que en Create: una actualización fallida no se disfraza de éxito.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.InvoiceForm) *dto.State {
	parsed, fieldErrs := parseForm(in)
	if fieldErrs != nil {
		return &dto.State{Message: msgUpdateMissing, Errors: fieldErrs}
	}

	inv := &entity.Invoice{
		ID:         id,
		CustomerID: parsed.CustomerID,
		Amount:     toMinorUnits(parsed.Amount),
		Status:     parsed.Status,
	}
	if err := uc.invoices.Update(ctx, inv); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("actualizar factura")
		return &dto.State{Message: msgUpdateDB}
	}

	uc.invalidateList(ctx)
	return nil
}

// Delete elimina la factura por id. Un id inexistente es un no-op silencioso;
// un error de DB se propaga al error handler del framework.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if err := uc.invoices.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidateList(ctx)
	return nil
}

// List devuelve el listado de facturas a través del cache.
// Hit: se sirve de Redis sin tocar la DB. Miss: lee Postgres y repuebla.
func (uc *UseCase) List(ctx context.Context) ([]*entity.ListedInvoice, error) {
	cached, hit, err := uc.cache.Get(ctx)
	if err != nil {
		// Cache caído no tumba el listado: seguimos a la DB.
		uc.log.Warn().Err(err).Msg("leer cache de facturas")
	}
	if hit {
		return cached, nil
	}

	list, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.cache.Set(ctx, list); err != nil {
		uc.log.Warn().Err(err).Msg("poblar cache de facturas")
	}
	return list, nil
}

// GetByID obtiene una factura (para el formulario de edición). (nil, nil) si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return uc.invoices.GetByID(ctx, id)
}

// Customers lista los clientes para el selector del formulario.
func (uc *UseCase) Customers(ctx context.Context) ([]*entity.Customer, error) {
	return uc.customers.List(ctx)
}

func (uc *UseCase) invalidateList(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("invalidar cache de facturas")
	}
}
