package invoices

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/invoice-dashboard/internal/application/dto"
)

// validate singleton del validador (thread-safe, cachea metadata de structs).
var validate = validator.New(validator.WithRequiredStructEnabled())

// Mensajes por campo del formulario. La coerción del monto falla con el mismo
// mensaje que un monto <= 0: el usuario no distingue "no es número" de "no es positivo".
const (
	msgCustomer = "Please select a customer"
	msgAmount   = "Please enter a number greater than £0"
	msgStatus   = "Please select an invoice status"
)

// parsedInvoice formulario ya tipado y validado. Omite id y fecha: los asigna el servidor.
type parsedInvoice struct {
	CustomerID string
	Amount     decimal.Decimal // unidades mayores, > 0
	Status     string
}

// parseForm valida los campos crudos del formulario y devuelve el registro tipado
// o el set de errores por campo. La falla nunca es un panic: siempre es data.
// Variantes create y update comparten reglas hoy; ambas pasan por aquí.
func parseForm(in dto.InvoiceForm) (*parsedInvoice, map[string][]string) {
	fieldErrs := make(map[string][]string)

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.Field() {
				case "CustomerID":
					fieldErrs["customer_id"] = append(fieldErrs["customer_id"], msgCustomer)
				case "Status":
					fieldErrs["status"] = append(fieldErrs["status"], msgStatus)
				}
			}
		} else {
			// Error del validador que no es por campos: lo tratamos como formulario inválido.
			fieldErrs["customer_id"] = append(fieldErrs["customer_id"], msgCustomer)
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	if err != nil || !amount.IsPositive() {
		fieldErrs["amount"] = append(fieldErrs["amount"], msgAmount)
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return &parsedInvoice{
		CustomerID: in.CustomerID,
		Amount:     amount,
		Status:     in.Status,
	}, nil
}

// toMinorUnits convierte unidades mayores a peniques: round(valor × 100).
// Decimal evita el redondeo flotante (ej. 19.99 × 100).
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
