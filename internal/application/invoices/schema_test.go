package invoices

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/invoice-dashboard/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests parseForm — validación del formulario de factura
// ──────────────────────────────────────────────────────────────────────────────

func TestParseForm_FormularioValido(t *testing.T) {
	parsed, errs := parseForm(dto.InvoiceForm{CustomerID: "c1", Amount: "50.00", Status: "paid"})
	require.Nil(t, errs)
	require.NotNil(t, parsed)

	assert.Equal(t, "c1", parsed.CustomerID)
	assert.Equal(t, "paid", parsed.Status)
	assert.True(t, parsed.Amount.Equal(decimal.RequireFromString("50.00")))
}

func TestParseForm_SinCliente(t *testing.T) {
	_, errs := parseForm(dto.InvoiceForm{Amount: "10", Status: "pending"})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Please select a customer"}, errs["customer_id"])
	assert.NotContains(t, errs, "amount")
	assert.NotContains(t, errs, "status")
}

func TestParseForm_MontoNoNumerico(t *testing.T) {
	_, errs := parseForm(dto.InvoiceForm{CustomerID: "c1", Amount: "abc", Status: "paid"})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Please enter a number greater than £0"}, errs["amount"])
}

func TestParseForm_MontoCeroONegativo(t *testing.T) {
	for _, amount := range []string{"0", "0.00", "-5", "-0.01"} {
		_, errs := parseForm(dto.InvoiceForm{CustomerID: "c1", Amount: amount, Status: "paid"})
		require.NotNil(t, errs, "monto %q debe fallar", amount)
		assert.Equal(t, []string{"Please enter a number greater than £0"}, errs["amount"], "monto %q", amount)
	}
}

func TestParseForm_EstadoFueraDelEnum(t *testing.T) {
	for _, status := range []string{"", "draft", "PAID", "cancelled"} {
		_, errs := parseForm(dto.InvoiceForm{CustomerID: "c1", Amount: "10", Status: status})
		require.NotNil(t, errs, "estado %q debe fallar", status)
		assert.Equal(t, []string{"Please select an invoice status"}, errs["status"], "estado %q", status)
	}
}

func TestParseForm_AcumulaErroresDeTodosLosCampos(t *testing.T) {
	_, errs := parseForm(dto.InvoiceForm{})
	require.NotNil(t, errs)
	assert.Len(t, errs, 3, "los tres campos deben reportar error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests toMinorUnits — conversión a peniques
// ──────────────────────────────────────────────────────────────────────────────

func TestToMinorUnits_Redondeo(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"50.00", 5000},
		{"19.99", 1999},
		{"0.01", 1},
		{"10.555", 1056}, // round(1055.5)
		{"100", 10000},
	}
	for _, tc := range cases {
		got := toMinorUnits(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "monto %s", tc.in)
	}
}
