package entity

// Customer representa un cliente al que se le factura.
// De solo lectura para este subsistema: se usa para poblar el selector de clientes.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
