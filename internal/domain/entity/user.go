package entity

// User representa una credencial de acceso al dashboard.
// De solo lectura para este subsistema: nunca se crea ni se modifica aquí.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano
}
