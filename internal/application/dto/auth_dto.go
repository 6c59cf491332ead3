package dto

// Credentials entrada del formulario de login.
// La validación de forma (email válido, password >= 6) ocurre antes de
// cualquier consulta a la DB.
type Credentials struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=6"`
}
