package model

import "regexp"

// Docente es un usuario con rol de profesor asociado a cursos.
type Docente struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	CursosCount int    `json:"cursosCount"`
}

var usernameNumerico = regexp.MustCompile(`^[0-9]+$`)

// EsUsernameInstitucional distingue cuentas de personal de cuentas de
// alumnado: las matrículas de estudiantes son puramente numéricas, así que un
// username numérico con rol de profesor se trata como una asignación errónea.
// Política sustituible si el esquema corrige los roles.
func EsUsernameInstitucional(username string) bool {
	return !usernameNumerico.MatchString(username)
}
