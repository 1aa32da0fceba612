package model

// Carrera es una categoría de nivel superior del LMS que agrupa cursos.
type Carrera struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// CategoriasExcluidas son categorías administrativas del instituto que nunca
// deben aparecer como carreras.
var CategoriasExcluidas = []int{2, 4, 8}
