package repository

import (
	"context"
	"strings"

	"asistencia_dashboard_backend/internal/model"

	"gorm.io/gorm"
)

type CarreraRepository struct {
	DB *gorm.DB
}

func NewCarreraRepository(db *gorm.DB) *CarreraRepository {
	return &CarreraRepository{DB: db}
}

// ListCarreras devuelve las categorías de nivel superior excluyendo las
// administrativas, ordenadas por nombre.
func (r *CarreraRepository) ListCarreras(ctx context.Context) ([]model.Carrera, error) {
	excluidas := make([]interface{}, len(model.CategoriasExcluidas))
	marcas := make([]string, len(model.CategoriasExcluidas))
	for i, id := range model.CategoriasExcluidas {
		excluidas[i] = id
		marcas[i] = "?"
	}

	var rows []struct {
		ID   int
		Name string
	}
	sql := `SELECT id, name
	        FROM tecnm_course_categories
	        WHERE parent = 0 AND id NOT IN (` + strings.Join(marcas, ", ") + `)
	        ORDER BY name`
	if err := scanRaw(ctx, r.DB, "carreras.list", &rows, sql, excluidas...); err != nil {
		return nil, err
	}

	carreras := make([]model.Carrera, 0, len(rows))
	for _, row := range rows {
		carreras = append(carreras, model.Carrera{ID: row.ID, Nombre: row.Name})
	}
	return carreras, nil
}

// GetCarrera resuelve el nombre de una carrera; nombre vacío si no existe.
func (r *CarreraRepository) GetCarrera(ctx context.Context, carreraID int) (model.Carrera, error) {
	var row struct {
		ID   int
		Name string
	}
	sql := `SELECT id, name FROM tecnm_course_categories WHERE id = ? LIMIT 1`
	if err := scanRaw(ctx, r.DB, "carreras.get", &row, sql, carreraID); err != nil {
		return model.Carrera{}, err
	}
	return model.Carrera{ID: carreraID, Nombre: row.Name}, nil
}
