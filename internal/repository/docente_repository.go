package repository

import (
	"context"

	"gorm.io/gorm"
)

type DocenteRepository struct {
	DB *gorm.DB
}

func NewDocenteRepository(db *gorm.DB) *DocenteRepository {
	return &DocenteRepository{DB: db}
}

// DocenteCursosRow es un profesor con su conteo de cursos asignados.
type DocenteCursosRow struct {
	ID          int
	Firstname   string
	Lastname    string
	Email       string
	Username    string
	CursosCount int
}

// ListDocentes devuelve los usuarios con rol de profesor en al menos un curso
// y cuántos cursos imparten. La vía canónica es la tabla de asignación de
// roles; el filtro de username institucional se aplica después como política.
func (r *DocenteRepository) ListDocentes(ctx context.Context) ([]DocenteCursosRow, error) {
	var rows []DocenteCursosRow
	sql := `SELECT u.id,
	               u.firstname,
	               u.lastname,
	               u.email,
	               u.username,
	               COUNT(DISTINCT ctx.instanceid) AS cursos_count
	        FROM tecnm_user u
	        INNER JOIN tecnm_role_assignments ra ON ra.userid = u.id
	        INNER JOIN tecnm_context ctx ON ctx.id = ra.contextid
	        WHERE ctx.contextlevel = 50
	          AND ra.roleid IN (3, 4)
	          AND u.deleted = 0
	          AND u.suspended = 0
	        GROUP BY u.id, u.firstname, u.lastname, u.email, u.username
	        HAVING COUNT(DISTINCT ctx.instanceid) > 0
	        ORDER BY u.firstname, u.lastname`
	if err := scanRaw(ctx, r.DB, "docentes.list", &rows, sql); err != nil {
		return nil, err
	}
	return rows, nil
}
