package repository

import (
	"context"

	"gorm.io/gorm"
)

type CursoRepository struct {
	DB *gorm.DB
}

func NewCursoRepository(db *gorm.DB) *CursoRepository {
	return &CursoRepository{DB: db}
}

// CursoRow es un curso visible sin enriquecer.
type CursoRow struct {
	ID        int
	Fullname  string
	Shortname string
}

// DocenteRow es un candidato a docente representativo de un curso.
type DocenteRow struct {
	ID        int
	Firstname string
	Lastname  string
	Email     string
	Username  string
}

// ListCursos devuelve los cursos visibles de una carrera ordenados por nombre.
func (r *CursoRepository) ListCursos(ctx context.Context, carreraID int) ([]CursoRow, error) {
	var rows []CursoRow
	sql := `SELECT id, fullname, shortname
	        FROM tecnm_course
	        WHERE category = ? AND visible = 1
	        ORDER BY fullname`
	if err := scanRaw(ctx, r.DB, "cursos.list", &rows, sql, carreraID); err != nil {
		return nil, err
	}
	return rows, nil
}

// CandidatosDocente devuelve los usuarios con rol de profesor en el curso,
// ordenados por prioridad de rol y luego por id. El filtro de username
// institucional se aplica en la capa de servicio como política nombrada.
func (r *CursoRepository) CandidatosDocente(ctx context.Context, cursoID int) ([]DocenteRow, error) {
	var rows []DocenteRow
	sql := `SELECT u.id, u.firstname, u.lastname, u.email, u.username
	        FROM tecnm_user u
	        INNER JOIN tecnm_role_assignments ra ON ra.userid = u.id
	        INNER JOIN tecnm_context ctx ON ctx.id = ra.contextid
	        WHERE ctx.instanceid = ?
	          AND ctx.contextlevel = 50
	          AND ra.roleid IN (3, 4)
	          AND u.deleted = 0
	          AND u.suspended = 0
	        ORDER BY ra.roleid, u.id`
	if err := scanRaw(ctx, r.DB, "cursos.docente", &rows, sql, cursoID); err != nil {
		return nil, err
	}
	return rows, nil
}

// GrupoDeCurso devuelve el nombre del primer grupo con miembros del curso, o
// cadena vacía si no hay.
func (r *CursoRepository) GrupoDeCurso(ctx context.Context, cursoID int) (string, error) {
	var row struct {
		Name string
	}
	sql := `SELECT g.name
	        FROM tecnm_groups g
	        INNER JOIN tecnm_groups_members gm ON gm.groupid = g.id
	        WHERE g.courseid = ?
	        LIMIT 1`
	if err := scanRaw(ctx, r.DB, "cursos.grupo", &row, sql, cursoID); err != nil {
		return "", err
	}
	return row.Name, nil
}

// TieneAsistencia indica si existe un registro de asistencias para el curso.
func (r *CursoRepository) TieneAsistencia(ctx context.Context, cursoID int) (bool, error) {
	var row struct {
		N int64
	}
	sql := `SELECT COUNT(*) AS n
	        FROM tecnm_attendance
	        WHERE course = ?`
	if err := scanRaw(ctx, r.DB, "cursos.asistencia_config", &row, sql, cursoID); err != nil {
		return false, err
	}
	return row.N > 0, nil
}
