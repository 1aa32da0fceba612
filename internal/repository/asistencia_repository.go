package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type AsistenciaRepository struct {
	DB *gorm.DB
}

func NewAsistenciaRepository(db *gorm.DB) *AsistenciaRepository {
	return &AsistenciaRepository{DB: db}
}

// SesionRow es una sesión de asistencia cruda de un curso de la carrera, con
// el conteo de registros ya tomados. La clasificación se deriva después; nunca
// se almacena.
type SesionRow struct {
	CursoID                int
	CursoNombre            string
	Clave                  string
	SesionID               int
	Sessdate               int64
	Docente                sql.NullString
	GrupoNombre            sql.NullString
	AsistenciasRegistradas int64
}

// SesionesPorCarrera junta cursos visibles, registros de asistencia y
// sesiones, ordenado por nombre de curso y fecha descendente.
func (r *AsistenciaRepository) SesionesPorCarrera(ctx context.Context, carreraID int) ([]SesionRow, error) {
	var rows []SesionRow
	q := `SELECT c.id AS curso_id,
	             c.fullname AS curso_nombre,
	             c.shortname AS clave,
	             atts.id AS sesion_id,
	             atts.sessdate,
	             (SELECT CONCAT(u.firstname, ' ', u.lastname)
	              FROM tecnm_user u
	              INNER JOIN tecnm_role_assignments ra ON ra.userid = u.id
	              INNER JOIN tecnm_context ctx ON ctx.id = ra.contextid
	              WHERE ctx.instanceid = c.id
	                AND ctx.contextlevel = 50
	                AND ra.roleid IN (3, 4)
	                AND u.deleted = 0
	                AND u.suspended = 0
	                AND u.username NOT REGEXP '^[0-9]+$'
	              ORDER BY ra.roleid, u.id
	              LIMIT 1) AS docente,
	             (SELECT g.name
	              FROM tecnm_groups g
	              INNER JOIN tecnm_groups_members gm ON gm.groupid = g.id
	              WHERE g.courseid = c.id
	              LIMIT 1) AS grupo_nombre,
	             (SELECT COUNT(*)
	              FROM tecnm_attendance_log al
	              WHERE al.sessionid = atts.id) AS asistencias_registradas
	      FROM tecnm_course c
	      INNER JOIN tecnm_attendance att ON att.course = c.id
	      INNER JOIN tecnm_attendance_sessions atts ON atts.attendanceid = att.id
	      WHERE c.category = ? AND c.visible = 1
	      ORDER BY c.fullname, atts.sessdate DESC`
	if err := scanRaw(ctx, r.DB, "sesiones.carrera", &rows, q, carreraID); err != nil {
		return nil, err
	}
	return rows, nil
}

// DesgloseCursoRow acumula, por curso visible, inscritos activos y el balance
// de registros de asistencia sobre sesiones ya ocurridas.
type DesgloseCursoRow struct {
	CursoID         int
	Nombre          string
	Clave           string
	Docente         sql.NullString
	Grupo           sql.NullString
	Inscritos       int64
	SesionesPasadas int64
	Presentes       int64
	Ausentes        int64
}

// DesglosePorCurso alimenta el resumen jerárquico: presentes y ausentes se
// cuentan sobre registros reales; lo no registrado se deriva como pendiente
// en la capa de servicio.
func (r *AsistenciaRepository) DesglosePorCurso(ctx context.Context, carreraID int) ([]DesgloseCursoRow, error) {
	var rows []DesgloseCursoRow
	q := `SELECT c.id AS curso_id,
	             c.fullname AS nombre,
	             c.shortname AS clave,
	             (SELECT CONCAT(u.firstname, ' ', u.lastname)
	              FROM tecnm_user u
	              INNER JOIN tecnm_role_assignments ra ON ra.userid = u.id
	              INNER JOIN tecnm_context ctx ON ctx.id = ra.contextid
	              WHERE ctx.instanceid = c.id
	                AND ctx.contextlevel = 50
	                AND ra.roleid IN (3, 4)
	                AND u.deleted = 0
	                AND u.suspended = 0
	                AND u.username NOT REGEXP '^[0-9]+$'
	              ORDER BY ra.roleid, u.id
	              LIMIT 1) AS docente,
	             (SELECT g.name
	              FROM tecnm_groups g
	              INNER JOIN tecnm_groups_members gm ON gm.groupid = g.id
	              WHERE g.courseid = c.id
	              LIMIT 1) AS grupo,
	             (SELECT COUNT(DISTINCT ue.userid)
	              FROM tecnm_enrol e
	              INNER JOIN tecnm_user_enrolments ue ON ue.enrolid = e.id
	              WHERE e.courseid = c.id AND ue.status = 0) AS inscritos,
	             (SELECT COUNT(*)
	              FROM tecnm_attendance att
	              INNER JOIN tecnm_attendance_sessions atts ON atts.attendanceid = att.id
	              WHERE att.course = c.id
	                AND atts.sessdate < UNIX_TIMESTAMP()) AS sesiones_pasadas,
	             (SELECT COUNT(*)
	              FROM tecnm_attendance att
	              INNER JOIN tecnm_attendance_sessions atts ON atts.attendanceid = att.id
	              INNER JOIN tecnm_attendance_log al ON al.sessionid = atts.id
	              INNER JOIN tecnm_attendance_statuses ats ON ats.id = al.statusid
	              WHERE att.course = c.id
	                AND atts.sessdate < UNIX_TIMESTAMP()
	                AND NOT ` + condAusente + `) AS presentes,
	             (SELECT COUNT(*)
	              FROM tecnm_attendance att
	              INNER JOIN tecnm_attendance_sessions atts ON atts.attendanceid = att.id
	              INNER JOIN tecnm_attendance_log al ON al.sessionid = atts.id
	              INNER JOIN tecnm_attendance_statuses ats ON ats.id = al.statusid
	              WHERE att.course = c.id
	                AND atts.sessdate < UNIX_TIMESTAMP()
	                AND ` + condAusente + `) AS ausentes
	      FROM tecnm_course c
	      WHERE c.category = ? AND c.visible = 1
	      ORDER BY c.fullname`
	if err := scanRaw(ctx, r.DB, "resumen.desglose", &rows, q, carreraID); err != nil {
		return nil, err
	}
	return rows, nil
}

// EstudiantesDistintos cuenta estudiantes únicos con matrícula activa en los
// cursos visibles de la carrera. Conteo exacto: un alumno inscrito en varios
// cursos cuenta una vez.
func (r *AsistenciaRepository) EstudiantesDistintos(ctx context.Context, carreraID int) (int64, error) {
	var row struct {
		N int64
	}
	q := `SELECT COUNT(DISTINCT ue.userid) AS n
	      FROM tecnm_user_enrolments ue
	      INNER JOIN tecnm_enrol e ON ue.enrolid = e.id
	      INNER JOIN tecnm_course c ON e.courseid = c.id
	      WHERE c.category = ? AND c.visible = 1 AND ue.status = 0`
	if err := scanRaw(ctx, r.DB, "resumen.estudiantes", &row, q, carreraID); err != nil {
		return 0, err
	}
	return row.N, nil
}
