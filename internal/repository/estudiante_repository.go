package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type EstudianteRepository struct {
	DB *gorm.DB
}

func NewEstudianteRepository(db *gorm.DB) *EstudianteRepository {
	return &EstudianteRepository{DB: db}
}

// FaltasRow es un estudiante con su conteo de días distintos de falta.
type FaltasRow struct {
	ID         int
	Nombre     string
	Email      string
	Matricula  string
	DiasFaltas int
}

// FaltasPorCarrera cuenta, por estudiante activo, los días calendario
// distintos con falta marcada en sesiones ya ocurridas. Una sesión futura no
// puede aportar faltas; dos faltas el mismo día cuentan un solo día.
func (r *EstudianteRepository) FaltasPorCarrera(ctx context.Context, carreraID int) ([]FaltasRow, error) {
	var rows []FaltasRow
	q := `SELECT u.id,
	             CONCAT(u.firstname, ' ', u.lastname) AS nombre,
	             u.email,
	             u.username AS matricula,
	             COUNT(DISTINCT DATE(FROM_UNIXTIME(atts.sessdate))) AS dias_faltas
	      FROM tecnm_user u
	      INNER JOIN tecnm_user_enrolments ue ON u.id = ue.userid
	      INNER JOIN tecnm_enrol e ON ue.enrolid = e.id
	      INNER JOIN tecnm_course c ON e.courseid = c.id
	      INNER JOIN tecnm_attendance att ON att.course = c.id
	      INNER JOIN tecnm_attendance_sessions atts ON atts.attendanceid = att.id
	      INNER JOIN tecnm_attendance_log al ON al.sessionid = atts.id AND al.studentid = u.id
	      INNER JOIN tecnm_attendance_statuses ats ON ats.id = al.statusid
	      WHERE c.category = ?
	        AND ue.status = 0
	        AND u.deleted = 0
	        AND u.suspended = 0
	        AND c.visible = 1
	        AND atts.sessdate < UNIX_TIMESTAMP()
	        AND ` + condAusente + `
	      GROUP BY u.id, u.firstname, u.lastname, u.email, u.username
	      HAVING COUNT(DISTINCT DATE(FROM_UNIXTIME(atts.sessdate))) >= 1
	      ORDER BY dias_faltas DESC, u.firstname`
	if err := scanRaw(ctx, r.DB, "faltas.carrera", &rows, q, carreraID); err != nil {
		return nil, err
	}
	return rows, nil
}

// InfoRow es la identidad de un estudiante dentro de una carrera.
type InfoRow struct {
	ID        int
	Nombre    string
	Email     string
	Matricula string
	Carrera   string
}

// InfoEstudiante resuelve la identidad del estudiante en la carrera; fila en
// cero si no hay matrícula activa (resultado vacío, no error).
func (r *EstudianteRepository) InfoEstudiante(ctx context.Context, estudianteID, carreraID int) (InfoRow, error) {
	var row InfoRow
	q := `SELECT u.id,
	             CONCAT(u.firstname, ' ', u.lastname) AS nombre,
	             u.email,
	             u.username AS matricula,
	             cat.name AS carrera
	      FROM tecnm_user u
	      INNER JOIN tecnm_user_enrolments ue ON u.id = ue.userid
	      INNER JOIN tecnm_enrol e ON ue.enrolid = e.id
	      INNER JOIN tecnm_course c ON e.courseid = c.id
	      INNER JOIN tecnm_course_categories cat ON cat.id = c.category
	      WHERE u.id = ?
	        AND c.category = ?
	        AND ue.status = 0
	      LIMIT 1`
	if err := scanRaw(ctx, r.DB, "faltas.info", &row, q, estudianteID, carreraID); err != nil {
		return InfoRow{}, err
	}
	return row, nil
}

// FaltaDetalleRow es una falta individual con su fecha y curso, base del
// desglose por día.
type FaltaDetalleRow struct {
	Fecha   string
	Curso   string
	CursoID int
	Docente sql.NullString
}

// FaltasDetalle lista las faltas del estudiante en la carrera, más recientes
// primero.
func (r *EstudianteRepository) FaltasDetalle(ctx context.Context, estudianteID, carreraID int) ([]FaltaDetalleRow, error) {
	var rows []FaltaDetalleRow
	q := `SELECT DATE_FORMAT(FROM_UNIXTIME(atts.sessdate), '%Y-%m-%d') AS fecha,
	             c.fullname AS curso,
	             c.id AS curso_id,
	             (SELECT CONCAT(u2.firstname, ' ', u2.lastname)
	              FROM tecnm_user u2
	              INNER JOIN tecnm_role_assignments ra ON ra.userid = u2.id
	              INNER JOIN tecnm_context ctx ON ctx.id = ra.contextid
	              WHERE ctx.instanceid = c.id
	                AND ctx.contextlevel = 50
	                AND ra.roleid IN (3, 4)
	                AND u2.deleted = 0
	                AND u2.suspended = 0
	                AND u2.username NOT REGEXP '^[0-9]+$'
	              ORDER BY ra.roleid, u2.id
	              LIMIT 1) AS docente
	      FROM tecnm_user u
	      INNER JOIN tecnm_user_enrolments ue ON u.id = ue.userid
	      INNER JOIN tecnm_enrol e ON ue.enrolid = e.id
	      INNER JOIN tecnm_course c ON e.courseid = c.id
	      INNER JOIN tecnm_attendance att ON att.course = c.id
	      INNER JOIN tecnm_attendance_sessions atts ON atts.attendanceid = att.id
	      INNER JOIN tecnm_attendance_log al ON al.sessionid = atts.id AND al.studentid = u.id
	      INNER JOIN tecnm_attendance_statuses ats ON ats.id = al.statusid
	      WHERE u.id = ?
	        AND c.category = ?
	        AND ue.status = 0
	        AND atts.sessdate < UNIX_TIMESTAMP()
	        AND ` + condAusente + `
	      ORDER BY atts.sessdate DESC`
	if err := scanRaw(ctx, r.DB, "faltas.detalle", &rows, q, estudianteID, carreraID); err != nil {
		return nil, err
	}
	return rows, nil
}
