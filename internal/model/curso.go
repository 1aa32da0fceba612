package model

// Estado de configuración de asistencias de un curso.
const (
	ConfigConfigurado = "configurado"
	ConfigPendiente   = "pendiente"
)

// Valores centinela cuando el curso no tiene docente o grupo resuelto.
const (
	DocenteNoAsignado = "No asignado"
	GrupoSinAsignar   = "Sin grupo"
)

// Curso es una asignatura visible de una carrera, enriquecida con su docente
// representativo, grupo y estado de configuración de asistencias.
type Curso struct {
	ID           int    `json:"id"`
	Nombre       string `json:"nombre"`
	Clave        string `json:"clave"`
	Grupo        string `json:"grupo"`
	Docente      string `json:"docente"`
	DocenteEmail string `json:"docenteEmail"`
	Estado       string `json:"estado"`
}

// AsistenciaConfig indica si un curso tiene registro de asistencias creado.
type AsistenciaConfig struct {
	CursoID     int  `json:"cursoId"`
	Configurado bool `json:"configurado"`
}
