package model

import "time"

// EstadoSesion clasifica una sesión de asistencia frente al reloj actual.
type EstadoSesion string

const (
	SesionCompletada EstadoSesion = "completado"
	SesionPendiente  EstadoSesion = "pendiente"
	SesionFutura     EstadoSesion = "futuro"
)

// ClasificarSesion es una función pura de (fecha programada, registros, ahora).
// Orden de evaluación fijo: futura si la sesión aún no llega (estricto, una
// sesión programada exactamente ahora no es futura); completada si hay al
// menos un registro; pendiente en otro caso. Una sesión pasada sin registros
// es pendiente, no un error: el docente todavía no pasa lista.
func ClasificarSesion(sessdateEpoch int64, registros int64, now time.Time) EstadoSesion {
	if sessdateEpoch*1000 > now.UnixMilli() {
		return SesionFutura
	}
	if registros > 0 {
		return SesionCompletada
	}
	return SesionPendiente
}

// SesionAsistencia es una sesión programada de un curso con su clasificación.
type SesionAsistencia struct {
	CursoID                int          `json:"cursoId"`
	CursoNombre            string       `json:"cursoNombre"`
	GrupoNombre            string       `json:"grupoNombre"`
	ClaveAsignatura        string       `json:"claveAsignatura"`
	Docente                string       `json:"docente"`
	SesionID               int          `json:"sesionId"`
	Fecha                  string       `json:"fecha"`
	AsistenciasRegistradas int64        `json:"asistenciasRegistradas"`
	Estado                 EstadoSesion `json:"estado"`
}
