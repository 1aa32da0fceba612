package model

// SegmentoGrafica es una rebanada de pastel lista para dibujar: porcentaje
// sobre el total y ángulos en grados (sobre 360) con inicio acumulado, en
// orden determinista para que el trazo sea reproducible.
type SegmentoGrafica struct {
	Etiqueta     string  `json:"etiqueta"`
	Color        string  `json:"color"`
	Valor        int64   `json:"valor"`
	Porcentaje   float64 `json:"porcentaje"`
	Grados       float64 `json:"grados"`
	GradosInicio float64 `json:"gradosInicio"`
}

// AsignaturaResumen es el desglose de asistencia de un curso dentro de una
// carrera.
type AsignaturaResumen struct {
	CursoID          int    `json:"cursoId"`
	Nombre           string `json:"nombre"`
	Clave            string `json:"clave"`
	Grupo            string `json:"grupo"`
	Docente          string `json:"docente"`
	TotalEstudiantes int64  `json:"totalEstudiantes"`
	Presentes        int64  `json:"presentes"`
	Ausentes         int64  `json:"ausentes"`
	Pendientes       int64  `json:"pendientes"`

	BalanceChart []SegmentoGrafica `json:"balanceChart"`
}

// CarreraResumen agrega sesiones y asistencias de todos los cursos visibles
// de una carrera. Invariante: registradas + pendientes + futuras == total.
type CarreraResumen struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`

	TotalSesiones       int64 `json:"totalSesiones"`
	SesionesRegistradas int64 `json:"sesionesRegistradas"`
	SesionesPendientes  int64 `json:"sesionesPendientes"`
	SesionesFuturas     int64 `json:"sesionesFuturas"`

	// TotalEstudiantes es |estudiantes distintos inscritos en la carrera|,
	// nunca la suma por curso: un alumno inscrito en varios cursos cuenta una
	// sola vez.
	TotalEstudiantes int64 `json:"totalEstudiantes"`
	TotalPresentes   int64 `json:"totalPresentes"`
	TotalAusentes    int64 `json:"totalAusentes"`
	TotalPendientes  int64 `json:"totalPendientes"`

	Asignaturas []AsignaturaResumen `json:"asignaturas"`

	SeguimientoChart []SegmentoGrafica `json:"seguimientoChart"`
	BalanceChart     []SegmentoGrafica `json:"balanceChart"`
}

// ResumenGeneral es el acumulado lineal del instituto: las carreras son
// disjuntas, así que la suma directa no duplica.
type ResumenGeneral struct {
	TotalCarreras       int   `json:"totalCarreras"`
	TotalSesiones       int64 `json:"totalSesiones"`
	SesionesRegistradas int64 `json:"sesionesRegistradas"`
	SesionesPendientes  int64 `json:"sesionesPendientes"`
	SesionesFuturas     int64 `json:"sesionesFuturas"`
	TotalEstudiantes    int64 `json:"totalEstudiantes"`
	TotalPresentes      int64 `json:"totalPresentes"`
	TotalAusentes       int64 `json:"totalAusentes"`
	TotalPendientes     int64 `json:"totalPendientes"`

	SeguimientoChart []SegmentoGrafica `json:"seguimientoChart"`
	BalanceChart     []SegmentoGrafica `json:"balanceChart"`
}
