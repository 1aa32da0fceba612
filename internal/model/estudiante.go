package model

// EstudianteFaltas es una fila del listado de alerta temprana: estudiantes
// con al menos un día de falta en la carrera. Política canónica: se cuentan
// días calendario distintos con falta, no sesiones sueltas.
type EstudianteFaltas struct {
	ID         int    `json:"id"`
	Nombre     string `json:"nombre"`
	Matricula  string `json:"matricula"`
	Email      string `json:"email"`
	DiasFaltas int    `json:"diasFaltas"`
}

// FaltaCurso identifica el curso donde se marcó una falta en un día dado.
type FaltaCurso struct {
	Curso   string `json:"curso"`
	CursoID int    `json:"cursoId"`
	Docente string `json:"docente"`
}

// DiaFaltas agrupa las faltas de un estudiante en una fecha.
type DiaFaltas struct {
	Fecha  string       `json:"fecha"`
	Cursos []FaltaCurso `json:"cursos"`
}

// EstudianteDetalle es el desglose por día de las faltas de un estudiante.
type EstudianteDetalle struct {
	ID           int         `json:"id"`
	Nombre       string      `json:"nombre"`
	Matricula    string      `json:"matricula"`
	Email        string      `json:"email"`
	Carrera      string      `json:"carrera"`
	DiasFaltas   int         `json:"diasFaltas"`
	DesgloseDias []DiaFaltas `json:"desgloseDias"`
}
