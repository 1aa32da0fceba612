package service

import (
	"database/sql"
	"testing"

	"asistencia_dashboard_backend/internal/model"
	"asistencia_dashboard_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func falta(fecha, curso string, cursoID int, docente string) repository.FaltaDetalleRow {
	row := repository.FaltaDetalleRow{Fecha: fecha, Curso: curso, CursoID: cursoID}
	if docente != "" {
		row.Docente = sql.NullString{String: docente, Valid: true}
	}
	return row
}

func TestAgruparFaltasDiasDistintos(t *testing.T) {
	// Faltas en dos días diferentes: dos días de falta.
	faltas := []repository.FaltaDetalleRow{
		falta("2026-03-09", "Base de Datos", 2, "María López"),
		falta("2026-03-06", "Base de Datos", 2, "María López"),
	}

	desglose := agruparFaltasPorDia(faltas)

	require.Len(t, desglose, 2)
	assert.Equal(t, "2026-03-09", desglose[0].Fecha)
	assert.Equal(t, "2026-03-06", desglose[1].Fecha)
}

func TestAgruparFaltasMismoDia(t *testing.T) {
	// Dos sesiones con falta el mismo día cuentan un solo día, con ambos
	// cursos en el desglose. Esto distingue la política de días distintos de
	// la de sesiones sueltas.
	faltas := []repository.FaltaDetalleRow{
		falta("2026-03-09", "Programación Orientada a Objetos", 1, "Juan Pérez"),
		falta("2026-03-09", "Base de Datos", 2, "María López"),
	}

	desglose := agruparFaltasPorDia(faltas)

	require.Len(t, desglose, 1)
	assert.Equal(t, "2026-03-09", desglose[0].Fecha)
	require.Len(t, desglose[0].Cursos, 2)
	assert.Equal(t, "Programación Orientada a Objetos", desglose[0].Cursos[0].Curso)
	assert.Equal(t, "Base de Datos", desglose[0].Cursos[1].Curso)
}

func TestAgruparFaltasOrdenDescendente(t *testing.T) {
	faltas := []repository.FaltaDetalleRow{
		falta("2026-02-20", "Redes", 3, ""),
		falta("2026-03-09", "Redes", 3, ""),
		falta("2026-01-15", "Redes", 3, ""),
	}

	desglose := agruparFaltasPorDia(faltas)

	require.Len(t, desglose, 3)
	assert.Equal(t, "2026-03-09", desglose[0].Fecha)
	assert.Equal(t, "2026-02-20", desglose[1].Fecha)
	assert.Equal(t, "2026-01-15", desglose[2].Fecha)
}

func TestAgruparFaltasDocenteSinResolver(t *testing.T) {
	desglose := agruparFaltasPorDia([]repository.FaltaDetalleRow{
		falta("2026-03-09", "Redes", 3, ""),
	})

	require.Len(t, desglose, 1)
	require.Len(t, desglose[0].Cursos, 1)
	assert.Equal(t, model.DocenteNoAsignado, desglose[0].Cursos[0].Docente)
}

func TestAgruparFaltasVacio(t *testing.T) {
	assert.Empty(t, agruparFaltasPorDia(nil))
}

func TestElegirDocenteAplicaPolitica(t *testing.T) {
	candidatos := []repository.DocenteRow{
		{ID: 10, Firstname: "Alumno", Lastname: "Confundido", Username: "20231045"},
		{ID: 11, Firstname: "Juan", Lastname: "Pérez", Username: "jperez", Email: "jperez@tec.mx"},
	}

	doc := elegirDocente(candidatos)

	// El primer candidato tiene matrícula numérica (rol mal asignado); se
	// salta y gana el siguiente.
	require.NotNil(t, doc)
	assert.Equal(t, 11, doc.ID)
}

func TestElegirDocenteSinCandidatosValidos(t *testing.T) {
	candidatos := []repository.DocenteRow{
		{ID: 10, Username: "20231045"},
	}

	assert.Nil(t, elegirDocente(candidatos))
	assert.Nil(t, elegirDocente(nil))
}
