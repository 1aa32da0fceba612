package service

import (
	"database/sql"
	"testing"
	"time"

	"asistencia_dashboard_backend/internal/model"
	"asistencia_dashboard_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ahora = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func sesion(cursoID int, cuando time.Time, registros int64) repository.SesionRow {
	return repository.SesionRow{
		CursoID:                cursoID,
		CursoNombre:            "Curso",
		SesionID:               1,
		Sessdate:               cuando.Unix(),
		AsistenciasRegistradas: registros,
	}
}

func TestConstruirResumenParticionDeSesiones(t *testing.T) {
	sesiones := []repository.SesionRow{
		sesion(1, ahora.Add(-48*time.Hour), 30), // registrada
		sesion(1, ahora.Add(-24*time.Hour), 0),  // pendiente
		sesion(2, ahora.Add(-24*time.Hour), 28), // registrada
		sesion(2, ahora.Add(24*time.Hour), 0),   // futura
		sesion(3, ahora.Add(72*time.Hour), 0),   // futura
	}

	resumen := construirResumenCarrera(model.Carrera{ID: 7, Nombre: "Sistemas"}, sesiones, nil, 120, ahora)

	assert.Equal(t, int64(5), resumen.TotalSesiones)
	assert.Equal(t, int64(2), resumen.SesionesRegistradas)
	assert.Equal(t, int64(1), resumen.SesionesPendientes)
	assert.Equal(t, int64(2), resumen.SesionesFuturas)

	// Partición exacta.
	suma := resumen.SesionesRegistradas + resumen.SesionesPendientes + resumen.SesionesFuturas
	assert.Equal(t, resumen.TotalSesiones, suma)

	assert.Equal(t, int64(120), resumen.TotalEstudiantes)
}

func TestConstruirResumenDesglosePorAsignatura(t *testing.T) {
	desglose := []repository.DesgloseCursoRow{
		{
			CursoID:         1,
			Nombre:          "Programación Orientada a Objetos",
			Clave:           "SCC-1023",
			Docente:         sql.NullString{String: "Juan Pérez García", Valid: true},
			Grupo:           sql.NullString{String: "5A", Valid: true},
			Inscritos:       35,
			SesionesPasadas: 10,
			Presentes:       280,
			Ausentes:        35,
		},
		{
			CursoID:         2,
			Nombre:          "Base de Datos",
			Clave:           "SCC-1004",
			Inscritos:       30,
			SesionesPasadas: 10,
			Presentes:       250,
			Ausentes:        30,
		},
	}

	resumen := construirResumenCarrera(model.Carrera{ID: 7, Nombre: "Sistemas"}, nil, desglose, 40, ahora)

	require.Len(t, resumen.Asignaturas, 2)

	poo := resumen.Asignaturas[0]
	assert.Equal(t, "SCC-1023", poo.Clave)
	assert.Equal(t, "Juan Pérez García", poo.Docente)
	assert.Equal(t, "5A", poo.Grupo)
	// 35 inscritos * 10 sesiones pasadas - 280 presentes - 35 ausentes
	assert.Equal(t, int64(35), poo.Pendientes)

	bd := resumen.Asignaturas[1]
	assert.Equal(t, model.DocenteNoAsignado, bd.Docente)
	assert.Equal(t, model.GrupoSinAsignar, bd.Grupo)
	assert.Equal(t, int64(20), bd.Pendientes)

	assert.Equal(t, int64(530), resumen.TotalPresentes)
	assert.Equal(t, int64(65), resumen.TotalAusentes)
	assert.Equal(t, int64(55), resumen.TotalPendientes)
}

func TestPendientesCursoNuncaNegativo(t *testing.T) {
	// Más registros que inscritos por sesión (inscripciones dadas de baja a
	// mitad de semestre) no puede producir pendientes negativos.
	curso := repository.DesgloseCursoRow{
		Inscritos:       10,
		SesionesPasadas: 2,
		Presentes:       25,
		Ausentes:        3,
	}

	assert.Equal(t, int64(0), pendientesCurso(curso))
}

func TestConstruirGraficaPorcentajesYGrados(t *testing.T) {
	rebanadas := construirGrafica([]segmento{
		{"Registradas", colorRegistradas, 95},
		{"Pendientes", colorPendientes, 25},
		{"Futuras", colorFuturas, 30},
	})

	require.Len(t, rebanadas, 3)

	// Orden determinista de las rebanadas.
	assert.Equal(t, "Registradas", rebanadas[0].Etiqueta)
	assert.Equal(t, "Pendientes", rebanadas[1].Etiqueta)
	assert.Equal(t, "Futuras", rebanadas[2].Etiqueta)

	var porcentajes, grados float64
	for _, r := range rebanadas {
		porcentajes += r.Porcentaje
		grados += r.Grados
	}
	assert.InDelta(t, 100.0, porcentajes, 1e-9)
	assert.InDelta(t, 360.0, grados, 1e-9)

	// El inicio acumulado de cada rebanada es el fin de la anterior.
	assert.Equal(t, 0.0, rebanadas[0].GradosInicio)
	assert.InDelta(t, rebanadas[0].Grados, rebanadas[1].GradosInicio, 1e-9)
	assert.InDelta(t, rebanadas[0].Grados+rebanadas[1].Grados, rebanadas[2].GradosInicio, 1e-9)
}

func TestConstruirGraficaTotalCero(t *testing.T) {
	// Carrera sin sesiones: todas las rebanadas en cero, sin NaN ni división
	// entre cero.
	rebanadas := construirGrafica([]segmento{
		{"Registradas", colorRegistradas, 0},
		{"Pendientes", colorPendientes, 0},
		{"Futuras", colorFuturas, 0},
	})

	require.Len(t, rebanadas, 3)
	for _, r := range rebanadas {
		assert.Zero(t, r.Porcentaje)
		assert.Zero(t, r.Grados)
		assert.Zero(t, r.GradosInicio)
	}
}

func TestConstruirResumenSinDatos(t *testing.T) {
	resumen := construirResumenCarrera(model.Carrera{ID: 9, Nombre: "Vacía"}, nil, nil, 0, ahora)

	assert.Zero(t, resumen.TotalSesiones)
	assert.Empty(t, resumen.Asignaturas)
	require.Len(t, resumen.SeguimientoChart, 3)
	require.Len(t, resumen.BalanceChart, 3)
	for _, r := range resumen.SeguimientoChart {
		assert.Zero(t, r.Porcentaje)
	}
}
