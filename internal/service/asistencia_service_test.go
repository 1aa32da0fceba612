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

func TestMapSesionesSinPaseDeLista(t *testing.T) {
	// Tres cursos con una sesión ayer y cero registros: tres filas, todas
	// pendientes, ninguna falla.
	ayer := ahora.Add(-24 * time.Hour)
	rows := []repository.SesionRow{
		{CursoID: 1, CursoNombre: "POO", Clave: "SCC-1023", SesionID: 10, Sessdate: ayer.Unix()},
		{CursoID: 2, CursoNombre: "Base de Datos", Clave: "SCC-1004", SesionID: 11, Sessdate: ayer.Unix()},
		{CursoID: 3, CursoNombre: "Redes", Clave: "SCC-1019", SesionID: 12, Sessdate: ayer.Unix()},
	}

	sesiones := mapSesiones(rows, ahora)

	require.Len(t, sesiones, 3)
	for _, s := range sesiones {
		assert.Equal(t, model.SesionPendiente, s.Estado)
		assert.Equal(t, int64(0), s.AsistenciasRegistradas)
		assert.Equal(t, ayer.UTC().Format("2006-01-02"), s.Fecha)
	}
}

func TestMapSesionesClasificaYFormatea(t *testing.T) {
	manana := ahora.Add(24 * time.Hour)
	rows := []repository.SesionRow{
		{
			CursoID:                1,
			CursoNombre:            "POO",
			Clave:                  "SCC-1023",
			SesionID:               10,
			Sessdate:               ahora.Add(-48 * time.Hour).Unix(),
			Docente:                sql.NullString{String: "Juan Pérez", Valid: true},
			GrupoNombre:            sql.NullString{String: "5A", Valid: true},
			AsistenciasRegistradas: 30,
		},
		{CursoID: 1, CursoNombre: "POO", Clave: "SCC-1023", SesionID: 11, Sessdate: manana.Unix()},
	}

	sesiones := mapSesiones(rows, ahora)

	require.Len(t, sesiones, 2)

	completada := sesiones[0]
	assert.Equal(t, model.SesionCompletada, completada.Estado)
	assert.Equal(t, "Juan Pérez", completada.Docente)
	assert.Equal(t, "5A", completada.GrupoNombre)
	assert.Equal(t, "SCC-1023", completada.ClaveAsignatura)

	futura := sesiones[1]
	assert.Equal(t, model.SesionFutura, futura.Estado)
	// Sin docente ni grupo resueltos se emiten los centinelas.
	assert.Equal(t, model.DocenteNoAsignado, futura.Docente)
	assert.Equal(t, model.GrupoSinAsignar, futura.GrupoNombre)
	assert.Equal(t, manana.UTC().Format("2006-01-02"), futura.Fecha)
}

func TestMapSesionesVacio(t *testing.T) {
	assert.Empty(t, mapSesiones(nil, ahora))
}
