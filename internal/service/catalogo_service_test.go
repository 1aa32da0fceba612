package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"asistencia_dashboard_backend/internal/model"
	"asistencia_dashboard_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCursoRepo responde con datos fijos por curso; demora permite retrasar
// el enriquecimiento de un curso concreto para que termine fuera de orden.
type stubCursoRepo struct {
	cursos     []repository.CursoRow
	candidatos map[int][]repository.DocenteRow
	grupos     map[int]string
	asistencia map[int]bool
	errGrupo   map[int]error
	demora     map[int]time.Duration
}

func (s *stubCursoRepo) ListCursos(_ context.Context, _ int) ([]repository.CursoRow, error) {
	return s.cursos, nil
}

func (s *stubCursoRepo) CandidatosDocente(_ context.Context, cursoID int) ([]repository.DocenteRow, error) {
	if d := s.demora[cursoID]; d > 0 {
		time.Sleep(d)
	}
	return s.candidatos[cursoID], nil
}

func (s *stubCursoRepo) GrupoDeCurso(_ context.Context, cursoID int) (string, error) {
	if err := s.errGrupo[cursoID]; err != nil {
		return "", err
	}
	return s.grupos[cursoID], nil
}

func (s *stubCursoRepo) TieneAsistencia(_ context.Context, cursoID int) (bool, error) {
	return s.asistencia[cursoID], nil
}

func TestCursosConservaOrdenConEnriquecimientoParalelo(t *testing.T) {
	repo := &stubCursoRepo{
		cursos: []repository.CursoRow{
			{ID: 1, Fullname: "Álgebra Lineal", Shortname: "ACF-0903"},
			{ID: 2, Fullname: "Cálculo Diferencial", Shortname: "ACF-0901"},
			{ID: 3, Fullname: "Química", Shortname: "AEF-1065"},
		},
		grupos: map[int]string{1: "ISC-1A", 2: "ISC-1B", 3: "ISC-1C"},
		// El primer curso termina al último; el orden del resultado no
		// debe depender del orden de término.
		demora:     map[int]time.Duration{1: 30 * time.Millisecond},
		asistencia: map[int]bool{1: true},
	}
	s := NewCatalogoService(nil, repo, nil)

	cursos, err := s.Cursos(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, cursos, 3)
	assert.Equal(t, []string{"Álgebra Lineal", "Cálculo Diferencial", "Química"},
		[]string{cursos[0].Nombre, cursos[1].Nombre, cursos[2].Nombre})
	// Cada posición conserva los datos de su propio curso.
	assert.Equal(t, "ISC-1A", cursos[0].Grupo)
	assert.Equal(t, "ISC-1B", cursos[1].Grupo)
	assert.Equal(t, "ISC-1C", cursos[2].Grupo)
	assert.Equal(t, model.ConfigConfigurado, cursos[0].Estado)
	assert.Equal(t, model.ConfigPendiente, cursos[1].Estado)
}

func TestCursosPropagaErrorDeUnCurso(t *testing.T) {
	errDB := errors.New("conexión perdida")
	repo := &stubCursoRepo{
		cursos: []repository.CursoRow{
			{ID: 1, Fullname: "Álgebra Lineal"},
			{ID: 2, Fullname: "Cálculo Diferencial"},
		},
		errGrupo: map[int]error{2: errDB},
	}
	s := NewCatalogoService(nil, repo, nil)

	cursos, err := s.Cursos(context.Background(), 7)

	assert.ErrorIs(t, err, errDB)
	assert.Nil(t, cursos)
}

func TestCursosCentinelasYPoliticaDeDocente(t *testing.T) {
	repo := &stubCursoRepo{
		cursos: []repository.CursoRow{
			{ID: 1, Fullname: "Álgebra Lineal", Shortname: "ACF-0903"},
			{ID: 2, Fullname: "Cálculo Diferencial", Shortname: "ACF-0901"},
		},
		candidatos: map[int][]repository.DocenteRow{
			// El primer candidato tiene username puramente numérico
			// (cuenta de alumno con rol mal asignado); se salta.
			2: {
				{ID: 9, Firstname: "Juan", Lastname: "Pérez", Username: "20230045"},
				{ID: 10, Firstname: "María", Lastname: "López", Username: "mlopez", Email: "mlopez@tecnm.mx"},
			},
		},
		grupos: map[int]string{2: "ISC-1B"},
	}
	s := NewCatalogoService(nil, repo, nil)

	cursos, err := s.Cursos(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, cursos, 2)

	// Sin candidatos ni grupo ni asistencias: puros centinelas.
	assert.Equal(t, model.DocenteNoAsignado, cursos[0].Docente)
	assert.Empty(t, cursos[0].DocenteEmail)
	assert.Equal(t, model.GrupoSinAsignar, cursos[0].Grupo)
	assert.Equal(t, model.ConfigPendiente, cursos[0].Estado)

	assert.Equal(t, "María López", cursos[1].Docente)
	assert.Equal(t, "mlopez@tecnm.mx", cursos[1].DocenteEmail)
	assert.Equal(t, "ISC-1B", cursos[1].Grupo)
}
