package service

import (
	"context"

	"asistencia_dashboard_backend/internal/model"
	"asistencia_dashboard_backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

// Vistas mínimas sobre los repositorios que consume el servicio; los tipos
// de internal/repository las satisfacen.
type carreraCatalogo interface {
	ListCarreras(ctx context.Context) ([]model.Carrera, error)
}

type cursoCatalogo interface {
	ListCursos(ctx context.Context, carreraID int) ([]repository.CursoRow, error)
	CandidatosDocente(ctx context.Context, cursoID int) ([]repository.DocenteRow, error)
	GrupoDeCurso(ctx context.Context, cursoID int) (string, error)
	TieneAsistencia(ctx context.Context, cursoID int) (bool, error)
}

type docenteCatalogo interface {
	ListDocentes(ctx context.Context) ([]repository.DocenteCursosRow, error)
}

type CatalogoService struct {
	CarreraRepo carreraCatalogo
	CursoRepo   cursoCatalogo
	DocenteRepo docenteCatalogo
}

func NewCatalogoService(
	carreraRepo carreraCatalogo,
	cursoRepo cursoCatalogo,
	docenteRepo docenteCatalogo,
) *CatalogoService {
	return &CatalogoService{
		CarreraRepo: carreraRepo,
		CursoRepo:   cursoRepo,
		DocenteRepo: docenteRepo,
	}
}

func (s *CatalogoService) Carreras(ctx context.Context) ([]model.Carrera, error) {
	return s.CarreraRepo.ListCarreras(ctx)
}

// Cursos lista los cursos visibles de la carrera y los enriquece con docente,
// grupo y estado de configuración. Las sub-consultas de cada curso son
// independientes, así que se resuelven en paralelo escribiendo en la posición
// del curso para conservar el orden por nombre.
func (s *CatalogoService) Cursos(ctx context.Context, carreraID int) ([]model.Curso, error) {
	base, err := s.CursoRepo.ListCursos(ctx, carreraID)
	if err != nil {
		return nil, err
	}

	cursos := make([]model.Curso, len(base))
	g, gctx := errgroup.WithContext(ctx)
	for i, row := range base {
		i, row := i, row
		g.Go(func() error {
			curso, err := s.enriquecerCurso(gctx, row)
			if err != nil {
				return err
			}
			cursos[i] = curso
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cursos, nil
}

func (s *CatalogoService) enriquecerCurso(ctx context.Context, row repository.CursoRow) (model.Curso, error) {
	curso := model.Curso{
		ID:      row.ID,
		Nombre:  row.Fullname,
		Clave:   row.Shortname,
		Grupo:   model.GrupoSinAsignar,
		Docente: model.DocenteNoAsignado,
		Estado:  model.ConfigPendiente,
	}

	candidatos, err := s.CursoRepo.CandidatosDocente(ctx, row.ID)
	if err != nil {
		return model.Curso{}, err
	}
	if doc := elegirDocente(candidatos); doc != nil {
		curso.Docente = doc.Firstname + " " + doc.Lastname
		curso.DocenteEmail = doc.Email
	}

	grupo, err := s.CursoRepo.GrupoDeCurso(ctx, row.ID)
	if err != nil {
		return model.Curso{}, err
	}
	if grupo != "" {
		curso.Grupo = grupo
	}

	configurado, err := s.CursoRepo.TieneAsistencia(ctx, row.ID)
	if err != nil {
		return model.Curso{}, err
	}
	if configurado {
		curso.Estado = model.ConfigConfigurado
	}

	return curso, nil
}

// elegirDocente toma el primer candidato (ya ordenado por prioridad de rol e
// id) que pase la política de username institucional.
func elegirDocente(candidatos []repository.DocenteRow) *repository.DocenteRow {
	for i := range candidatos {
		if model.EsUsernameInstitucional(candidatos[i].Username) {
			return &candidatos[i]
		}
	}
	return nil
}

func (s *CatalogoService) Docentes(ctx context.Context) ([]model.Docente, error) {
	rows, err := s.DocenteRepo.ListDocentes(ctx)
	if err != nil {
		return nil, err
	}

	docentes := make([]model.Docente, 0, len(rows))
	for _, row := range rows {
		if !model.EsUsernameInstitucional(row.Username) {
			continue
		}
		docentes = append(docentes, model.Docente{
			ID:          row.ID,
			Nombre:      row.Firstname + " " + row.Lastname,
			Username:    row.Username,
			Email:       row.Email,
			CursosCount: row.CursosCount,
		})
	}
	return docentes, nil
}

func (s *CatalogoService) AsistenciaConfig(ctx context.Context, cursoID int) (model.AsistenciaConfig, error) {
	configurado, err := s.CursoRepo.TieneAsistencia(ctx, cursoID)
	if err != nil {
		return model.AsistenciaConfig{}, err
	}
	return model.AsistenciaConfig{CursoID: cursoID, Configurado: configurado}, nil
}
