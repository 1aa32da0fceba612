package service

import (
	"context"
	"time"

	"asistencia_dashboard_backend/internal/model"
	"asistencia_dashboard_backend/internal/repository"
	"asistencia_dashboard_backend/internal/util"
)

type AsistenciaService struct {
	AsistenciaRepo *repository.AsistenciaRepository
}

func NewAsistenciaService(asistenciaRepo *repository.AsistenciaRepository) *AsistenciaService {
	return &AsistenciaService{AsistenciaRepo: asistenciaRepo}
}

// SesionesPorCarrera devuelve todas las sesiones de los cursos visibles de la
// carrera, clasificadas contra el reloj al momento de la petición.
func (s *AsistenciaService) SesionesPorCarrera(ctx context.Context, carreraID int) ([]model.SesionAsistencia, error) {
	rows, err := s.AsistenciaRepo.SesionesPorCarrera(ctx, carreraID)
	if err != nil {
		return nil, err
	}
	return mapSesiones(rows, time.Now()), nil
}

func mapSesiones(rows []repository.SesionRow, now time.Time) []model.SesionAsistencia {
	sesiones := make([]model.SesionAsistencia, 0, len(rows))
	for _, row := range rows {
		sesion := model.SesionAsistencia{
			CursoID:                row.CursoID,
			CursoNombre:            row.CursoNombre,
			ClaveAsignatura:        row.Clave,
			GrupoNombre:            model.GrupoSinAsignar,
			Docente:                model.DocenteNoAsignado,
			SesionID:               row.SesionID,
			Fecha:                  time.Unix(row.Sessdate, 0).UTC().Format(util.DateFormat),
			AsistenciasRegistradas: row.AsistenciasRegistradas,
			Estado:                 model.ClasificarSesion(row.Sessdate, row.AsistenciasRegistradas, now),
		}
		if row.GrupoNombre.Valid && row.GrupoNombre.String != "" {
			sesion.GrupoNombre = row.GrupoNombre.String
		}
		if row.Docente.Valid && row.Docente.String != "" {
			sesion.Docente = row.Docente.String
		}
		sesiones = append(sesiones, sesion)
	}
	return sesiones
}
