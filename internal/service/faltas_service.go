package service

import (
	"context"
	"sort"

	"asistencia_dashboard_backend/internal/model"
	"asistencia_dashboard_backend/internal/repository"
)

// MatriculaNoDisponible se emite cuando la cuenta no tiene matrícula cargada.
const MatriculaNoDisponible = "N/A"

type FaltasService struct {
	EstudianteRepo *repository.EstudianteRepository
}

func NewFaltasService(estudianteRepo *repository.EstudianteRepository) *FaltasService {
	return &FaltasService{EstudianteRepo: estudianteRepo}
}

// EstudiantesConFaltas lista los estudiantes de la carrera con al menos un
// día de falta, ordenados por días de falta descendente y nombre. Política
// canónica de conteo: días calendario distintos, no sesiones sueltas.
func (s *FaltasService) EstudiantesConFaltas(ctx context.Context, carreraID int) ([]model.EstudianteFaltas, error) {
	rows, err := s.EstudianteRepo.FaltasPorCarrera(ctx, carreraID)
	if err != nil {
		return nil, err
	}

	estudiantes := make([]model.EstudianteFaltas, 0, len(rows))
	for _, row := range rows {
		matricula := row.Matricula
		if matricula == "" {
			matricula = MatriculaNoDisponible
		}
		estudiantes = append(estudiantes, model.EstudianteFaltas{
			ID:         row.ID,
			Nombre:     row.Nombre,
			Matricula:  matricula,
			Email:      row.Email,
			DiasFaltas: row.DiasFaltas,
		})
	}
	return estudiantes, nil
}

// DetalleEstudiante arma el desglose por día de las faltas de un estudiante
// en la carrera. Un estudiante sin matrícula activa produce un detalle vacío,
// no un error.
func (s *FaltasService) DetalleEstudiante(ctx context.Context, estudianteID, carreraID int) (*model.EstudianteDetalle, error) {
	info, err := s.EstudianteRepo.InfoEstudiante(ctx, estudianteID, carreraID)
	if err != nil {
		return nil, err
	}
	if info.ID == 0 {
		return &model.EstudianteDetalle{
			ID:           estudianteID,
			Matricula:    MatriculaNoDisponible,
			DesgloseDias: []model.DiaFaltas{},
		}, nil
	}

	faltas, err := s.EstudianteRepo.FaltasDetalle(ctx, estudianteID, carreraID)
	if err != nil {
		return nil, err
	}

	desglose := agruparFaltasPorDia(faltas)

	matricula := info.Matricula
	if matricula == "" {
		matricula = MatriculaNoDisponible
	}

	return &model.EstudianteDetalle{
		ID:         info.ID,
		Nombre:     info.Nombre,
		Matricula:  matricula,
		Email:      info.Email,
		Carrera:    info.Carrera,
		DiasFaltas: len(desglose),
		// diasFaltas == len(desgloseDias) por construcción: un día cuenta una
		// vez aunque tenga varias sesiones con falta.
		DesgloseDias: desglose,
	}, nil
}

// agruparFaltasPorDia colapsa faltas individuales en un grupo por fecha,
// fechas más recientes primero.
func agruparFaltasPorDia(faltas []repository.FaltaDetalleRow) []model.DiaFaltas {
	porDia := make(map[string][]model.FaltaCurso)
	for _, falta := range faltas {
		curso := model.FaltaCurso{
			Curso:   falta.Curso,
			CursoID: falta.CursoID,
			Docente: model.DocenteNoAsignado,
		}
		if falta.Docente.Valid && falta.Docente.String != "" {
			curso.Docente = falta.Docente.String
		}
		porDia[falta.Fecha] = append(porDia[falta.Fecha], curso)
	}

	desglose := make([]model.DiaFaltas, 0, len(porDia))
	for fecha, cursos := range porDia {
		desglose = append(desglose, model.DiaFaltas{Fecha: fecha, Cursos: cursos})
	}
	sort.Slice(desglose, func(i, j int) bool {
		return desglose[i].Fecha > desglose[j].Fecha
	})
	return desglose
}
