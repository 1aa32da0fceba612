package service

import (
	"context"
	"time"

	"asistencia_dashboard_backend/internal/model"
	"asistencia_dashboard_backend/internal/repository"
)

// Colores de las rebanadas, los mismos que dibuja el tablero.
const (
	colorRegistradas = "#10b981"
	colorPendientes  = "#ef4444"
	colorFuturas     = "#9ca3af"
	colorPresentes   = "#10b981"
	colorAusentes    = "#ef4444"
	colorSinRegistro = "#fbbf24"
)

type ResumenService struct {
	CarreraRepo    *repository.CarreraRepository
	AsistenciaRepo *repository.AsistenciaRepository
}

func NewResumenService(
	carreraRepo *repository.CarreraRepository,
	asistenciaRepo *repository.AsistenciaRepository,
) *ResumenService {
	return &ResumenService{
		CarreraRepo:    carreraRepo,
		AsistenciaRepo: asistenciaRepo,
	}
}

// ResumenCarrera pliega sesiones y desgloses por curso en el resumen agregado
// de la carrera, con las dos gráficas de pastel listas para trazar.
func (s *ResumenService) ResumenCarrera(ctx context.Context, carreraID int) (*model.CarreraResumen, error) {
	carrera, err := s.CarreraRepo.GetCarrera(ctx, carreraID)
	if err != nil {
		return nil, err
	}
	sesiones, err := s.AsistenciaRepo.SesionesPorCarrera(ctx, carreraID)
	if err != nil {
		return nil, err
	}
	desglose, err := s.AsistenciaRepo.DesglosePorCurso(ctx, carreraID)
	if err != nil {
		return nil, err
	}
	estudiantes, err := s.AsistenciaRepo.EstudiantesDistintos(ctx, carreraID)
	if err != nil {
		return nil, err
	}

	return construirResumenCarrera(carrera, sesiones, desglose, estudiantes, time.Now()), nil
}

// ResumenGeneral acumula los resúmenes de todas las carreras. Las carreras
// son disjuntas, por lo que la suma directa no duplica estudiantes.
func (s *ResumenService) ResumenGeneral(ctx context.Context) (*model.ResumenGeneral, error) {
	carreras, err := s.CarreraRepo.ListCarreras(ctx)
	if err != nil {
		return nil, err
	}

	general := &model.ResumenGeneral{TotalCarreras: len(carreras)}
	for _, carrera := range carreras {
		resumen, err := s.ResumenCarrera(ctx, carrera.ID)
		if err != nil {
			return nil, err
		}
		general.TotalSesiones += resumen.TotalSesiones
		general.SesionesRegistradas += resumen.SesionesRegistradas
		general.SesionesPendientes += resumen.SesionesPendientes
		general.SesionesFuturas += resumen.SesionesFuturas
		general.TotalEstudiantes += resumen.TotalEstudiantes
		general.TotalPresentes += resumen.TotalPresentes
		general.TotalAusentes += resumen.TotalAusentes
		general.TotalPendientes += resumen.TotalPendientes
	}

	general.SeguimientoChart = graficaSeguimiento(general.SesionesRegistradas, general.SesionesPendientes, general.SesionesFuturas)
	general.BalanceChart = graficaBalance(general.TotalPresentes, general.TotalAusentes, general.TotalPendientes)
	return general, nil
}

func construirResumenCarrera(
	carrera model.Carrera,
	sesiones []repository.SesionRow,
	desglose []repository.DesgloseCursoRow,
	estudiantes int64,
	now time.Time,
) *model.CarreraResumen {
	resumen := &model.CarreraResumen{
		ID:               carrera.ID,
		Nombre:           carrera.Nombre,
		TotalEstudiantes: estudiantes,
		Asignaturas:      make([]model.AsignaturaResumen, 0, len(desglose)),
	}

	// Partición de sesiones: cada sesión cae en exactamente uno de los tres
	// estados, así que registradas + pendientes + futuras == total.
	for _, sesion := range sesiones {
		resumen.TotalSesiones++
		switch model.ClasificarSesion(sesion.Sessdate, sesion.AsistenciasRegistradas, now) {
		case model.SesionCompletada:
			resumen.SesionesRegistradas++
		case model.SesionPendiente:
			resumen.SesionesPendientes++
		case model.SesionFutura:
			resumen.SesionesFuturas++
		}
	}

	for _, curso := range desglose {
		asignatura := model.AsignaturaResumen{
			CursoID:          curso.CursoID,
			Nombre:           curso.Nombre,
			Clave:            curso.Clave,
			Grupo:            model.GrupoSinAsignar,
			Docente:          model.DocenteNoAsignado,
			TotalEstudiantes: curso.Inscritos,
			Presentes:        curso.Presentes,
			Ausentes:         curso.Ausentes,
			Pendientes:       pendientesCurso(curso),
		}
		if curso.Grupo.Valid && curso.Grupo.String != "" {
			asignatura.Grupo = curso.Grupo.String
		}
		if curso.Docente.Valid && curso.Docente.String != "" {
			asignatura.Docente = curso.Docente.String
		}
		asignatura.BalanceChart = graficaBalance(asignatura.Presentes, asignatura.Ausentes, asignatura.Pendientes)

		resumen.TotalPresentes += asignatura.Presentes
		resumen.TotalAusentes += asignatura.Ausentes
		resumen.TotalPendientes += asignatura.Pendientes
		resumen.Asignaturas = append(resumen.Asignaturas, asignatura)
	}

	resumen.SeguimientoChart = graficaSeguimiento(resumen.SesionesRegistradas, resumen.SesionesPendientes, resumen.SesionesFuturas)
	resumen.BalanceChart = graficaBalance(resumen.TotalPresentes, resumen.TotalAusentes, resumen.TotalPendientes)
	return resumen
}

// pendientesCurso deriva los registros esperados aún no tomados: inscritos
// por sesión pasada, menos lo ya registrado, acotado en cero.
func pendientesCurso(curso repository.DesgloseCursoRow) int64 {
	esperados := curso.Inscritos * curso.SesionesPasadas
	pendientes := esperados - curso.Presentes - curso.Ausentes
	if pendientes < 0 {
		return 0
	}
	return pendientes
}

// graficaSeguimiento arma las rebanadas del estado de sesiones en orden fijo:
// registradas, pendientes, futuras.
func graficaSeguimiento(registradas, pendientes, futuras int64) []model.SegmentoGrafica {
	return construirGrafica([]segmento{
		{"Registradas", colorRegistradas, registradas},
		{"Pendientes", colorPendientes, pendientes},
		{"Futuras", colorFuturas, futuras},
	})
}

// graficaBalance arma las rebanadas del balance de asistencia en orden fijo:
// presentes, ausentes, pendientes.
func graficaBalance(presentes, ausentes, pendientes int64) []model.SegmentoGrafica {
	return construirGrafica([]segmento{
		{"Presentes", colorPresentes, presentes},
		{"Ausentes", colorAusentes, ausentes},
		{"Pendientes", colorSinRegistro, pendientes},
	})
}

type segmento struct {
	etiqueta string
	color    string
	valor    int64
}

// construirGrafica convierte conteos en rebanadas con porcentaje y ángulo
// acumulado sobre 360 grados. Total cero produce rebanadas en cero, nunca
// NaN ni infinito.
func construirGrafica(segmentos []segmento) []model.SegmentoGrafica {
	var total int64
	for _, s := range segmentos {
		total += s.valor
	}

	rebanadas := make([]model.SegmentoGrafica, 0, len(segmentos))
	acumulado := 0.0
	for _, s := range segmentos {
		reb := model.SegmentoGrafica{
			Etiqueta:     s.etiqueta,
			Color:        s.color,
			Valor:        s.valor,
			GradosInicio: acumulado,
		}
		if total > 0 {
			reb.Porcentaje = float64(s.valor) / float64(total) * 100
			reb.Grados = float64(s.valor) / float64(total) * 360
		}
		acumulado += reb.Grados
		rebanadas = append(rebanadas, reb)
	}
	return rebanadas
}
