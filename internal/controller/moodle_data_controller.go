package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"asistencia_dashboard_backend/internal/service"
	"asistencia_dashboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// Nombres de parámetros de consulta por acción.
const (
	paramCarreraID    = "carrera_id"
	paramCursoID      = "curso_id"
	paramEstudianteID = "estudiante_id"
)

type MoodleDataController struct {
	Catalogo   *service.CatalogoService
	Asistencia *service.AsistenciaService
	Faltas     *service.FaltasService
	Resumen    *service.ResumenService

	// Nanosegundos; atómico para poder recargarlo en caliente mientras se
	// atienden peticiones.
	queryTimeout atomic.Int64

	acciones     map[string]accion
	listaValidas string
}

// accion declara sus parámetros requeridos para que la validación sea
// uniforme en lugar de repetirse por rama.
type accion struct {
	params  []string
	handler func(ctx context.Context, ids map[string]int) (interface{}, error)
}

func NewMoodleDataController(
	catalogo *service.CatalogoService,
	asistencia *service.AsistenciaService,
	faltas *service.FaltasService,
	resumen *service.ResumenService,
	queryTimeout time.Duration,
) *MoodleDataController {
	c := &MoodleDataController{
		Catalogo:   catalogo,
		Asistencia: asistencia,
		Faltas:     faltas,
		Resumen:    resumen,
	}
	c.SetQueryTimeout(queryTimeout)

	c.acciones = map[string]accion{
		"carreras": {
			handler: func(ctx context.Context, _ map[string]int) (interface{}, error) {
				return c.Catalogo.Carreras(ctx)
			},
		},
		"cursos": {
			params: []string{paramCarreraID},
			handler: func(ctx context.Context, ids map[string]int) (interface{}, error) {
				return c.Catalogo.Cursos(ctx, ids[paramCarreraID])
			},
		},
		"docentes": {
			handler: func(ctx context.Context, _ map[string]int) (interface{}, error) {
				return c.Catalogo.Docentes(ctx)
			},
		},
		"asistencias-config": {
			params: []string{paramCursoID},
			handler: func(ctx context.Context, ids map[string]int) (interface{}, error) {
				return c.Catalogo.AsistenciaConfig(ctx, ids[paramCursoID])
			},
		},
		"sesiones-asistencia": {
			params: []string{paramCarreraID},
			handler: func(ctx context.Context, ids map[string]int) (interface{}, error) {
				return c.Asistencia.SesionesPorCarrera(ctx, ids[paramCarreraID])
			},
		},
		"estudiantes-faltas": {
			params: []string{paramCarreraID},
			handler: func(ctx context.Context, ids map[string]int) (interface{}, error) {
				return c.Faltas.EstudiantesConFaltas(ctx, ids[paramCarreraID])
			},
		},
		"estudiante-detalle": {
			params: []string{paramEstudianteID, paramCarreraID},
			handler: func(ctx context.Context, ids map[string]int) (interface{}, error) {
				return c.Faltas.DetalleEstudiante(ctx, ids[paramEstudianteID], ids[paramCarreraID])
			},
		},
		"resumen-asistencia": {
			params: []string{paramCarreraID},
			handler: func(ctx context.Context, ids map[string]int) (interface{}, error) {
				return c.Resumen.ResumenCarrera(ctx, ids[paramCarreraID])
			},
		},
		"resumen-general": {
			handler: func(ctx context.Context, _ map[string]int) (interface{}, error) {
				return c.Resumen.ResumenGeneral(ctx)
			},
		},
	}

	// Orden estable para el mensaje de acción inválida.
	c.listaValidas = strings.Join([]string{
		"carreras", "cursos", "docentes", "asistencias-config",
		"sesiones-asistencia", "estudiantes-faltas", "estudiante-detalle",
		"resumen-asistencia", "resumen-general",
	}, ", ")

	return c
}

// SetQueryTimeout aplica el plazo máximo por consulta; las peticiones en
// curso conservan el plazo con el que entraron.
func (c *MoodleDataController) SetQueryTimeout(timeout time.Duration) {
	c.queryTimeout.Store(int64(timeout))
}

// @Summary Datos de asistencia del LMS
// @Description Punto único de consulta por acción sobre la base Moodle: catálogos, sesiones, faltas y resúmenes agregados
// @Tags moodle-data
// @Produce json
// @Param action query string true "Acción a ejecutar" Enums(carreras, cursos, docentes, asistencias-config, sesiones-asistencia, estudiantes-faltas, estudiante-detalle, resumen-asistencia, resumen-general)
// @Param carrera_id query int false "Id de la carrera (categoría)"
// @Param curso_id query int false "Id del curso"
// @Param estudiante_id query int false "Id del estudiante"
// @Success 200 {object} interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 405 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /moodle-data [get]
func (c *MoodleDataController) Handle(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodGet {
		util.MethodNotAllowed(ctx, "Método no permitido. Solo GET")
		return
	}

	nombre := ctx.Query("action")
	acc, ok := c.acciones[nombre]
	if !ok {
		util.BadRequest(ctx, "Acción no válida. Opciones: "+c.listaValidas)
		return
	}

	ids, err := c.parseParams(ctx, acc.params)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	reqCtx := ctx.Request.Context()
	if timeout := time.Duration(c.queryTimeout.Load()); timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(reqCtx, timeout)
		defer cancel()
	}

	data, err := acc.handler(reqCtx, ids)
	if err != nil {
		c.responderError(ctx, err)
		return
	}
	util.Success(ctx, data)
}

func (c *MoodleDataController) parseParams(ctx *gin.Context, params []string) (map[string]int, error) {
	ids := make(map[string]int, len(params))
	for _, param := range params {
		raw := ctx.Query(param)
		if raw == "" {
			return nil, util.NewMissingParamError(param)
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, util.NewInvalidParamError(param)
		}
		ids[param] = id
	}
	return ids, nil
}

// responderError es el único punto que traduce el tipo de error a estatus
// HTTP. Los errores de validación son 400 (el original reportaba 500 para
// entradas del cliente; aquí se corrige); los fallos de la fuente de datos
// son 500 con el mensaje subyacente.
func (c *MoodleDataController) responderError(ctx *gin.Context, err error) {
	var ve *util.ValidationError
	if errors.As(err, &ve) {
		util.BadRequest(ctx, ve.Msg)
		return
	}

	var de *util.DataSourceError
	if errors.As(err, &de) {
		util.DataSourceFailure(ctx, de)
		return
	}

	util.DataSourceFailure(ctx, err)
}
