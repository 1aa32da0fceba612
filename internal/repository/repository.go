package repository

import (
	"context"

	"asistencia_dashboard_backend/internal/util"
	"asistencia_dashboard_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// Todas las consultas son de sólo lectura contra el esquema tecnm_* del LMS.
// Un fallo del backend aborta la petición completa; nunca se devuelven
// resultados parciales.

// scanRaw ejecuta una consulta cruda, registra la métrica por operación y
// envuelve cualquier fallo como DataSourceError.
func scanRaw(ctx context.Context, db *gorm.DB, op string, dest interface{}, sql string, args ...interface{}) error {
	err := db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error
	monitoring.ObserveQuery(op, err)
	return util.WrapDataSourceError(op, err)
}

// condAusente filtra registros de falta por atributo simbólico del estatus,
// no por id numérico: instalaciones distintas usan ids distintos para el
// mismo estatus semántico.
const condAusente = "(ats.acronym = 'A' OR ats.description LIKE '%Ausente%')"
