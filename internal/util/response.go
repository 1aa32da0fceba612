package util

import (
	"net/http"

	"asistencia_dashboard_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse es el sobre de error que consume el front-end; el mensaje se
// muestra tal cual en un banner.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func ErrorWithDetails(c *gin.Context, code int, message, details string) {
	c.JSON(code, ErrorResponse{Error: message, Details: details})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func MethodNotAllowed(c *gin.Context, message string) {
	Error(c, http.StatusMethodNotAllowed, message)
}

// DataSourceFailure registra el error completo del driver y lo reporta como
// 500 con el mensaje subyacente en details.
func DataSourceFailure(c *gin.Context, err error) {
	logger.Log.Error("fallo de la fuente de datos", zap.Error(err))
	ErrorWithDetails(c, http.StatusInternalServerError, err.Error(), err.Error())
}
