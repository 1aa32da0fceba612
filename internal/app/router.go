package app

import (
	"asistencia_dashboard_backend/docs"
	"asistencia_dashboard_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// Punto único de consulta del tablero. Se registra para todos los métodos:
	// OPTIONS lo resuelve el middleware CORS y el controlador responde 405 a
	// todo lo que no sea GET.
	router.Any("/moodle-data", c.moodleData.Handle)
}
