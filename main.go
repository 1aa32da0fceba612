// @title API de asistencias y alerta temprana
// @version 1.0
// @description Servicio de sólo lectura que agrega la asistencia del LMS institucional para el tablero de indicadores académicos.

// @host localhost:8080
// @BasePath /

package main

import (
	"log"

	"asistencia_dashboard_backend/internal/app"
	"asistencia_dashboard_backend/internal/config"
	"asistencia_dashboard_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("No se pudo cargar la configuración: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
