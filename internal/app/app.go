package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asistencia_dashboard_backend/internal/config"
	"asistencia_dashboard_backend/internal/controller"
	"asistencia_dashboard_backend/internal/repository"
	"asistencia_dashboard_backend/internal/service"
	"asistencia_dashboard_backend/pkg/configwatcher"
	"asistencia_dashboard_backend/pkg/database"
	"asistencia_dashboard_backend/pkg/logger"
	"asistencia_dashboard_backend/pkg/monitoring"
	"asistencia_dashboard_backend/pkg/security"
	"asistencia_dashboard_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	carrera    *repository.CarreraRepository
	curso      *repository.CursoRepository
	docente    *repository.DocenteRepository
	asistencia *repository.AsistenciaRepository
	estudiante *repository.EstudianteRepository
}

type services struct {
	catalogo   *service.CatalogoService
	asistencia *service.AsistenciaService
	faltas     *service.FaltasService
	resumen    *service.ResumenService
}

type controllers struct {
	moodleData *controller.MoodleDataController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		carrera:    repository.NewCarreraRepository(db),
		curso:      repository.NewCursoRepository(db),
		docente:    repository.NewDocenteRepository(db),
		asistencia: repository.NewAsistenciaRepository(db),
		estudiante: repository.NewEstudianteRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	return &services{
		catalogo:   service.NewCatalogoService(repos.carrera, repos.curso, repos.docente),
		asistencia: service.NewAsistenciaService(repos.asistencia),
		faltas:     service.NewFaltasService(repos.estudiante),
		resumen:    service.NewResumenService(repos.carrera, repos.asistencia),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		moodleData: controller.NewMoodleDataController(
			s.catalogo,
			s.asistencia,
			s.faltas,
			s.resumen,
			a.Config.Moodle.QueryTimeout,
		),
		health: controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) *security.VisitorLimiter {
	router.Use(security.CORS())
	router.Use(security.Secure())

	limiter := security.NewVisitorLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	)
	router.Use(limiter.Middleware())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())

	return limiter
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger inicializado")

	db, err := database.InitMoodleDB(&cfg.Moodle)
	if err != nil {
		logger.Log.Fatal("No se pudo conectar a la base Moodle", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	limiter := app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("asistencia-dashboard", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("No se pudo inicializar el trazado", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	// Recarga en caliente: sólo los valores recargables (tasa y plazo de
	// consulta); un cambio de conexión a Moodle requiere reinicio.
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		limiter.Update(
			newCfg.RateLimit.MaxRequests,
			time.Duration(newCfg.RateLimit.WindowMinutes)*time.Minute,
		)
		controllers.moodleData.SetQueryTimeout(newCfg.Moodle.QueryTimeout)
		logger.Log.Info("Configuración recargada",
			zap.Int("rate_limit_max", newCfg.RateLimit.MaxRequests),
			zap.Duration("query_timeout", newCfg.Moodle.QueryTimeout))
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Servidor escuchando en el puerto %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Apagando el servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Apagado forzado del servidor:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("No se pudo apagar el proveedor de trazado", zap.Error(err))
		}
	}

	log.Println("Servidor detenido")
}
