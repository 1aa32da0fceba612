package security

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORS permisivo: el tablero se sirve desde otro origen y el front-end envía
// las cabeceras de Supabase (X-Client-Info, Apikey). OPTIONS responde 200 sin
// cuerpo.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Client-Info, Apikey")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// Secure añade cabeceras defensivas estándar.
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}

		c.Next()
	}
}

// visitor envuelve el limitador y la última actividad para poder depurar
// entradas viejas.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterConfig son los parámetros recargables del limitador.
type limiterConfig struct {
	maxRequests int
	window      time.Duration
}

// VisitorLimiter limita por IP con parámetros recargables en caliente: el
// middleware lee la configuración vigente en cada petición, así que un
// Update surte efecto sin reiniciar el servidor.
type VisitorLimiter struct {
	cfg atomic.Pointer[limiterConfig]

	mu    sync.Mutex
	store map[string]*visitor
}

func NewVisitorLimiter(maxRequests int, window time.Duration) *VisitorLimiter {
	l := &VisitorLimiter{store: make(map[string]*visitor)}
	l.Update(maxRequests, window)
	go l.depurar()
	return l
}

// Update reemplaza los parámetros y descarta los limitadores por IP
// existentes para que las siguientes peticiones usen la nueva tasa.
func (l *VisitorLimiter) Update(maxRequests int, window time.Duration) {
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	if window <= 0 {
		window = time.Minute
	}
	l.cfg.Store(&limiterConfig{maxRequests: maxRequests, window: window})

	l.mu.Lock()
	l.store = make(map[string]*visitor)
	l.mu.Unlock()
}

func (l *VisitorLimiter) depurar() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		expiry := l.cfg.Load().window * 3
		if expiry < time.Minute {
			expiry = time.Minute
		}
		l.mu.Lock()
		for ip, v := range l.store {
			if time.Since(v.lastSeen) > expiry {
				delete(l.store, ip)
			}
		}
		l.mu.Unlock()
	}
}

func (l *VisitorLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := l.cfg.Load()
		key := c.ClientIP()

		l.mu.Lock()
		v, exists := l.store[key]
		if !exists {
			r := rate.Every(cfg.window / time.Duration(cfg.maxRequests))
			v = &visitor{
				limiter: rate.NewLimiter(r, cfg.maxRequests),
			}
			l.store[key] = v
		}
		v.lastSeen = time.Now()
		l.mu.Unlock()

		if !v.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
