package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "goinvest/docs" // Documentação Swagger gerada
	"goinvest/internal/api/investment"
	"goinvest/internal/pkg/cache"
	"goinvest/internal/pkg/logger"
	"goinvest/internal/pkg/metrics"
	appmw "goinvest/internal/pkg/middleware"
)

// Options reúne as dependências opcionais do roteador.
type Options struct {
	Logger         logger.Logger
	Metrics        *metrics.Metrics
	AllowedOrigins []string

	// RateLimitCache habilita o rate limiter quando não nulo e RateLimitMax > 0.
	RateLimitCache  cache.Client
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(investmentHandler *investment.Handler, opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	// --- 1. Middlewares globais ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmw.RequestLogger(opts.Logger))
	r.Use(middleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Instrument)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-RateLimit-Remaining"},
		MaxAge:         300,
	}))

	// --- 2. Rotas de infraestrutura ---
	r.Get("/ping", PingHandler)
	r.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	// --- 3. Rotas do módulo de Investimentos ---
	r.Route("/api", func(r chi.Router) {
		if opts.RateLimitCache != nil && opts.RateLimitMax > 0 {
			r.Use(appmw.RateLimiter(opts.RateLimitCache, opts.RateLimitMax, opts.RateLimitWindow, opts.Logger))
		}

		r.Post("/investments", investmentHandler.CreateInvestmentHandler)
		r.Get("/investments", investmentHandler.ListInvestmentsHandler)
		r.Put("/investments/{id}", investmentHandler.UpdateInvestmentHandler)
		r.Delete("/investments/{id}", investmentHandler.DeleteInvestmentHandler)
	})

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
