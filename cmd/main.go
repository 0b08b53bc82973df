package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"goinvest/config"
	"goinvest/internal/domain"
	"goinvest/internal/pkg/cache"
	"goinvest/internal/pkg/database"
	"goinvest/internal/pkg/logger"
	"goinvest/internal/pkg/metrics"
	"goinvest/internal/pkg/validator"

	// Camadas de Investimento para Injeção de Dependências
	"goinvest/internal/api/investment"            // Handlers
	"goinvest/internal/api/router"                // Roteador central
	"goinvest/internal/repository/investmentrepo" // Acesso a Dados
	"goinvest/internal/service/investmentservice" // Lógica de Negócio
)

func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço GoInvest...")
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "driver": cfg.DatabaseDriver()})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (MongoDB, PostgreSQL ou memória)
	repo, closeDB := openRepository(cfg, log)
	defer closeDB()

	// B. Cache (Redis), opcional
	var cacheClient cache.Client
	if cfg.RedisAddr != "" {
		redisClient := cache.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
		if err := redisClient.Ping(ctx); err != nil {
			log.Warn("Redis indisponível na inicialização; o cache será ignorado até a conexão voltar.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		} else {
			log.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
		}
		cancel()

		cacheClient = redisClient
		repo = investmentrepo.NewCachedRepository(repo, cacheClient, cfg.CacheTTL, log)
		log.Debug("Cache de listagem habilitado.", map[string]interface{}{"ttl": cfg.CacheTTL.String()})
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	investmentSvc := investmentservice.NewService(repo, validator.New(), log)
	log.Debug("Serviço de Investimento inicializado.", nil)

	investmentHandler := investment.NewHandler(investmentSvc, log)
	log.Debug("Handler de Investimento inicializado.", nil)

	// 4. Configuração e Início do Roteador/Servidor
	opts := router.Options{
		Logger:         log,
		Metrics:        metrics.New(),
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.RateLimitEnabled() {
		opts.RateLimitCache = cacheClient
		opts.RateLimitMax = cfg.RateLimitMaxRequests
		opts.RateLimitWindow = cfg.RateLimitPeriod
		log.Info("Rate limiting habilitado.", map[string]interface{}{"max": cfg.RateLimitMaxRequests, "window": cfg.RateLimitPeriod.String()})
	}
	r := router.NewRouter(investmentHandler, opts)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor GoInvest ouvindo na porta", map[string]interface{}{"port": cfg.Port, "docs": "/api-docs/index.html"})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}

// openRepository escolhe a persistência pelo esquema de DATABASE_URL.
// Falhas de conexão não derrubam o processo: o servidor sobe e as operações
// respondem com erro interno até o banco ficar disponível.
func openRepository(cfg *config.Config, log logger.Logger) (domain.InvestmentRepository, func()) {
	ctx := context.Background()

	switch cfg.DatabaseDriver() {
	case config.DriverMongo:
		client, err := database.NewMongoClient(ctx, cfg.DatabaseURL, cfg.DBTimeout)
		if err != nil {
			log.Error("Falha ao configurar cliente MongoDB.", err)
			return investmentrepo.NewUnavailableRepository(err), func() {}
		}
		if err := database.PingMongo(ctx, client, cfg.DBTimeout); err != nil {
			log.Error("MongoDB indisponível na inicialização; seguindo sem conexão confirmada.", err)
		} else {
			log.Info("Conexão MongoDB estabelecida.", map[string]interface{}{"database": cfg.DatabaseName})
		}
		repo := investmentrepo.NewMongoRepository(client.Database(cfg.DatabaseName), cfg.DBTimeout, log)
		return repo, func() {
			dctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				log.Error("Falha ao desconectar do MongoDB.", err)
			}
		}

	case config.DriverPostgres:
		db, err := database.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			log.Error("Falha ao configurar pool PostgreSQL.", err)
			return investmentrepo.NewUnavailableRepository(err), func() {}
		}
		if err := database.PingPostgres(ctx, db, cfg.DBTimeout); err != nil {
			log.Error("PostgreSQL indisponível na inicialização; seguindo sem conexão confirmada.", err)
		} else {
			log.Info("Conexão PostgreSQL estabelecida.", nil)
			if cfg.DBAutoMigrate {
				if err := database.Migrate(db, "up"); err != nil {
					log.Error("Falha ao aplicar migrations.", err)
				} else {
					log.Info("Migrations aplicadas.", nil)
				}
			}
		}
		return investmentrepo.NewPostgresRepository(db, cfg.DBTimeout, log), func() { db.Close() }

	case config.DriverMemory:
		log.Warn("Usando persistência em memória; os dados serão perdidos ao encerrar.", nil)
		return investmentrepo.NewMemoryRepository(), func() {}

	default:
		err := errors.New("esquema de DATABASE_URL não suportado")
		log.Error("Banco de dados não configurado.", err)
		return investmentrepo.NewUnavailableRepository(err), func() {}
	}
}
