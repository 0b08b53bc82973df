package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config armazena todas as configurações do serviço GoInvest.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (MongoDB ou PostgreSQL, escolhido pelo esquema da URL)
	DatabaseURL   string
	DatabaseName  string
	DBTimeout     time.Duration
	DBAutoMigrate bool

	// Cache (Redis). Endereço vazio desliga o cache e o rate limiting.
	RedisAddr string
	CacheTTL  time.Duration

	// Rate Limiting (0 = desligado)
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// CORS
	CORSAllowedOrigins []string
}

// Esquemas aceitos em DATABASE_URL
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	databaseURL := getEnv("DATABASE_URL", "mongodb://localhost:27017/investments")

	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Banco de Dados
		DatabaseURL:   databaseURL,
		DatabaseName:  getEnv("DB_NAME", databaseNameFromURL(databaseURL)),
		DBTimeout:     getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second, // 5s padrão
		DBAutoMigrate: getBoolEnv("DB_AUTO_MIGRATE", false),

		// 3. Cache (Redis)
		RedisAddr: getEnv("REDIS_ADDR", ""),
		CacheTTL:  getDurationEnv("CACHE_TTL_SEC", 60) * time.Second, // 60s padrão

		// 4. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 0),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute, // 1 min padrão

		// 5. CORS
		CORSAllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	return cfg
}

// DatabaseDriver identifica o backend de persistência pelo esquema de DatabaseURL.
// Devolve string vazia para esquemas não suportados.
func (c *Config) DatabaseDriver() string {
	switch {
	case strings.HasPrefix(c.DatabaseURL, "mongodb://"), strings.HasPrefix(c.DatabaseURL, "mongodb+srv://"):
		return DriverMongo
	case strings.HasPrefix(c.DatabaseURL, "postgres://"), strings.HasPrefix(c.DatabaseURL, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(c.DatabaseURL, "memory://"):
		return DriverMemory
	default:
		return ""
	}
}

// RateLimitEnabled indica se o rate limiting por IP deve ser montado no roteador.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitMaxRequests > 0 && c.RedisAddr != ""
}

// Funções Helpers (Auxiliares)

// databaseNameFromURL extrai o nome do banco do caminho da URL (mongodb://host/<nome>).
func databaseNameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "investments"
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return "investments"
	}
	return name
}

// getEnv lê a variável de ambiente ou retorna um valor padrão.
// Variáveis definidas com valor vazio são tratadas como ausentes.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getBoolEnv lê uma variável de ambiente booleana (true/false, 1/0).
func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um booleano válido. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getListEnv lê uma lista separada por vírgulas.
func getListEnv(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
