package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	CORSOrigins       []string
	RequestTimeoutSec int
	CacheTTLSec       int
	// Pool tuning (0 = driver default)
	DBMaxConns        int
	DBMinConns        int
	DBMaxConnLifetime time.Duration
}

// Load lê a configuração das variáveis de ambiente. Um arquivo .env na raiz,
// se existir, é carregado antes (conveniência para desenvolvimento local).
func Load() *Config {
	_ = godotenv.Load()

	cors := os.Getenv("CORS_ORIGINS")
	if cors == "" {
		cors = "*"
	}
	var origins []string
	for _, o := range strings.Split(cors, ",") {
		if t := strings.TrimSpace(o); t != "" {
			origins = append(origins, t)
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		CORSOrigins:       origins,
		RequestTimeoutSec: getEnvInt("REQUEST_TIMEOUT_SEC", 10),
		CacheTTLSec:       getEnvInt("CACHE_TTL_SEC", 30),
		DBMaxConns:        getEnvInt("DB_MAX_CONNS", 0),
		DBMinConns:        getEnvInt("DB_MIN_CONNS", 0),
		DBMaxConnLifetime: time.Duration(getEnvInt("DB_MAX_CONN_LIFETIME_SEC", 0)) * time.Second,
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}
