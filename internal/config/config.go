package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	JWTSecret  string
	DataDir    string
	BackupDir  string
	BackupKeep int
	LogLevel   string
}

func Load() *Config {
	// .env é opcional; variáveis de ambiente têm prioridade
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "chave-super-secreta-123"),
		DataDir:    getEnv("DATA_DIR", "dados"),
		BackupDir:  getEnv("BACKUP_DIR", "backups"),
		BackupKeep: getEnvInt("BACKUP_KEEP", 5),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
