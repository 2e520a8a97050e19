package config

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	ServerAddr     string         `yaml:"serverAddr"`
	StorageConfig  StorageConfig  `yaml:"storageConfig"`
	S3Config       S3Config       `yaml:"s3Config"`
	CORS           CORSConfig     `yaml:"cors"`
}

func LoadConfig(path string) (*AppConfig, error) {
	// .env не обязателен: переменные окружения могли задать снаружи
	_ = godotenv.Load()

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	// переменные окружения имеют приоритет над config.yaml
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.DatabaseConfig.DSN = dsn
	}
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.ServerAddr = addr
	}
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		cfg.StorageConfig.UploadDir = dir
	}
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		cfg.RedisConfig.Addr = redisAddr
	}

	if cfg.StorageConfig.Backend == "" {
		cfg.StorageConfig.Backend = "disk"
	}
	if cfg.StorageConfig.UploadDir == "" {
		cfg.StorageConfig.UploadDir = "uploads"
	}

	return &cfg, nil
}

func SetupServer(serverAddress string, corsConfig *CORSConfig) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    serverAddress,
		Handler: corsHandler.Handler(router),
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
