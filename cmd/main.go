package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docushare-server/config"
	_ "docushare-server/docs"
	"docushare-server/internal/handler"
	"docushare-server/internal/ports"
	"docushare-server/internal/repository"
	"docushare-server/internal/service"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title DocuShare Backend
// @version 1.0
// @description REST API для обмена файлами с паролем общего доступа

// @host localhost:5000
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Ошибка миграции схемы БД: %v", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	blobStorage, err := setupBlobStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Ошибка создания хранилища файлов: %v", err)
	}

	srv, router := config.SetupServer(cfg.ServerAddr, &cfg.CORS)

	fileRepo := repository.NewFileRepository(db)
	userRepo := repository.NewUserRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.RedisConfig.TTLSeconds)*time.Second)

	fileService := service.NewFileService(fileRepo, cacheRepo, blobStorage)
	userService := service.NewUserService(userRepo)

	fileHandler := handler.NewFileHandler(fileService)
	userHandler := handler.NewUserHandler(userService)

	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "DocuShare Backend is running...")
	})

	setupFileRoutes(router, fileHandler)
	setupUserRoutes(router, userHandler)

	runServer(ctx, srv)
}

// setupBlobStorage : выбирает реализацию хранилища содержимого файлов
func setupBlobStorage(ctx context.Context, cfg *config.AppConfig) (ports.BlobStorage, error) {
	switch cfg.StorageConfig.Backend {
	case "s3":
		return service.NewS3Service(ctx, &cfg.S3Config)
	case "disk", "":
		return service.NewDiskStorageService(cfg.StorageConfig.UploadDir)
	default:
		return nil, fmt.Errorf("неизвестный backend хранилища: %s", cfg.StorageConfig.Backend)
	}
}

func setupFileRoutes(r chi.Router, h *handler.FileHandler) {
	r.Post("/api/upload", h.Upload)

	r.Route("/api/files", func(r chi.Router) {
		r.Post("/upload", h.UploadShare)
		r.Get("/info/{filename}", h.FileInfo)
		r.Post("/share/{filename}", h.SetSharePassword)
		r.Post("/protected-access/{filename}", h.ProtectedAccess)
		r.Get("/protected-access/{filename}", h.ProtectedAccessQuery)
		r.Get("/view/{filename}", h.ViewFile)
		// chi требует одинаковое имя параметра в одной позиции пути,
		// поэтому GET-список владельца тоже использует {filename}
		r.Get("/{filename}", h.ListFiles)
		r.Delete("/{filename}", h.DeleteFile)
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Get("/{email}", h.GetProfile)
		r.Put("/{email}", h.UpdateProfile)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
