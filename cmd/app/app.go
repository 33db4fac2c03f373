package app

import (
	"log"

	"growlink/internal/config"
	"growlink/internal/database"
	"growlink/internal/repository"
	"growlink/internal/service"
	"growlink/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// выбор драйвера хранилища загрузок
	var store storage.Storage
	switch cfg.Uploads.Driver {
	case "minio":
		store, err = storage.NewMinIOClient(cfg)
		if err != nil {
			log.Fatalf("Не удалось инициализировать MinIO: %v", err)
		}
	default:
		store, err = storage.NewLocalStorage(cfg)
		if err != nil {
			log.Fatalf("Не удалось инициализировать локальное хранилище: %v", err)
		}
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, repo, services
}
