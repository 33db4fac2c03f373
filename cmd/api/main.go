package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"growlink/cmd/app"
	"growlink/internal/config"
	handlers "growlink/internal/handler"
	"growlink/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(db, repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.Home).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)

	router.HandleFunc("/threads", handler.GetThreads).Methods(http.MethodGet)
	router.HandleFunc("/threads", handler.CreateThread).Methods(http.MethodPost)
	router.HandleFunc("/threads/{id}", handler.GetThread).Methods(http.MethodGet)
	router.HandleFunc("/threads/{id}", handler.DeleteThread).Methods(http.MethodDelete)

	router.HandleFunc("/templates", handler.GetTemplates).Methods(http.MethodGet)
	router.HandleFunc("/templates", handler.CreateTemplate).Methods(http.MethodPost)
	router.HandleFunc("/templates/{id}", handler.GetTemplate).Methods(http.MethodGet)
	router.HandleFunc("/templates/{id}", handler.DeleteTemplate).Methods(http.MethodDelete)

	router.HandleFunc("/events", handler.GetEvents).Methods(http.MethodGet)

	// создание событий можно ограничить спикерами через конфиг
	createEvent := http.Handler(http.HandlerFunc(handler.CreateEvent))
	if cfg.EventsRequireSpeaker {
		createEvent = middleware.RequireRole("speaker")(createEvent)
	}
	router.Handle("/events", createEvent).Methods(http.MethodPost)

	router.HandleFunc("/events/{id}", handler.GetEvent).Methods(http.MethodGet)
	router.HandleFunc("/events/{id}/register", handler.RegisterForEvent).Methods(http.MethodPost)
	router.HandleFunc("/events/{id}/registrations", handler.GetRegistrations).Methods(http.MethodGet)
	router.HandleFunc("/events/{id}/comments", handler.GetComments).Methods(http.MethodGet)
	router.HandleFunc("/events/{id}/comments", handler.CreateComment).Methods(http.MethodPost)
	router.HandleFunc("/events/{id}/reviews", handler.GetReviews).Methods(http.MethodGet)
	router.HandleFunc("/events/{id}/reviews", handler.CreateReview).Methods(http.MethodPost)

	router.HandleFunc("/users/me", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/users/me", handler.UpdateProfile).Methods(http.MethodPut)
	router.HandleFunc("/users/me/become-speaker", handler.BecomeSpeaker).Methods(http.MethodPut)
	router.HandleFunc("/users/me/registered-events", handler.GetRegisteredEvents).Methods(http.MethodGet)
	router.HandleFunc("/users/me/registered-events/details", handler.GetRegisteredEventDetails).Methods(http.MethodGet)
	router.HandleFunc("/users/me/events-needing-review", handler.GetEventsNeedingReview).Methods(http.MethodGet)

	// раздача загруженных файлов (для локального драйвера)
	if cfg.Uploads.Driver != "minio" {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))))
	}

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)
	log.Printf("База данных: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
