package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"socialmedia/cmd/app"
	"socialmedia/internal/config"
	handlers "socialmedia/internal/handler"
	"socialmedia/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set in the .env file")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handlers.HealthHandler(db)).Methods(http.MethodGet)

	router.HandleFunc("/users/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/users/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/users/refresh-token", handler.RefreshToken).Methods(http.MethodPost)
	router.HandleFunc("/users/search", handler.SearchUsers).Methods(http.MethodPost)
	router.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}/{followingId}/follow", handler.FollowUser).Methods(http.MethodPost)
	router.HandleFunc("/users/{id}/followers", handler.GetFollowers).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}/following", handler.GetFollowing).Methods(http.MethodGet)

	router.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/posts/search", handler.SearchPosts).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	router.HandleFunc("/posts/{id}/comments", handler.AddComment).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id}/like", handler.LikePost).Methods(http.MethodPost)

	// image uploads require a session token
	images := router.PathPrefix("/posts/{id}/images").Subrouter()
	images.Use(middleware.AuthMiddleware(cfg))
	images.HandleFunc("", handler.AddImage).Methods(http.MethodPost)
	images.HandleFunc("/{imageId}", handler.DeleteImage).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)
	log.Printf("Database: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
