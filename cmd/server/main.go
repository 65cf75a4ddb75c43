package main

import (
	"log"
	"net/http"
	"os"

	"github.com/einstufung/backend/internal/admin"
	"github.com/einstufung/backend/internal/auth"
	"github.com/einstufung/backend/internal/database"
	"github.com/einstufung/backend/internal/feedback"
	"github.com/einstufung/backend/internal/quiz"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	godotenv.Load()

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize collaborators
	bank := quiz.NewBank()
	store := quiz.NewStore(db)
	composer := feedback.NewComposer(feedback.NewRephraser())
	quizService := quiz.NewService(bank, store, composer)

	// Initialize handlers
	quizHandler := quiz.NewHandler(quizService)
	adminHandler := admin.NewHandler(store)
	authHandler := auth.NewHandler()

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/quiz", quizHandler.Quiz).Methods("POST")
	api.HandleFunc("/admin/login", authHandler.Login).Methods("POST")

	// Protected admin routes
	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(auth.Middleware)
	protected.HandleFunc("/stats", adminHandler.Stats).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
