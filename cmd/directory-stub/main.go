// directory-stub serves a fixed user listing so the profile card app can be
// run locally against a real HTTP hop. Development tooling only.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/mobileheap/profilecard/pkg/env"
	"github.com/mobileheap/profilecard/pkg/log"
)

type user struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

var users = []user{
	{ID: 1, Name: "Aurora Lane"},
	{ID: 2, Name: "Billie Fern"},
	{ID: 3, Name: "Casper Holt"},
	{ID: 4, Name: "Dana Reyes"},
	{ID: 5, Name: "Emil Novak"},
}

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	logger := log.New(log.LevelInfo)
	address := env.Must(env.ParseDefault[string]("DIRECTORY_STUB_ADDRESS", ":8081"))

	router := mux.NewRouter()
	router.Methods(http.MethodGet).Path("/users").HandlerFunc(listUsersHandler)
	router.Methods(http.MethodGet).Path("/healthz").HandlerFunc(healthHandler)

	server := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}

	logger.WithField("address", address).Info(ctx, "directory stub listening")
	err := server.ListenAndServe()
	if err != nil {
		logger.WithError(err).Error(ctx, "directory stub stopped")
	}
}

func listUsersHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(users)
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Status string `json:"status"`
	}{Status: "OK"})
}
