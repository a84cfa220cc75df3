package main

import (
	auth "Nautica/internal/auth"
	batch "Nautica/internal/calc/batch"
	criteria "Nautica/internal/calc/criteria"
	export "Nautica/internal/calc/export"
	hull "Nautica/internal/calc/hull"
	importer "Nautica/internal/calc/importer"
	masscenter "Nautica/internal/calc/masscenter"
	report "Nautica/internal/calc/report"
	resistance "Nautica/internal/calc/resistance"
	stability "Nautica/internal/calc/stability"
	repo "Nautica/internal/repo"
	scenario "Nautica/internal/scenario"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgres(db)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment as-is")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authSvc := &auth.Service{JWTKey: []byte(tokenKey), Repo: userRepo}
	scenarioH := &scenario.Handler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authSvc.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authSvc.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authSvc.Middleware)

	hullH := &hull.Handler{}
	resistanceH := &resistance.Handler{}
	stabilityH := &stability.Handler{}
	criteriaH := &criteria.Handler{}
	masscenterH := &masscenter.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	exportH := &export.Handler{}
	reportH := &report.Handler{}

	secureApi.HandleFunc("/tools/hull/calc", hullH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/resistance/calc", resistanceH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/stability/calc", stabilityH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/criteria/eval", criteriaH.Eval).Methods("POST")
	secureApi.HandleFunc("/tools/masscenter/calc", masscenterH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/batch/resistance", batchH.Resistance).Methods("POST")
	secureApi.HandleFunc("/tools/import/hulls", importerH.Hulls).Methods("POST")
	secureApi.HandleFunc("/tools/export/xlsx", exportH.Xlsx).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/scenarios", scenarioH.List).Methods("GET")
	secureApi.HandleFunc("/scenarios", scenarioH.Save).Methods("POST")
	secureApi.HandleFunc("/scenarios/{id:[0-9]+}", scenarioH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	HandleList(mux, db)
	handler := CORS(mux)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")
	fmt.Println("Закрытие активных соединений")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Ошибка при остановке сервера: %v", err)
	}
	log.Println("Сервер успешно остановлен")

	wg.Wait()
}
