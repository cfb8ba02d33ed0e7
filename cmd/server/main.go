package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/coopvote/api/internal/adapters/eligibility"
	handler "github.com/coopvote/api/internal/adapters/handler/http"
	repo "github.com/coopvote/api/internal/adapters/repository/postgres"
	"github.com/coopvote/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	agendaRepo := repo.NewAgendaRepository(db)
	sessionRepo := repo.NewSessionRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	resultRepo := repo.NewResultRepository(db)
	memberRepo := repo.NewMemberRepository(db)

	validator := eligibility.NewClient(os.Getenv("ELIGIBILITY_URL"))

	agendaSvc := services.NewAgendaService(agendaRepo)
	memberSvc := services.NewMemberService(memberRepo)
	resultSvc := services.NewResultService(sessionRepo, voteRepo, resultRepo)
	sessionSvc := services.NewSessionService(sessionRepo, agendaRepo, resultSvc)
	voteSvc := services.NewVoteService(sessionRepo, voteRepo, validator)

	router := handler.NewHandler(
		handler.NewAgendaHandler(agendaSvc),
		handler.NewSessionHandler(sessionSvc, resultSvc),
		handler.NewVoteHandler(voteSvc),
		handler.NewMemberHandler(memberSvc),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &stdhttp.Server{Addr: "0.0.0.0:" + port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := services.NewSweeper(sessionRepo, sessionSvc, sweepInterval())
	go sweeper.Run(ctx)

	go func() {
		log.Printf("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func sweepInterval() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("SWEEP_INTERVAL_SECONDS"))
	if err != nil || seconds <= 0 {
		return services.DefaultSweepInterval
	}
	return time.Duration(seconds) * time.Second
}

func dbConnString() string {
	dbName := os.Getenv("POSTGRES_DB")
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}
