package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/ctfboard/internal/api/http/router"
	"github.com/dtroode/ctfboard/internal/config"
	"github.com/dtroode/ctfboard/internal/logger"
	"github.com/dtroode/ctfboard/internal/model"
	"github.com/dtroode/ctfboard/internal/repository/file"
	"github.com/dtroode/ctfboard/internal/repository/postgres"
	"github.com/dtroode/ctfboard/internal/server"
	"github.com/dtroode/ctfboard/internal/service"
	storage "github.com/dtroode/ctfboard/internal/storage/minio"
	"github.com/dtroode/ctfboard/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const sessionSweepInterval = time.Hour

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	sessionRepo := postgres.NewSessionRepository(db)
	submissionRepo := postgres.NewSubmissionRepository(db)
	tokenManager := token.NewJWT(cfg.Session.Secret)

	credentialStore := file.NewCredentialFile(cfg.Sources.PasswordFile)
	catalog, err := file.NewChallengeCatalog(cfg.Sources.ChallengeFile)
	if err != nil {
		logger.Fatal("failed to load challenge catalog", "error", err)
	}

	var attachmentStorage model.Storage
	if cfg.Storage.Enabled {
		minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to create minio client", "error", err)
		}
		attachmentStorage, err = storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
	}

	authService := service.NewAuth(credentialStore, sessionRepo, tokenManager, cfg.Session.TTL, logger)
	challengeService := service.NewChallenge(catalog, attachmentStorage, logger)
	submissionService := service.NewSubmission(catalog, submissionRepo, logger)
	leaderboardService := service.NewLeaderboard(submissionRepo, logger)

	r := router.New(
		authService,
		authService,
		challengeService,
		submissionService,
		leaderboardService,
		cfg.Session.TTL,
		cfg.Session.Secure,
		logger,
	)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	wg.Add(1)
	go func() {
		defer wg.Done()
		sweepExpiredSessions(ctx, sessionRepo, logger)
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// sweepExpiredSessions periodically removes expired session rows so the
// table does not grow without bound. Expired sessions are also rejected
// on use; the sweep is cleanup only.
func sweepExpiredSessions(ctx context.Context, store model.SessionStore, logger *logger.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			deleted, err := store.DeleteExpired(ctx, now)
			if err != nil {
				logger.Error("failed to sweep expired sessions", "error", err)
				continue
			}
			if deleted > 0 {
				logger.Info("swept expired sessions", "count", deleted)
			}
		}
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
