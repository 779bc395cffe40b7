package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/ctfboard/internal/api/http/handler"
	"github.com/dtroode/ctfboard/internal/api/http/middleware"
	"github.com/dtroode/ctfboard/internal/logger"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	authService        handler.AuthService
	authenticator      middleware.AuthService
	challengeService   handler.ChallengeService
	submissionService  handler.SubmissionService
	leaderboardService handler.LeaderboardService
	sessionTTL         time.Duration
	secureCookie       bool
	logger             *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	authenticator middleware.AuthService,
	challengeService handler.ChallengeService,
	submissionService handler.SubmissionService,
	leaderboardService handler.LeaderboardService,
	sessionTTL time.Duration,
	secureCookie bool,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:        authService,
		authenticator:      authenticator,
		challengeService:   challengeService,
		submissionService:  submissionService,
		leaderboardService: leaderboardService,
		sessionTTL:         sessionTTL,
		secureCookie:       secureCookie,
		logger:             logger,
	}
}

// Register builds the engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.NewLogging(r.logger).Handle(), gin.Recovery())

	authHandler := handler.NewAuth(r.authService, r.sessionTTL, r.secureCookie, r.logger)
	challengeHandler := handler.NewChallenge(r.challengeService, r.logger)
	submissionHandler := handler.NewSubmission(r.submissionService, r.logger)
	leaderboardHandler := handler.NewLeaderboard(r.leaderboardService, r.logger)

	authenticate := middleware.NewAuthenticate(r.authenticator, r.logger).Handle()

	engine.POST("/login", authHandler.Login)
	engine.POST("/logout", authenticate, authHandler.Logout)

	api := engine.Group("/api")
	api.Use(authenticate)
	{
		api.GET("/user", authHandler.CurrentUser)
		api.GET("/ctfs", challengeHandler.List)
		api.GET("/ctfs/:id/attachments/:name", challengeHandler.DownloadAttachment)
		api.POST("/submit", submissionHandler.Submit)
		api.GET("/leaderboard", leaderboardHandler.Get)
	}

	return engine
}
