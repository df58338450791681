package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"easyhire-backend/internal/scorelog"
	"easyhire-backend/internal/scorer"
	"easyhire-backend/internal/shared/config"
	"easyhire-backend/internal/shared/metrics"
	"easyhire-backend/internal/shared/server/middleware"
	"easyhire-backend/internal/shared/server/respond"
	"easyhire-backend/internal/shared/telemetry"
	"easyhire-backend/internal/submissions"
	"easyhire-backend/internal/summary"
	"easyhire-backend/internal/uploads"
	"easyhire-backend/internal/worker"
)

// NewRouter constructs the Gin engine with middleware, dependencies, and
// routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := submissions.NewMemoryStore()
	scoreLog := scorelog.New(cfg.ScoreLogPath)
	disk := uploads.NewDiskStore(cfg.UploadDir)

	var scoreClient scorer.Scorer
	if len(cfg.ScorerCommand) > 0 {
		scoreClient = &scorer.External{
			Command:     cfg.ScorerCommand,
			JobPath:     cfg.ScorerJobPath,
			Speed:       cfg.ScorerSpeed,
			OCR:         cfg.ScorerOCR,
			ExtractMode: cfg.ScorerExtractMode,
			Timeout:     time.Duration(cfg.ScorerTimeoutSecs) * time.Second,
		}
	} else {
		telemetry.Info("scorer.builtin_fallback", map[string]any{"reason": "SCORER_CMD empty"})
		scoreClient = scorer.Builtin{}
	}

	var archiver uploads.Archiver
	if cfg.S3Bucket != "" {
		s3Archiver, err := uploads.NewS3Archiver(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			telemetry.Error("archive.init_failed", map[string]any{"bucket": cfg.S3Bucket, "err": err.Error()})
		} else {
			archiver = s3Archiver
		}
	}

	pool := worker.NewPool(cfg.ScoringWorkers)
	pool.Start(context.Background())

	uploadSvc := &uploads.Service{
		Disk:            disk,
		Scorer:          scoreClient,
		Log:             scoreLog,
		Store:           store,
		Archiver:        archiver,
		Queue:           pool,
		DefaultKeywords: cfg.ScorerKeywords,
	}

	uploadHandler := uploads.NewHandler(uploadSvc, cfg.ScoringMode)
	submissionHandler := submissions.NewHandler(store)
	summaryHandler := summary.NewHandler(store, scoreLog)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	uploadHandler.RegisterRoutes(api)
	submissionHandler.RegisterRoutes(api)
	summaryHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
