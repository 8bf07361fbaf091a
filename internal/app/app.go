package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"LearnHub/internal/app/server"
	"LearnHub/internal/config"
	"LearnHub/internal/delivery/http"
	"LearnHub/internal/service"
	"LearnHub/internal/service/auth"
	"LearnHub/internal/service/bookmark"
	"LearnHub/internal/service/course/enrollment"
	"LearnHub/internal/service/course/management"
	"LearnHub/internal/service/course/query"
	"LearnHub/internal/service/course/rating"
	"LearnHub/internal/service/lesson/progress"
	"LearnHub/internal/service/notes"
	"LearnHub/internal/storage/elastic"
	"LearnHub/internal/storage/memory"
	"LearnHub/internal/storage/minio_storage"
	"LearnHub/internal/storage/postgres"
	"LearnHub/pkg/logger"
)

func Run(cfg *config.Config) {
	log := logger.New(cfg.Env)
	log.Info("Starting with Env: "+cfg.Env, "storage_mode", cfg.Storage.Mode)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, "learnhub", cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	var u service.Collection
	var closeStorage func()

	switch cfg.Storage.Mode {
	case config.StoragePostgres:
		collection, cleanup, err := buildPostgresServices(log, cfg, jwtManager)
		if err != nil {
			log.FatalErr("error building postgres services", err)
		}
		u = collection
		closeStorage = cleanup
	default:
		u = buildMemoryServices(log, cfg, jwtManager)
		closeStorage = func() {}
	}
	defer closeStorage()

	r := http.InitRoutes(log, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	log.Info("HTTP server listening", "address", cfg.HTTPServer.Address)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server error", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}

// buildMemoryServices wires every service against the in-process storage.
// The search and thumbnail collaborators are the memory variants, so no
// external system is needed.
func buildMemoryServices(log logger.Log, cfg *config.Config, jwtManager *auth.JWTManager) service.Collection {
	store := memory.New()
	if cfg.Storage.Seed {
		if err := store.Seed(); err != nil {
			log.FatalErr("error seeding memory storage", err)
		}
		log.Info("memory storage seeded with demo catalog")
	}

	courseRepo := memory.NewCourseMemory(store)
	enrollmentRepo := memory.NewEnrollmentMemory(store)
	progressRepo := memory.NewProgressMemory(store)
	ratingRepo := memory.NewRatingMemory(store)
	noteRepo := memory.NewNoteMemory(store)
	bookmarkRepo := memory.NewBookmarkMemory(store)
	userRepo := memory.NewUserMemory(store)
	tokenRepo := memory.NewTokensMemory(store)
	searchRepo := memory.NewCourseSearchMemory(store)
	thumbnailRepo := memory.NewThumbnailMemory()

	return service.Collection{
		AuthService:             auth.NewAuthService(log, jwtManager, userRepo, tokenRepo),
		EnrollmentService:       enrollment.NewEnrollmentService(log, courseRepo, enrollmentRepo),
		RatingService:           rating.NewRatingService(log, courseRepo, enrollmentRepo, ratingRepo),
		CourseQueryService:      query.NewCourseQueryService(log, courseRepo, enrollmentRepo, progressRepo, ratingRepo, bookmarkRepo, searchRepo, thumbnailRepo),
		CourseManagementService: management.NewCourseManagementService(log, courseRepo, searchRepo, thumbnailRepo),
		ProgressService:         progress.NewProgressService(log, courseRepo, enrollmentRepo, progressRepo),
		NotesService:            notes.NewNotesService(log, courseRepo, noteRepo),
		BookmarkService:         bookmark.NewBookmarkService(log, courseRepo, bookmarkRepo),
	}
}

func buildPostgresServices(log logger.Log, cfg *config.Config, jwtManager *auth.JWTManager) (service.Collection, func(), error) {
	pg, err := postgres.NewPostgresPool(cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	if err != nil {
		return service.Collection{}, nil, err
	}

	esClient, err := elastic.NewElasticClient(cfg.ES.Password, cfg.ES.Hosts)
	if err != nil {
		pg.Close()
		return service.Collection{}, nil, err
	}
	searchRepo := elastic.NewCourseSearchRepository(esClient, cfg.ES.Index)
	if err := searchRepo.CreateIndexIfNotExist(context.Background()); err != nil {
		pg.Close()
		return service.Collection{}, nil, err
	}

	minioClient, err := minio_storage.NewMinioStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		pg.Close()
		return service.Collection{}, nil, err
	}
	thumbnailRepo, err := minio_storage.NewThumbnailStorage(minioClient, cfg.Minio.Bucket, cfg.Minio.PresignTTL)
	if err != nil {
		pg.Close()
		return service.Collection{}, nil, err
	}

	courseRepo := postgres.NewCoursePostgres(pg.Pool)
	enrollmentRepo := postgres.NewEnrollmentPostgres(pg.Pool)
	progressRepo := postgres.NewProgressPostgres(pg.Pool)
	ratingRepo := postgres.NewRatingPostgres(pg.Pool)
	noteRepo := postgres.NewNotePostgres(pg.Pool)
	bookmarkRepo := postgres.NewBookmarkPostgres(pg.Pool)
	userRepo := postgres.NewUserPostgres(pg.Pool)
	tokenRepo := postgres.NewTokensPostgres(pg.Pool)

	collection := service.Collection{
		AuthService:             auth.NewAuthService(log, jwtManager, userRepo, tokenRepo),
		EnrollmentService:       enrollment.NewEnrollmentService(log, courseRepo, enrollmentRepo),
		RatingService:           rating.NewRatingService(log, courseRepo, enrollmentRepo, ratingRepo),
		CourseQueryService:      query.NewCourseQueryService(log, courseRepo, enrollmentRepo, progressRepo, ratingRepo, bookmarkRepo, searchRepo, thumbnailRepo),
		CourseManagementService: management.NewCourseManagementService(log, courseRepo, searchRepo, thumbnailRepo),
		ProgressService:         progress.NewProgressService(log, courseRepo, enrollmentRepo, progressRepo),
		NotesService:            notes.NewNotesService(log, courseRepo, noteRepo),
		BookmarkService:         bookmark.NewBookmarkService(log, courseRepo, bookmarkRepo),
	}
	return collection, pg.Close, nil
}
