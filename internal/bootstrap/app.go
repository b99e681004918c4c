package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"pdfqa-backend/internal/documents"
	"pdfqa-backend/internal/extract"
	"pdfqa-backend/internal/qa"
	openai "pdfqa-backend/internal/qa/openai"
	"pdfqa-backend/internal/questions"
	"pdfqa-backend/internal/shared/config"
	"pdfqa-backend/internal/shared/server"
	"pdfqa-backend/internal/shared/storage/db"
	"pdfqa-backend/internal/shared/storage/object"
	localstore "pdfqa-backend/internal/shared/storage/object/local"
	s3store "pdfqa-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	DocumentsRepo    documents.DocumentsRepo
	DocumentsService *documents.Service
	QuestionsService *questions.Service
	DocumentsHandler *documents.Handler
	QuestionsHandler *questions.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		DocumentHandler: app.DocumentsHandler,
		QuestionHandler: app.QuestionsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var docRepo documents.DocumentsRepo
	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}

	docSvc := &documents.Service{
		Store:     app.Store,
		Repo:      docRepo,
		Extractor: extract.Extractor{},
	}

	qaClient := qa.Client(qa.PlaceholderClient{})
	if app.Config.QAProvider == "openai" {
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.QAModel)
		if err != nil {
			return err
		}
		qaClient = client
	}

	questionSvc := &questions.Service{
		Docs:    docRepo,
		QA:      qa.WithRetry(qaClient),
		Timeout: app.Config.QATimeout,
	}

	app.DocumentsRepo = docRepo
	app.DocumentsService = docSvc
	app.QuestionsService = questionSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.QuestionsHandler = questions.NewHandler(questionSvc)

	return nil
}
