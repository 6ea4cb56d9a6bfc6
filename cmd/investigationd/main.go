package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/patriciodunstan/back-investigacion-vehiculos/gen/proto/investigation/v1"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/assembly"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/async"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/common"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/export"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/pairing"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/pipeline"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/registry"
	repo "github.com/patriciodunstan/back-investigacion-vehiculos/internal/repository"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/server"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/textextract"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbResult, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()
	entc := dbResult.Client

	docRepo := repo.NewDocumentRepository(entc, logger)
	folderRepo := repo.NewFolderRepository(entc, logger)
	caseRepo := repo.NewCaseRepository(entc, logger)

	extractor := textextract.NewExtractor(textextract.Config{
		Pdftotext:      cfg.OCR.Pdftotext,
		Pdftoppm:       cfg.OCR.Pdftoppm,
		Tesseract:      cfg.OCR.Tesseract,
		Language:       cfg.OCR.Language,
		DPI:            cfg.OCR.DPI,
		MinTextDensity: cfg.OCR.MinTextDensity,
	}, logger)

	var regClient assembly.RegistryClient
	if cfg.Registry.BaseURL != "" {
		client, err := registry.New(registry.Config{
			BaseURL:       cfg.Registry.BaseURL,
			APIKey:        cfg.Registry.APIKey,
			ClientID:      cfg.Registry.ClientID,
			Timeout:       cfg.Registry.Timeout,
			RatePerMinute: cfg.Registry.RatePerMinute,
		}, caseRepo, logger)
		if err != nil {
			logger.Error("failed to build registry client", "error", err)
			os.Exit(1)
		}
		regClient = client
	} else {
		logger.Warn("registry enrichment disabled, REGISTRY_BASE_URL not set")
	}

	pairer := pairing.NewEngine(docRepo, cfg.Pipeline.PairingWindow, logger)
	assembler := assembly.NewService(caseRepo, docRepo, regClient, logger)
	processor := pipeline.NewProcessor(pipeline.Config{
		StorageDir:     cfg.Server.StorageDir,
		MaxRetries:     cfg.Pipeline.MaxRetries,
		RetryBaseDelay: cfg.Pipeline.RetryBaseDelay,
	}, docRepo, extractor, pairer, assembler, logger)

	queue := async.NewQueue(async.Config{
		Workers:      cfg.Pipeline.Workers,
		QueueSize:    cfg.Pipeline.QueueSize,
		StageTimeout: cfg.Pipeline.StageTimeout,
	}, processor, logger)
	queue.Start(ctx)

	sweeper := async.NewSweeper(docRepo, queue, 0, logger)
	go sweeper.Run(ctx)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	ingestSvc := server.NewIngestionService(docRepo, folderRepo, queue, cfg.Server.StorageDir, cfg.Server.MaxBatchSize, logger)
	v1.RegisterIngestionServiceServer(grpcServer, ingestSvc)

	exportDir := filepath.Join(cfg.Server.StorageDir, "exports")
	casesSvc := server.NewCasesService(caseRepo, export.NewService(logger), exportDir, logger)
	v1.RegisterCasesServiceServer(grpcServer, casesSvc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	queue.Stop()
	logger.Info("stopped")
}
