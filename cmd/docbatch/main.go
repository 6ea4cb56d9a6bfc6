// docbatch processes a directory of scanned documents locally against an
// in-memory SQLite database and writes the resulting case register as an
// XLSX workbook. Useful for one-off folders that never reach the server.
package main

import (
	"context"
	"crypto/sha256"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/assembly"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/common"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/export"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/pairing"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/pipeline"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/registry"
	repo "github.com/patriciodunstan/back-investigacion-vehiculos/internal/repository"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/textextract"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir    = flag.String("dir", "", "directory of documents to process (required)")
		out    = flag.String("out", "", "output XLSX path (defaults to <dir>/../casos.xlsx)")
		folder = flag.String("folder", "Local Batch", "folder name to group the documents under")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "casos.xlsx")
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dbResult, err := common.InitDatabase(ctx, cfg, true, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()
	entc := dbResult.Client

	docRepo := repo.NewDocumentRepository(entc, logger)
	folderRepo := repo.NewFolderRepository(entc, logger)
	caseRepo := repo.NewCaseRepository(entc, logger)

	folderRow, err := folderRepo.GetOrCreate(ctx, *folder, nil)
	if err != nil {
		logger.Error("failed to create folder", "error", err)
		os.Exit(1)
	}

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
	}

	pairer := pairing.NewEngine(docRepo, cfg.Pipeline.PairingWindow, logger)
	assembler := assembly.NewService(caseRepo, docRepo, regClient, logger)
	// documents stay where they are; the directory is the storage
	processor := pipeline.NewProcessor(pipeline.Config{
		StorageDir:     *dir,
		MaxRetries:     1,
		RetryBaseDelay: cfg.Pipeline.RetryBaseDelay,
	}, docRepo, extractor, pairer, assembler, logger)

	ids, err := registerDirectory(ctx, docRepo, folderRow.ID, *dir, logger)
	if err != nil {
		logger.Error("failed to register directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("documents registered", "count", len(ids))

	// sequential processing: the first half of each pair parks, its
	// counterpart claims it and assembles the case
	for _, id := range ids {
		if err := processor.Process(ctx, id); err != nil {
			logger.Warn("document failed", "doc_id", id, "error", err)
		}
	}

	cases, err := caseRepo.List(ctx, &folderRow.ID)
	if err != nil {
		logger.Error("failed to list cases", "error", err)
		os.Exit(1)
	}
	if err := export.NewService(logger).WriteCases(cases, *out); err != nil {
		logger.Error("failed to export cases", "path", *out, "error", err)
		os.Exit(1)
	}
	fmt.Printf("processed %d documents, %d cases -> %s\n", len(ids), len(cases), *out)
}

// registerDirectory creates one document row per accepted file. The
// storage ref is the path relative to the directory root.
func registerDirectory(ctx context.Context, docs repo.DocumentRepository, folderID uuid.UUID, dir string, logger *slog.Logger) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable file", "path", path, "error", err)
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(content)
		row, dedup, err := docs.UpsertByHash(ctx, folderID, rel, d.Name(), ext, len(content), sum[:])
		if err != nil {
			return err
		}
		if dedup {
			logger.Info("duplicate content skipped", "path", path)
			return nil
		}
		ids = append(ids, row.ID)
		return nil
	})
	return ids, err
}
