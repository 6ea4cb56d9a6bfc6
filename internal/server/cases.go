package server

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	v1 "github.com/patriciodunstan/back-investigacion-vehiculos/gen/proto/investigation/v1"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/common"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/export"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/repository"
)

type CasesService struct {
	v1.UnimplementedCasesServiceServer
	caseRepo repository.CaseRepository
	exporter *export.Service
	// exports land under this directory unless the caller names a path
	exportDir string
	logger    *slog.Logger
}

func NewCasesService(cases repository.CaseRepository, exporter *export.Service, exportDir string, logger *slog.Logger) *CasesService {
	return &CasesService{
		caseRepo:  cases,
		exporter:  exporter,
		exportDir: exportDir,
		logger:    logger,
	}
}

func (s *CasesService) GetCase(ctx context.Context, req *v1.GetCaseRequest) (*v1.GetCaseResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetCaseId()))
	if err != nil {
		return nil, common.InvalidArgumentError("case_id must be a UUID")
	}
	row, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("case not found")
		}
		s.logger.Warn("get case failed", "case_id", id, "error", err)
		return nil, common.InternalError("get case failed")
	}
	return &v1.GetCaseResponse{Case: toProtoCase(row)}, nil
}

func (s *CasesService) ListCases(ctx context.Context, req *v1.ListCasesRequest) (*v1.ListCasesResponse, error) {
	folderID, err := parseOptionalUUID(req.GetFolderId())
	if err != nil {
		return nil, common.InvalidArgumentError("folder_id must be a UUID")
	}
	rows, err := s.caseRepo.List(ctx, folderID)
	if err != nil {
		s.logger.Warn("list cases failed", "error", err)
		return nil, common.InternalError("list cases failed")
	}
	out := &v1.ListCasesResponse{Cases: make([]*v1.Case, 0, len(rows))}
	for _, row := range rows {
		out.Cases = append(out.Cases, toProtoCase(row))
	}
	return out, nil
}

func (s *CasesService) ExportCases(ctx context.Context, req *v1.ExportCasesRequest) (*v1.ExportCasesResponse, error) {
	folderID, err := parseOptionalUUID(req.GetFolderId())
	if err != nil {
		return nil, common.InvalidArgumentError("folder_id must be a UUID")
	}
	rows, err := s.caseRepo.List(ctx, folderID)
	if err != nil {
		s.logger.Warn("export cases query failed", "error", err)
		return nil, common.InternalError("export cases failed")
	}

	outPath := strings.TrimSpace(req.GetOutputPath())
	if outPath == "" {
		name := time.Now().UTC().Format("casos_20060102_150405.xlsx")
		outPath = filepath.Join(s.exportDir, name)
	}
	if err := s.exporter.WriteCases(rows, outPath); err != nil {
		s.logger.Error("export cases failed", "path", outPath, "error", err)
		return nil, common.InternalError("export cases failed")
	}
	return &v1.ExportCasesResponse{OutputPath: outPath, CaseCount: int32(len(rows))}, nil
}

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toProtoCase(row *ent.InvestigationCase) *v1.Case {
	c := &v1.Case{
		Id:         row.ID.String(),
		FolderId:   row.FolderID.String(),
		CaseNumber: row.CaseNumber,
		Warnings:   row.Warnings,
		CreatedAt:  row.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  row.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if row.LegalContext != nil {
		c.LegalContext = *row.LegalContext
	}
	if v := row.Edges.Vehicle; v != nil {
		c.Vehicle = &v1.Vehicle{
			Plate:        v.Plate,
			Make:         strOrEmpty(v.Make),
			Model:        strOrEmpty(v.Model),
			Color:        strOrEmpty(v.Color),
			Vin:          strOrEmpty(v.Vin),
			EngineNumber: strOrEmpty(v.EngineNumber),
		}
		if v.Year != nil {
			c.Vehicle.Year = int32(*v.Year)
		}
	}
	for _, o := range row.Edges.Owners {
		c.Owners = append(c.Owners, &v1.Owner{
			NationalId: strOrEmpty(o.NationalID),
			FullName:   strOrEmpty(o.FullName),
			Source:     o.Source,
		})
	}
	for _, a := range row.Edges.Addresses {
		c.Addresses = append(c.Addresses, &v1.Address{
			Street:   a.Street,
			Locality: strOrEmpty(a.Locality),
			Region:   strOrEmpty(a.Region),
			Source:   a.Source,
		})
	}
	return c
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
