package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	v1 "github.com/patriciodunstan/back-investigacion-vehiculos/gen/proto/investigation/v1"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/common"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/repository"
)

// Enqueuer hands accepted documents to the pipeline workers.
type Enqueuer interface {
	Enqueue(docID uuid.UUID) bool
}

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	docRepo    repository.DocumentRepository
	folderRepo repository.FolderRepository
	queue      Enqueuer
	storageDir string
	maxBatch   int
	logger     *slog.Logger
}

func NewIngestionService(docs repository.DocumentRepository, folders repository.FolderRepository, queue Enqueuer, storageDir string, maxBatch int, logger *slog.Logger) *IngestionService {
	if maxBatch <= 0 {
		maxBatch = 200
	}
	return &IngestionService{
		docRepo:    docs,
		folderRepo: folders,
		queue:      queue,
		storageDir: storageDir,
		maxBatch:   maxBatch,
		logger:     logger,
	}
}

// UploadBatch implements v1.IngestionServiceServer. Documents are
// persisted and acknowledged synchronously; processing happens on the
// worker pool afterwards.
func (s *IngestionService) UploadBatch(ctx context.Context, req *v1.UploadBatchRequest) (*v1.UploadBatchResponse, error) {
	if len(req.GetDocuments()) == 0 {
		return nil, common.InvalidArgumentError("at least one document is required")
	}
	if len(req.GetDocuments()) > s.maxBatch {
		return nil, status.Errorf(codes.InvalidArgument, "batch exceeds the %d document limit", s.maxBatch)
	}
	folderID, err := s.resolveFolder(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("upload batch started", "folder_id", folderID, "documents", len(req.GetDocuments()))
	resp := &v1.UploadBatchResponse{FolderId: folderID.String()}
	for _, up := range req.GetDocuments() {
		ack := s.acceptOne(ctx, folderID, up)
		resp.Results = append(resp.Results, ack)
		switch {
		case ack.Error != "":
			resp.Rejected++
		case ack.Deduplicated:
			resp.Deduplicated++
		default:
			resp.Accepted++
		}
	}
	s.logger.Info("upload batch acknowledged",
		"folder_id", folderID,
		"accepted", resp.Accepted,
		"deduplicated", resp.Deduplicated,
		"rejected", resp.Rejected,
	)
	return resp, nil
}

// resolveFolder accepts either an existing folder id or a folder name,
// optionally scoped to an owning organization, created on first use.
func (s *IngestionService) resolveFolder(ctx context.Context, req *v1.UploadBatchRequest) (uuid.UUID, error) {
	if fid := strings.TrimSpace(req.GetFolderId()); fid != "" {
		folderID, err := uuid.Parse(fid)
		if err != nil {
			s.logger.Error("invalid folder_id format for upload", "folder_id", fid, "error", err)
			return uuid.Nil, common.InvalidArgumentError("folder_id must be a UUID")
		}
		if exists, _ := s.folderRepo.Exists(ctx, folderID); !exists {
			s.logger.Error("folder not found for upload", "folder_id", folderID)
			return uuid.Nil, common.InvalidArgumentError("folder not found")
		}
		return folderID, nil
	}

	name := strings.TrimSpace(req.GetFolderName())
	if name == "" {
		return uuid.Nil, common.InvalidArgumentError("folder_id or folder_name is required")
	}
	var orgID *uuid.UUID
	if raw := strings.TrimSpace(req.GetOrganizationId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, common.InvalidArgumentError("organization_id must be a UUID")
		}
		orgID = &id
	}
	folder, err := s.folderRepo.GetOrCreate(ctx, name, orgID)
	if err != nil {
		s.logger.Error("failed to resolve upload folder", "folder_name", name, "error", err)
		return uuid.Nil, common.InternalError("failed to resolve folder")
	}
	return folder.ID, nil
}

func (s *IngestionService) acceptOne(ctx context.Context, folderID uuid.UUID, up *v1.DocumentUpload) *v1.UploadAck {
	ack := &v1.UploadAck{Filename: up.GetFilename()}
	filename := strings.TrimSpace(up.GetFilename())
	if filename == "" {
		ack.Error = "filename is required"
		return ack
	}
	if len(up.GetContent()) == 0 {
		ack.Error = "document content is empty"
		return ack
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		ack.Error = fmt.Sprintf("extension %q is not accepted", ext)
		return ack
	}

	sum := sha256.Sum256(up.GetContent())
	hashHex := hex.EncodeToString(sum[:])
	// content-addressed layout: first byte as shard directory
	storageRef := filepath.Join(hashHex[:2], hashHex[2:]+"."+ext)

	if err := s.store(storageRef, up.GetContent()); err != nil {
		s.logger.Error("failed to store upload", "folder_id", folderID, "filename", filename, "error", err)
		ack.Error = "failed to store document"
		return ack
	}

	row, dedup, err := s.docRepo.UpsertByHash(ctx, folderID, storageRef, filename, ext, len(up.GetContent()), sum[:])
	if err != nil {
		s.logger.Error("failed to register upload", "folder_id", folderID, "filename", filename, "error", err)
		ack.Error = "failed to register document"
		return ack
	}
	ack.DocumentId = row.ID.String()
	ack.Deduplicated = dedup
	if dedup {
		s.logger.Info("upload deduplicated", "folder_id", folderID, "filename", filename, "doc_id", row.ID)
		return ack
	}

	if !s.queue.Enqueue(row.ID) {
		// fresh uploads have no retry schedule, so the caller must re-send
		ack.Error = "processing queue is full, retry later"
	}
	return ack
}

func (s *IngestionService) store(storageRef string, content []byte) error {
	path := filepath.Join(s.storageDir, storageRef)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		// identical bytes already on disk
		return nil
	}
	return os.WriteFile(path, content, 0o644)
}

func (s *IngestionService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}
	row, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("document not found")
		}
		s.logger.Warn("get document failed", "doc_id", id, "error", err)
		return nil, common.InternalError("get document failed")
	}
	return &v1.GetDocumentResponse{Document: toProtoDocument(row)}, nil
}

func (s *IngestionService) ListDocuments(ctx context.Context, req *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	folderID, err := uuid.Parse(strings.TrimSpace(req.GetFolderId()))
	if err != nil {
		return nil, common.InvalidArgumentError("folder_id must be a UUID")
	}
	var state *constants.DocState
	if st := strings.TrimSpace(req.GetState()); st != "" {
		ds := constants.DocState(st)
		var known bool
		for _, v := range constants.DocStates {
			if v == string(ds) {
				known = true
				break
			}
		}
		if !known {
			return nil, status.Errorf(codes.InvalidArgument, "unknown state %q", st)
		}
		state = &ds
	}

	rows, err := s.docRepo.ListByFolder(ctx, folderID, state)
	if err != nil {
		s.logger.Warn("list documents failed", "folder_id", folderID, "error", err)
		return nil, common.InternalError("list documents failed")
	}
	out := &v1.ListDocumentsResponse{Documents: make([]*v1.Document, 0, len(rows))}
	for _, row := range rows {
		out.Documents = append(out.Documents, toProtoDocument(row))
	}
	return out, nil
}

func toProtoDocument(row *ent.ProcessedDocument) *v1.Document {
	doc := &v1.Document{
		Id:         row.ID.String(),
		FolderId:   row.FolderID.String(),
		Filename:   row.Filename,
		DocType:    row.DocType,
		State:      row.State,
		RetryCount: int32(row.RetryCount),
		CreatedAt:  row.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  row.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if row.PairID != nil {
		doc.PairId = row.PairID.String()
	}
	if row.CaseID != nil {
		doc.CaseId = row.CaseID.String()
	}
	if row.ErrorDetail != nil {
		doc.ErrorDetail = *row.ErrorDetail
	}
	return doc
}
