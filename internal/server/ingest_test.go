package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	v1 "github.com/patriciodunstan/back-investigacion-vehiculos/gen/proto/investigation/v1"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/repository"
)

type fakeUploadDocs struct {
	repository.DocumentRepository

	byHash map[string]*ent.ProcessedDocument
}

func (f *fakeUploadDocs) UpsertByHash(_ context.Context, folderID uuid.UUID, storageRef, filename, ext string, size int, hash []byte) (*ent.ProcessedDocument, bool, error) {
	key := string(hash)
	if row, ok := f.byHash[key]; ok {
		return row, true, nil
	}
	row := &ent.ProcessedDocument{
		ID:         uuid.New(),
		FolderID:   folderID,
		StorageRef: storageRef,
		Filename:   filename,
		FileExt:    ext,
		FileSize:   size,
	}
	if f.byHash == nil {
		f.byHash = map[string]*ent.ProcessedDocument{}
	}
	f.byHash[key] = row
	return row, false, nil
}

type fakeFolders struct {
	repository.FolderRepository

	known  map[uuid.UUID]bool
	byName map[string]*ent.Folder
	orgs   map[string]*uuid.UUID
}

func (f *fakeFolders) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

func (f *fakeFolders) GetOrCreate(_ context.Context, name string, organizationID *uuid.UUID) (*ent.Folder, error) {
	if row, ok := f.byName[name]; ok {
		return row, nil
	}
	if f.byName == nil {
		f.byName = map[string]*ent.Folder{}
		f.orgs = map[string]*uuid.UUID{}
	}
	row := &ent.Folder{ID: uuid.New(), Name: name}
	f.byName[name] = row
	f.orgs[name] = organizationID
	return row, nil
}

type fakeQueue struct {
	enqueued []uuid.UUID
	full     bool
}

func (f *fakeQueue) Enqueue(docID uuid.UUID) bool {
	if f.full {
		return false
	}
	f.enqueued = append(f.enqueued, docID)
	return true
}

func newUploadService(t *testing.T, folderID uuid.UUID, queue *fakeQueue) (*IngestionService, string) {
	t.Helper()
	dir := t.TempDir()
	svc := NewIngestionService(
		&fakeUploadDocs{},
		&fakeFolders{known: map[uuid.UUID]bool{folderID: true}},
		queue,
		dir,
		3,
		slog.Default(),
	)
	return svc, dir
}

func TestUploadBatchAcceptsAndEnqueues(t *testing.T) {
	folderID := uuid.New()
	queue := &fakeQueue{}
	svc, dir := newUploadService(t, folderID, queue)

	content := []byte("%PDF-1.4 oficio")
	resp, err := svc.UploadBatch(context.Background(), &v1.UploadBatchRequest{
		FolderId: folderID.String(),
		Documents: []*v1.DocumentUpload{
			{Filename: "oficio_123.pdf", Content: content},
			{Filename: "cav_abcd12.pdf", Content: []byte("%PDF-1.4 cav")},
		},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.Accepted)
	assert.EqualValues(t, 0, resp.Rejected)
	assert.Len(t, queue.enqueued, 2)

	// bytes are on disk under the content-addressed ref
	require.NotEmpty(t, resp.Results[0].DocumentId)
	sum := sha256.Sum256(content)
	hashHex := hex.EncodeToString(sum[:])
	stored, err := os.ReadFile(filepath.Join(dir, hashHex[:2], hashHex[2:]+".pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(content, stored))
}

func TestUploadBatchDeduplicatesIdenticalContent(t *testing.T) {
	folderID := uuid.New()
	queue := &fakeQueue{}
	svc, _ := newUploadService(t, folderID, queue)

	content := []byte("%PDF-1.4 mismo contenido")
	resp, err := svc.UploadBatch(context.Background(), &v1.UploadBatchRequest{
		FolderId: folderID.String(),
		Documents: []*v1.DocumentUpload{
			{Filename: "oficio_a.pdf", Content: content},
			{Filename: "oficio_b.pdf", Content: content},
		},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.Accepted)
	assert.EqualValues(t, 1, resp.Deduplicated)
	// both acks point at the same tracking id, only one job enqueued
	assert.Equal(t, resp.Results[0].DocumentId, resp.Results[1].DocumentId)
	assert.Len(t, queue.enqueued, 1)
}

func TestUploadBatchRejectsPerDocumentProblems(t *testing.T) {
	folderID := uuid.New()
	svc, _ := newUploadService(t, folderID, &fakeQueue{})

	resp, err := svc.UploadBatch(context.Background(), &v1.UploadBatchRequest{
		FolderId: folderID.String(),
		Documents: []*v1.DocumentUpload{
			{Filename: "minuta.docx", Content: []byte("x")},
			{Filename: "", Content: []byte("x")},
			{Filename: "vacio.pdf"},
		},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, resp.Rejected)
	for _, ack := range resp.Results {
		assert.NotEmpty(t, ack.Error)
		assert.Empty(t, ack.DocumentId)
	}
}

func TestUploadBatchEnforcesBatchLimit(t *testing.T) {
	folderID := uuid.New()
	svc, _ := newUploadService(t, folderID, &fakeQueue{})

	docs := make([]*v1.DocumentUpload, 4) // limit is 3
	for i := range docs {
		docs[i] = &v1.DocumentUpload{Filename: "a.pdf", Content: []byte("x")}
	}
	_, err := svc.UploadBatch(context.Background(), &v1.UploadBatchRequest{
		FolderId:  folderID.String(),
		Documents: docs,
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUploadBatchRejectsUnknownFolder(t *testing.T) {
	svc, _ := newUploadService(t, uuid.New(), &fakeQueue{})

	_, err := svc.UploadBatch(context.Background(), &v1.UploadBatchRequest{
		FolderId:  uuid.New().String(),
		Documents: []*v1.DocumentUpload{{Filename: "a.pdf", Content: []byte("x")}},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUploadBatchResolvesFolderByName(t *testing.T) {
	queue := &fakeQueue{}
	folders := &fakeFolders{}
	svc := NewIngestionService(&fakeUploadDocs{}, folders, queue, t.TempDir(), 3, slog.Default())

	org := uuid.New()
	resp, err := svc.UploadBatch(context.Background(), &v1.UploadBatchRequest{
		FolderName:     "Causa OF-2024-001",
		OrganizationId: org.String(),
		Documents:      []*v1.DocumentUpload{{Filename: "oficio.pdf", Content: []byte("%PDF")}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.Accepted)
	assert.Len(t, queue.enqueued, 1)

	folder := folders.byName["Causa OF-2024-001"]
	require.NotNil(t, folder)
	assert.Equal(t, folder.ID.String(), resp.FolderId)
	require.NotNil(t, folders.orgs["Causa OF-2024-001"])
	assert.Equal(t, org, *folders.orgs["Causa OF-2024-001"])
}

func TestUploadBatchRequiresFolderReference(t *testing.T) {
	svc, _ := newUploadService(t, uuid.New(), &fakeQueue{})

	_, err := svc.UploadBatch(context.Background(), &v1.UploadBatchRequest{
		Documents: []*v1.DocumentUpload{{Filename: "a.pdf", Content: []byte("x")}},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUploadBatchSurfacesQueueBackpressure(t *testing.T) {
	folderID := uuid.New()
	svc, _ := newUploadService(t, folderID, &fakeQueue{full: true})

	resp, err := svc.UploadBatch(context.Background(), &v1.UploadBatchRequest{
		FolderId:  folderID.String(),
		Documents: []*v1.DocumentUpload{{Filename: "oficio.pdf", Content: []byte("%PDF")}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.Rejected)
	assert.Contains(t, resp.Results[0].Error, "queue is full")
}
