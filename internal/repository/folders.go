package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	entfolder "github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/folder"
)

type FolderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Folder, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	GetOrCreate(ctx context.Context, name string, organizationID *uuid.UUID) (*ent.Folder, error)
}

type folderRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFolderRepository(entc *ent.Client, logger *slog.Logger) FolderRepository {
	return &folderRepo{ent: entc, logger: logger}
}

func (r *folderRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Folder, error) {
	return r.ent.Folder.Get(ctx, id)
}

func (r *folderRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Folder.Query().Where(entfolder.ID(id)).Exist(ctx)
}

func (r *folderRepo) GetOrCreate(ctx context.Context, name string, organizationID *uuid.UUID) (*ent.Folder, error) {
	row, err := r.ent.Folder.Query().Where(entfolder.Name(name)).First(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	create := r.ent.Folder.Create().SetName(name)
	if organizationID != nil {
		create.SetOrganizationID(*organizationID)
	}
	row, err = create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create folder", "name", name, "error", err)
		return nil, err
	}
	r.logger.Info("folder created", "folder_id", row.ID, "name", name)
	return row, nil
}
