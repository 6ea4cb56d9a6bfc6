// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/folder"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/processeddocument"
)

// ProcessedDocumentCreate is the builder for creating a ProcessedDocument entity.
type ProcessedDocumentCreate struct {
	config
	mutation *ProcessedDocumentMutation
	hooks    []Hook
}

// SetFolderID sets the "folder_id" field.
func (_c *ProcessedDocumentCreate) SetFolderID(v uuid.UUID) *ProcessedDocumentCreate {
	_c.mutation.SetFolderID(v)
	return _c
}

// SetStorageRef sets the "storage_ref" field.
func (_c *ProcessedDocumentCreate) SetStorageRef(v string) *ProcessedDocumentCreate {
	_c.mutation.SetStorageRef(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *ProcessedDocumentCreate) SetFilename(v string) *ProcessedDocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *ProcessedDocumentCreate) SetFileExt(v string) *ProcessedDocumentCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *ProcessedDocumentCreate) SetFileSize(v int) *ProcessedDocumentCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *ProcessedDocumentCreate) SetContentHash(v []byte) *ProcessedDocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *ProcessedDocumentCreate) SetDocType(v string) *ProcessedDocumentCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_c *ProcessedDocumentCreate) SetNillableDocType(v *string) *ProcessedDocumentCreate {
	if v != nil {
		_c.SetDocType(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ProcessedDocumentCreate) SetState(v string) *ProcessedDocumentCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ProcessedDocumentCreate) SetNillableState(v *string) *ProcessedDocumentCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetPairID sets the "pair_id" field.
func (_c *ProcessedDocumentCreate) SetPairID(v uuid.UUID) *ProcessedDocumentCreate {
	_c.mutation.SetPairID(v)
	return _c
}

// SetNillablePairID sets the "pair_id" field if the given value is not nil.
func (_c *ProcessedDocumentCreate) SetNillablePairID(v *uuid.UUID) *ProcessedDocumentCreate {
	if v != nil {
		_c.SetPairID(*v)
	}
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *ProcessedDocumentCreate) SetCaseID(v uuid.UUID) *ProcessedDocumentCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_c *ProcessedDocumentCreate) SetNillableCaseID(v *uuid.UUID) *ProcessedDocumentCreate {
	if v != nil {
		_c.SetCaseID(*v)
	}
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *ProcessedDocumentCreate) SetExtractedText(v string) *ProcessedDocumentCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *ProcessedDocumentCreate) SetNillableExtractedText(v *string) *ProcessedDocumentCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetExtractedFields sets the "extracted_fields" field.
func (_c *ProcessedDocumentCreate) SetExtractedFields(v json.RawMessage) *ProcessedDocumentCreate {
	_c.mutation.SetExtractedFields(v)
	return _c
}

// SetErrorDetail sets the "error_detail" field.
func (_c *ProcessedDocumentCreate) SetErrorDetail(v string) *ProcessedDocumentCreate {
	_c.mutation.SetErrorDetail(v)
	return _c
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_c *ProcessedDocumentCreate) SetNillableErrorDetail(v *string) *ProcessedDocumentCreate {
	if v != nil {
		_c.SetErrorDetail(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *ProcessedDocumentCreate) SetRetryCount(v int) *ProcessedDocumentCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *ProcessedDocumentCreate) SetNillableRetryCount(v *int) *ProcessedDocumentCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *ProcessedDocumentCreate) SetNextAttemptAt(v time.Time) *ProcessedDocumentCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *ProcessedDocumentCreate) SetNillableNextAttemptAt(v *time.Time) *ProcessedDocumentCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessedDocumentCreate) SetCreatedAt(v time.Time) *ProcessedDocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessedDocumentCreate) SetNillableCreatedAt(v *time.Time) *ProcessedDocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProcessedDocumentCreate) SetUpdatedAt(v time.Time) *ProcessedDocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProcessedDocumentCreate) SetNillableUpdatedAt(v *time.Time) *ProcessedDocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessedDocumentCreate) SetID(v uuid.UUID) *ProcessedDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessedDocumentCreate) SetNillableID(v *uuid.UUID) *ProcessedDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFolder sets the "folder" edge to the Folder entity.
func (_c *ProcessedDocumentCreate) SetFolder(v *Folder) *ProcessedDocumentCreate {
	return _c.SetFolderID(v.ID)
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_c *ProcessedDocumentCreate) SetCase(v *InvestigationCase) *ProcessedDocumentCreate {
	return _c.SetCaseID(v.ID)
}

// Mutation returns the ProcessedDocumentMutation object of the builder.
func (_c *ProcessedDocumentCreate) Mutation() *ProcessedDocumentMutation {
	return _c.mutation
}

// Save creates the ProcessedDocument in the database.
func (_c *ProcessedDocumentCreate) Save(ctx context.Context) (*ProcessedDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessedDocumentCreate) SaveX(ctx context.Context) *ProcessedDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessedDocumentCreate) defaults() {
	if _, ok := _c.mutation.DocType(); !ok {
		v := processeddocument.DefaultDocType
		_c.mutation.SetDocType(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := processeddocument.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := processeddocument.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processeddocument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := processeddocument.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processeddocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessedDocumentCreate) check() error {
	if _, ok := _c.mutation.FolderID(); !ok {
		return &ValidationError{Name: "folder_id", err: errors.New(`ent: missing required field "ProcessedDocument.folder_id"`)}
	}
	if _, ok := _c.mutation.StorageRef(); !ok {
		return &ValidationError{Name: "storage_ref", err: errors.New(`ent: missing required field "ProcessedDocument.storage_ref"`)}
	}
	if v, ok := _c.mutation.StorageRef(); ok {
		if err := processeddocument.StorageRefValidator(v); err != nil {
			return &ValidationError{Name: "storage_ref", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.storage_ref": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ProcessedDocument.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := processeddocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "ProcessedDocument.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := processeddocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "ProcessedDocument.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := processeddocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "ProcessedDocument.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := processeddocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "ProcessedDocument.doc_type"`)}
	}
	if v, ok := _c.mutation.DocType(); ok {
		if err := processeddocument.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.doc_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ProcessedDocument.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := processeddocument.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "ProcessedDocument.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := processeddocument.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessedDocument.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProcessedDocument.updated_at"`)}
	}
	if len(_c.mutation.FolderIDs()) == 0 {
		return &ValidationError{Name: "folder", err: errors.New(`ent: missing required edge "ProcessedDocument.folder"`)}
	}
	return nil
}

func (_c *ProcessedDocumentCreate) sqlSave(ctx context.Context) (*ProcessedDocument, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessedDocumentCreate) createSpec() (*ProcessedDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessedDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processeddocument.Table, sqlgraph.NewFieldSpec(processeddocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StorageRef(); ok {
		_spec.SetField(processeddocument.FieldStorageRef, field.TypeString, value)
		_node.StorageRef = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(processeddocument.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(processeddocument.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(processeddocument.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(processeddocument.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(processeddocument.FieldDocType, field.TypeString, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(processeddocument.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.PairID(); ok {
		_spec.SetField(processeddocument.FieldPairID, field.TypeUUID, value)
		_node.PairID = &value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(processeddocument.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = &value
	}
	if value, ok := _c.mutation.ExtractedFields(); ok {
		_spec.SetField(processeddocument.FieldExtractedFields, field.TypeJSON, value)
		_node.ExtractedFields = value
	}
	if value, ok := _c.mutation.ErrorDetail(); ok {
		_spec.SetField(processeddocument.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(processeddocument.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(processeddocument.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processeddocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(processeddocument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FolderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processeddocument.FolderTable,
			Columns: []string{processeddocument.FolderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(folder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FolderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processeddocument.CaseTable,
			Columns: []string{processeddocument.CaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investigationcase.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CaseID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessedDocumentCreateBulk is the builder for creating many ProcessedDocument entities in bulk.
type ProcessedDocumentCreateBulk struct {
	config
	err      error
	builders []*ProcessedDocumentCreate
}

// Save creates the ProcessedDocument entities in the database.
func (_c *ProcessedDocumentCreateBulk) Save(ctx context.Context) ([]*ProcessedDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessedDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessedDocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProcessedDocumentCreateBulk) SaveX(ctx context.Context) []*ProcessedDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
