// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/folder"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/processeddocument"
)

// ProcessedDocumentUpdate is the builder for updating ProcessedDocument entities.
type ProcessedDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessedDocumentMutation
}

// Where appends a list predicates to the ProcessedDocumentUpdate builder.
func (_u *ProcessedDocumentUpdate) Where(ps ...predicate.ProcessedDocument) *ProcessedDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFolderID sets the "folder_id" field.
func (_u *ProcessedDocumentUpdate) SetFolderID(v uuid.UUID) *ProcessedDocumentUpdate {
	_u.mutation.SetFolderID(v)
	return _u
}

// SetNillableFolderID sets the "folder_id" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableFolderID(v *uuid.UUID) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetFolderID(*v)
	}
	return _u
}

// SetStorageRef sets the "storage_ref" field.
func (_u *ProcessedDocumentUpdate) SetStorageRef(v string) *ProcessedDocumentUpdate {
	_u.mutation.SetStorageRef(v)
	return _u
}

// SetNillableStorageRef sets the "storage_ref" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableStorageRef(v *string) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetStorageRef(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ProcessedDocumentUpdate) SetFilename(v string) *ProcessedDocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableFilename(v *string) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *ProcessedDocumentUpdate) SetFileExt(v string) *ProcessedDocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableFileExt(v *string) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ProcessedDocumentUpdate) SetFileSize(v int) *ProcessedDocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableFileSize(v *int) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ProcessedDocumentUpdate) AddFileSize(v int) *ProcessedDocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ProcessedDocumentUpdate) SetContentHash(v []byte) *ProcessedDocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *ProcessedDocumentUpdate) SetDocType(v string) *ProcessedDocumentUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableDocType(v *string) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ProcessedDocumentUpdate) SetState(v string) *ProcessedDocumentUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableState(v *string) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPairID sets the "pair_id" field.
func (_u *ProcessedDocumentUpdate) SetPairID(v uuid.UUID) *ProcessedDocumentUpdate {
	_u.mutation.SetPairID(v)
	return _u
}

// SetNillablePairID sets the "pair_id" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillablePairID(v *uuid.UUID) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetPairID(*v)
	}
	return _u
}

// ClearPairID clears the value of the "pair_id" field.
func (_u *ProcessedDocumentUpdate) ClearPairID() *ProcessedDocumentUpdate {
	_u.mutation.ClearPairID()
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *ProcessedDocumentUpdate) SetCaseID(v uuid.UUID) *ProcessedDocumentUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableCaseID(v *uuid.UUID) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// ClearCaseID clears the value of the "case_id" field.
func (_u *ProcessedDocumentUpdate) ClearCaseID() *ProcessedDocumentUpdate {
	_u.mutation.ClearCaseID()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ProcessedDocumentUpdate) SetExtractedText(v string) *ProcessedDocumentUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableExtractedText(v *string) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ProcessedDocumentUpdate) ClearExtractedText() *ProcessedDocumentUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *ProcessedDocumentUpdate) SetExtractedFields(v json.RawMessage) *ProcessedDocumentUpdate {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *ProcessedDocumentUpdate) AppendExtractedFields(v json.RawMessage) *ProcessedDocumentUpdate {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *ProcessedDocumentUpdate) ClearExtractedFields() *ProcessedDocumentUpdate {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *ProcessedDocumentUpdate) SetErrorDetail(v string) *ProcessedDocumentUpdate {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableErrorDetail(v *string) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *ProcessedDocumentUpdate) ClearErrorDetail() *ProcessedDocumentUpdate {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ProcessedDocumentUpdate) SetRetryCount(v int) *ProcessedDocumentUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableRetryCount(v *int) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ProcessedDocumentUpdate) AddRetryCount(v int) *ProcessedDocumentUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *ProcessedDocumentUpdate) SetNextAttemptAt(v time.Time) *ProcessedDocumentUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableNextAttemptAt(v *time.Time) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (_u *ProcessedDocumentUpdate) ClearNextAttemptAt() *ProcessedDocumentUpdate {
	_u.mutation.ClearNextAttemptAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProcessedDocumentUpdate) SetCreatedAt(v time.Time) *ProcessedDocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProcessedDocumentUpdate) SetNillableCreatedAt(v *time.Time) *ProcessedDocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessedDocumentUpdate) SetUpdatedAt(v time.Time) *ProcessedDocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFolder sets the "folder" edge to the Folder entity.
func (_u *ProcessedDocumentUpdate) SetFolder(v *Folder) *ProcessedDocumentUpdate {
	return _u.SetFolderID(v.ID)
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_u *ProcessedDocumentUpdate) SetCase(v *InvestigationCase) *ProcessedDocumentUpdate {
	return _u.SetCaseID(v.ID)
}

// Mutation returns the ProcessedDocumentMutation object of the builder.
func (_u *ProcessedDocumentUpdate) Mutation() *ProcessedDocumentMutation {
	return _u.mutation
}

// ClearFolder clears the "folder" edge to the Folder entity.
func (_u *ProcessedDocumentUpdate) ClearFolder() *ProcessedDocumentUpdate {
	_u.mutation.ClearFolder()
	return _u
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (_u *ProcessedDocumentUpdate) ClearCase() *ProcessedDocumentUpdate {
	_u.mutation.ClearCase()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessedDocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessedDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessedDocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processeddocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessedDocumentUpdate) check() error {
	if v, ok := _u.mutation.StorageRef(); ok {
		if err := processeddocument.StorageRefValidator(v); err != nil {
			return &ValidationError{Name: "storage_ref", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.storage_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := processeddocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := processeddocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := processeddocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := processeddocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocType(); ok {
		if err := processeddocument.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := processeddocument.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := processeddocument.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.retry_count": %w`, err)}
		}
	}
	if _u.mutation.FolderCleared() && len(_u.mutation.FolderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessedDocument.folder"`)
	}
	return nil
}

func (_u *ProcessedDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processeddocument.Table, processeddocument.Columns, sqlgraph.NewFieldSpec(processeddocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StorageRef(); ok {
		_spec.SetField(processeddocument.FieldStorageRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(processeddocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(processeddocument.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(processeddocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(processeddocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(processeddocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(processeddocument.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(processeddocument.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.PairID(); ok {
		_spec.SetField(processeddocument.FieldPairID, field.TypeUUID, value)
	}
	if _u.mutation.PairIDCleared() {
		_spec.ClearField(processeddocument.FieldPairID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(processeddocument.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(processeddocument.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(processeddocument.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeddocument.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(processeddocument.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(processeddocument.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(processeddocument.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(processeddocument.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(processeddocument.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(processeddocument.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.NextAttemptAtCleared() {
		_spec.ClearField(processeddocument.FieldNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(processeddocument.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processeddocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FolderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FolderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processeddocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessedDocumentUpdateOne is the builder for updating a single ProcessedDocument entity.
type ProcessedDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessedDocumentMutation
}

// SetFolderID sets the "folder_id" field.
func (_u *ProcessedDocumentUpdateOne) SetFolderID(v uuid.UUID) *ProcessedDocumentUpdateOne {
	_u.mutation.SetFolderID(v)
	return _u
}

// SetNillableFolderID sets the "folder_id" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableFolderID(v *uuid.UUID) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetFolderID(*v)
	}
	return _u
}

// SetStorageRef sets the "storage_ref" field.
func (_u *ProcessedDocumentUpdateOne) SetStorageRef(v string) *ProcessedDocumentUpdateOne {
	_u.mutation.SetStorageRef(v)
	return _u
}

// SetNillableStorageRef sets the "storage_ref" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableStorageRef(v *string) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetStorageRef(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ProcessedDocumentUpdateOne) SetFilename(v string) *ProcessedDocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableFilename(v *string) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *ProcessedDocumentUpdateOne) SetFileExt(v string) *ProcessedDocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableFileExt(v *string) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ProcessedDocumentUpdateOne) SetFileSize(v int) *ProcessedDocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableFileSize(v *int) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ProcessedDocumentUpdateOne) AddFileSize(v int) *ProcessedDocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ProcessedDocumentUpdateOne) SetContentHash(v []byte) *ProcessedDocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *ProcessedDocumentUpdateOne) SetDocType(v string) *ProcessedDocumentUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableDocType(v *string) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ProcessedDocumentUpdateOne) SetState(v string) *ProcessedDocumentUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableState(v *string) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPairID sets the "pair_id" field.
func (_u *ProcessedDocumentUpdateOne) SetPairID(v uuid.UUID) *ProcessedDocumentUpdateOne {
	_u.mutation.SetPairID(v)
	return _u
}

// SetNillablePairID sets the "pair_id" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillablePairID(v *uuid.UUID) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetPairID(*v)
	}
	return _u
}

// ClearPairID clears the value of the "pair_id" field.
func (_u *ProcessedDocumentUpdateOne) ClearPairID() *ProcessedDocumentUpdateOne {
	_u.mutation.ClearPairID()
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *ProcessedDocumentUpdateOne) SetCaseID(v uuid.UUID) *ProcessedDocumentUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableCaseID(v *uuid.UUID) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// ClearCaseID clears the value of the "case_id" field.
func (_u *ProcessedDocumentUpdateOne) ClearCaseID() *ProcessedDocumentUpdateOne {
	_u.mutation.ClearCaseID()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ProcessedDocumentUpdateOne) SetExtractedText(v string) *ProcessedDocumentUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableExtractedText(v *string) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ProcessedDocumentUpdateOne) ClearExtractedText() *ProcessedDocumentUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *ProcessedDocumentUpdateOne) SetExtractedFields(v json.RawMessage) *ProcessedDocumentUpdateOne {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *ProcessedDocumentUpdateOne) AppendExtractedFields(v json.RawMessage) *ProcessedDocumentUpdateOne {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *ProcessedDocumentUpdateOne) ClearExtractedFields() *ProcessedDocumentUpdateOne {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *ProcessedDocumentUpdateOne) SetErrorDetail(v string) *ProcessedDocumentUpdateOne {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableErrorDetail(v *string) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *ProcessedDocumentUpdateOne) ClearErrorDetail() *ProcessedDocumentUpdateOne {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ProcessedDocumentUpdateOne) SetRetryCount(v int) *ProcessedDocumentUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableRetryCount(v *int) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ProcessedDocumentUpdateOne) AddRetryCount(v int) *ProcessedDocumentUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *ProcessedDocumentUpdateOne) SetNextAttemptAt(v time.Time) *ProcessedDocumentUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableNextAttemptAt(v *time.Time) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (_u *ProcessedDocumentUpdateOne) ClearNextAttemptAt() *ProcessedDocumentUpdateOne {
	_u.mutation.ClearNextAttemptAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProcessedDocumentUpdateOne) SetCreatedAt(v time.Time) *ProcessedDocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProcessedDocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *ProcessedDocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessedDocumentUpdateOne) SetUpdatedAt(v time.Time) *ProcessedDocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFolder sets the "folder" edge to the Folder entity.
func (_u *ProcessedDocumentUpdateOne) SetFolder(v *Folder) *ProcessedDocumentUpdateOne {
	return _u.SetFolderID(v.ID)
}

// SetCase sets the "case" edge to the InvestigationCase entity.
func (_u *ProcessedDocumentUpdateOne) SetCase(v *InvestigationCase) *ProcessedDocumentUpdateOne {
	return _u.SetCaseID(v.ID)
}

// Mutation returns the ProcessedDocumentMutation object of the builder.
func (_u *ProcessedDocumentUpdateOne) Mutation() *ProcessedDocumentMutation {
	return _u.mutation
}

// ClearFolder clears the "folder" edge to the Folder entity.
func (_u *ProcessedDocumentUpdateOne) ClearFolder() *ProcessedDocumentUpdateOne {
	_u.mutation.ClearFolder()
	return _u
}

// ClearCase clears the "case" edge to the InvestigationCase entity.
func (_u *ProcessedDocumentUpdateOne) ClearCase() *ProcessedDocumentUpdateOne {
	_u.mutation.ClearCase()
	return _u
}

// Where appends a list predicates to the ProcessedDocumentUpdate builder.
func (_u *ProcessedDocumentUpdateOne) Where(ps ...predicate.ProcessedDocument) *ProcessedDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessedDocumentUpdateOne) Select(field string, fields ...string) *ProcessedDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessedDocument entity.
func (_u *ProcessedDocumentUpdateOne) Save(ctx context.Context) (*ProcessedDocument, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedDocumentUpdateOne) SaveX(ctx context.Context) *ProcessedDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessedDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessedDocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processeddocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessedDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.StorageRef(); ok {
		if err := processeddocument.StorageRefValidator(v); err != nil {
			return &ValidationError{Name: "storage_ref", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.storage_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := processeddocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := processeddocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := processeddocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := processeddocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocType(); ok {
		if err := processeddocument.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := processeddocument.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := processeddocument.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ProcessedDocument.retry_count": %w`, err)}
		}
	}
	if _u.mutation.FolderCleared() && len(_u.mutation.FolderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessedDocument.folder"`)
	}
	return nil
}

func (_u *ProcessedDocumentUpdateOne) sqlSave(ctx context.Context) (_node *ProcessedDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processeddocument.Table, processeddocument.Columns, sqlgraph.NewFieldSpec(processeddocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessedDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processeddocument.FieldID)
		for _, f := range fields {
			if !processeddocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processeddocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StorageRef(); ok {
		_spec.SetField(processeddocument.FieldStorageRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(processeddocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(processeddocument.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(processeddocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(processeddocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(processeddocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(processeddocument.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(processeddocument.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.PairID(); ok {
		_spec.SetField(processeddocument.FieldPairID, field.TypeUUID, value)
	}
	if _u.mutation.PairIDCleared() {
		_spec.ClearField(processeddocument.FieldPairID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(processeddocument.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(processeddocument.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(processeddocument.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeddocument.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(processeddocument.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(processeddocument.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(processeddocument.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(processeddocument.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(processeddocument.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(processeddocument.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.NextAttemptAtCleared() {
		_spec.ClearField(processeddocument.FieldNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(processeddocument.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processeddocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FolderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FolderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessedDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processeddocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
