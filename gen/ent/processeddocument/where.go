// Code generated by ent, DO NOT EDIT.

package processeddocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldID, id))
}

// FolderID applies equality check predicate on the "folder_id" field. It's identical to FolderIDEQ.
func FolderID(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldFolderID, v))
}

// StorageRef applies equality check predicate on the "storage_ref" field. It's identical to StorageRefEQ.
func StorageRef(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldStorageRef, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldFilename, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldFileExt, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldFileSize, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldContentHash, v))
}

// DocType applies equality check predicate on the "doc_type" field. It's identical to DocTypeEQ.
func DocType(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldDocType, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldState, v))
}

// PairID applies equality check predicate on the "pair_id" field. It's identical to PairIDEQ.
func PairID(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldPairID, v))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldCaseID, v))
}

// ExtractedText applies equality check predicate on the "extracted_text" field. It's identical to ExtractedTextEQ.
func ExtractedText(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldExtractedText, v))
}

// ErrorDetail applies equality check predicate on the "error_detail" field. It's identical to ErrorDetailEQ.
func ErrorDetail(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldErrorDetail, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldRetryCount, v))
}

// NextAttemptAt applies equality check predicate on the "next_attempt_at" field. It's identical to NextAttemptAtEQ.
func NextAttemptAt(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldNextAttemptAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// FolderIDEQ applies the EQ predicate on the "folder_id" field.
func FolderIDEQ(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldFolderID, v))
}

// FolderIDNEQ applies the NEQ predicate on the "folder_id" field.
func FolderIDNEQ(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldFolderID, v))
}

// FolderIDIn applies the In predicate on the "folder_id" field.
func FolderIDIn(vs ...uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldFolderID, vs...))
}

// FolderIDNotIn applies the NotIn predicate on the "folder_id" field.
func FolderIDNotIn(vs ...uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldFolderID, vs...))
}

// StorageRefEQ applies the EQ predicate on the "storage_ref" field.
func StorageRefEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldStorageRef, v))
}

// StorageRefNEQ applies the NEQ predicate on the "storage_ref" field.
func StorageRefNEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldStorageRef, v))
}

// StorageRefIn applies the In predicate on the "storage_ref" field.
func StorageRefIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldStorageRef, vs...))
}

// StorageRefNotIn applies the NotIn predicate on the "storage_ref" field.
func StorageRefNotIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldStorageRef, vs...))
}

// StorageRefGT applies the GT predicate on the "storage_ref" field.
func StorageRefGT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldStorageRef, v))
}

// StorageRefGTE applies the GTE predicate on the "storage_ref" field.
func StorageRefGTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldStorageRef, v))
}

// StorageRefLT applies the LT predicate on the "storage_ref" field.
func StorageRefLT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldStorageRef, v))
}

// StorageRefLTE applies the LTE predicate on the "storage_ref" field.
func StorageRefLTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldStorageRef, v))
}

// StorageRefContains applies the Contains predicate on the "storage_ref" field.
func StorageRefContains(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContains(FieldStorageRef, v))
}

// StorageRefHasPrefix applies the HasPrefix predicate on the "storage_ref" field.
func StorageRefHasPrefix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasPrefix(FieldStorageRef, v))
}

// StorageRefHasSuffix applies the HasSuffix predicate on the "storage_ref" field.
func StorageRefHasSuffix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasSuffix(FieldStorageRef, v))
}

// StorageRefEqualFold applies the EqualFold predicate on the "storage_ref" field.
func StorageRefEqualFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEqualFold(FieldStorageRef, v))
}

// StorageRefContainsFold applies the ContainsFold predicate on the "storage_ref" field.
func StorageRefContainsFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContainsFold(FieldStorageRef, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContainsFold(FieldFilename, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContainsFold(FieldFileExt, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldFileSize, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldContentHash, v))
}

// DocTypeEQ applies the EQ predicate on the "doc_type" field.
func DocTypeEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldDocType, v))
}

// DocTypeNEQ applies the NEQ predicate on the "doc_type" field.
func DocTypeNEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldDocType, v))
}

// DocTypeIn applies the In predicate on the "doc_type" field.
func DocTypeIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldDocType, vs...))
}

// DocTypeNotIn applies the NotIn predicate on the "doc_type" field.
func DocTypeNotIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldDocType, vs...))
}

// DocTypeGT applies the GT predicate on the "doc_type" field.
func DocTypeGT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldDocType, v))
}

// DocTypeGTE applies the GTE predicate on the "doc_type" field.
func DocTypeGTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldDocType, v))
}

// DocTypeLT applies the LT predicate on the "doc_type" field.
func DocTypeLT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldDocType, v))
}

// DocTypeLTE applies the LTE predicate on the "doc_type" field.
func DocTypeLTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldDocType, v))
}

// DocTypeContains applies the Contains predicate on the "doc_type" field.
func DocTypeContains(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContains(FieldDocType, v))
}

// DocTypeHasPrefix applies the HasPrefix predicate on the "doc_type" field.
func DocTypeHasPrefix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasPrefix(FieldDocType, v))
}

// DocTypeHasSuffix applies the HasSuffix predicate on the "doc_type" field.
func DocTypeHasSuffix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasSuffix(FieldDocType, v))
}

// DocTypeEqualFold applies the EqualFold predicate on the "doc_type" field.
func DocTypeEqualFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEqualFold(FieldDocType, v))
}

// DocTypeContainsFold applies the ContainsFold predicate on the "doc_type" field.
func DocTypeContainsFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContainsFold(FieldDocType, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContainsFold(FieldState, v))
}

// PairIDEQ applies the EQ predicate on the "pair_id" field.
func PairIDEQ(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldPairID, v))
}

// PairIDNEQ applies the NEQ predicate on the "pair_id" field.
func PairIDNEQ(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldPairID, v))
}

// PairIDIn applies the In predicate on the "pair_id" field.
func PairIDIn(vs ...uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldPairID, vs...))
}

// PairIDNotIn applies the NotIn predicate on the "pair_id" field.
func PairIDNotIn(vs ...uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldPairID, vs...))
}

// PairIDGT applies the GT predicate on the "pair_id" field.
func PairIDGT(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldPairID, v))
}

// PairIDGTE applies the GTE predicate on the "pair_id" field.
func PairIDGTE(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldPairID, v))
}

// PairIDLT applies the LT predicate on the "pair_id" field.
func PairIDLT(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldPairID, v))
}

// PairIDLTE applies the LTE predicate on the "pair_id" field.
func PairIDLTE(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldPairID, v))
}

// PairIDIsNil applies the IsNil predicate on the "pair_id" field.
func PairIDIsNil() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIsNull(FieldPairID))
}

// PairIDNotNil applies the NotNil predicate on the "pair_id" field.
func PairIDNotNil() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotNull(FieldPairID))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...uuid.UUID) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDIsNil applies the IsNil predicate on the "case_id" field.
func CaseIDIsNil() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIsNull(FieldCaseID))
}

// CaseIDNotNil applies the NotNil predicate on the "case_id" field.
func CaseIDNotNil() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotNull(FieldCaseID))
}

// ExtractedTextEQ applies the EQ predicate on the "extracted_text" field.
func ExtractedTextEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractedTextNEQ applies the NEQ predicate on the "extracted_text" field.
func ExtractedTextNEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldExtractedText, v))
}

// ExtractedTextIn applies the In predicate on the "extracted_text" field.
func ExtractedTextIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldExtractedText, vs...))
}

// ExtractedTextNotIn applies the NotIn predicate on the "extracted_text" field.
func ExtractedTextNotIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldExtractedText, vs...))
}

// ExtractedTextGT applies the GT predicate on the "extracted_text" field.
func ExtractedTextGT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldExtractedText, v))
}

// ExtractedTextGTE applies the GTE predicate on the "extracted_text" field.
func ExtractedTextGTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldExtractedText, v))
}

// ExtractedTextLT applies the LT predicate on the "extracted_text" field.
func ExtractedTextLT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldExtractedText, v))
}

// ExtractedTextLTE applies the LTE predicate on the "extracted_text" field.
func ExtractedTextLTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldExtractedText, v))
}

// ExtractedTextContains applies the Contains predicate on the "extracted_text" field.
func ExtractedTextContains(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContains(FieldExtractedText, v))
}

// ExtractedTextHasPrefix applies the HasPrefix predicate on the "extracted_text" field.
func ExtractedTextHasPrefix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasPrefix(FieldExtractedText, v))
}

// ExtractedTextHasSuffix applies the HasSuffix predicate on the "extracted_text" field.
func ExtractedTextHasSuffix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasSuffix(FieldExtractedText, v))
}

// ExtractedTextIsNil applies the IsNil predicate on the "extracted_text" field.
func ExtractedTextIsNil() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIsNull(FieldExtractedText))
}

// ExtractedTextNotNil applies the NotNil predicate on the "extracted_text" field.
func ExtractedTextNotNil() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotNull(FieldExtractedText))
}

// ExtractedTextEqualFold applies the EqualFold predicate on the "extracted_text" field.
func ExtractedTextEqualFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEqualFold(FieldExtractedText, v))
}

// ExtractedTextContainsFold applies the ContainsFold predicate on the "extracted_text" field.
func ExtractedTextContainsFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContainsFold(FieldExtractedText, v))
}

// ExtractedFieldsIsNil applies the IsNil predicate on the "extracted_fields" field.
func ExtractedFieldsIsNil() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIsNull(FieldExtractedFields))
}

// ExtractedFieldsNotNil applies the NotNil predicate on the "extracted_fields" field.
func ExtractedFieldsNotNil() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotNull(FieldExtractedFields))
}

// ErrorDetailEQ applies the EQ predicate on the "error_detail" field.
func ErrorDetailEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldErrorDetail, v))
}

// ErrorDetailNEQ applies the NEQ predicate on the "error_detail" field.
func ErrorDetailNEQ(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldErrorDetail, v))
}

// ErrorDetailIn applies the In predicate on the "error_detail" field.
func ErrorDetailIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldErrorDetail, vs...))
}

// ErrorDetailNotIn applies the NotIn predicate on the "error_detail" field.
func ErrorDetailNotIn(vs ...string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldErrorDetail, vs...))
}

// ErrorDetailGT applies the GT predicate on the "error_detail" field.
func ErrorDetailGT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldErrorDetail, v))
}

// ErrorDetailGTE applies the GTE predicate on the "error_detail" field.
func ErrorDetailGTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldErrorDetail, v))
}

// ErrorDetailLT applies the LT predicate on the "error_detail" field.
func ErrorDetailLT(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldErrorDetail, v))
}

// ErrorDetailLTE applies the LTE predicate on the "error_detail" field.
func ErrorDetailLTE(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldErrorDetail, v))
}

// ErrorDetailContains applies the Contains predicate on the "error_detail" field.
func ErrorDetailContains(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContains(FieldErrorDetail, v))
}

// ErrorDetailHasPrefix applies the HasPrefix predicate on the "error_detail" field.
func ErrorDetailHasPrefix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasPrefix(FieldErrorDetail, v))
}

// ErrorDetailHasSuffix applies the HasSuffix predicate on the "error_detail" field.
func ErrorDetailHasSuffix(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldHasSuffix(FieldErrorDetail, v))
}

// ErrorDetailIsNil applies the IsNil predicate on the "error_detail" field.
func ErrorDetailIsNil() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIsNull(FieldErrorDetail))
}

// ErrorDetailNotNil applies the NotNil predicate on the "error_detail" field.
func ErrorDetailNotNil() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotNull(FieldErrorDetail))
}

// ErrorDetailEqualFold applies the EqualFold predicate on the "error_detail" field.
func ErrorDetailEqualFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEqualFold(FieldErrorDetail, v))
}

// ErrorDetailContainsFold applies the ContainsFold predicate on the "error_detail" field.
func ErrorDetailContainsFold(v string) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldContainsFold(FieldErrorDetail, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldRetryCount, v))
}

// NextAttemptAtEQ applies the EQ predicate on the "next_attempt_at" field.
func NextAttemptAtEQ(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtNEQ applies the NEQ predicate on the "next_attempt_at" field.
func NextAttemptAtNEQ(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtIn applies the In predicate on the "next_attempt_at" field.
func NextAttemptAtIn(vs ...time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtNotIn applies the NotIn predicate on the "next_attempt_at" field.
func NextAttemptAtNotIn(vs ...time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtGT applies the GT predicate on the "next_attempt_at" field.
func NextAttemptAtGT(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldNextAttemptAt, v))
}

// NextAttemptAtGTE applies the GTE predicate on the "next_attempt_at" field.
func NextAttemptAtGTE(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldNextAttemptAt, v))
}

// NextAttemptAtLT applies the LT predicate on the "next_attempt_at" field.
func NextAttemptAtLT(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldNextAttemptAt, v))
}

// NextAttemptAtLTE applies the LTE predicate on the "next_attempt_at" field.
func NextAttemptAtLTE(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldNextAttemptAt, v))
}

// NextAttemptAtIsNil applies the IsNil predicate on the "next_attempt_at" field.
func NextAttemptAtIsNil() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIsNull(FieldNextAttemptAt))
}

// NextAttemptAtNotNil applies the NotNil predicate on the "next_attempt_at" field.
func NextAttemptAtNotNil() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotNull(FieldNextAttemptAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFolder applies the HasEdge predicate on the "folder" edge.
func HasFolder() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FolderTable, FolderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFolderWith applies the HasEdge predicate on the "folder" edge with a given conditions (other predicates).
func HasFolderWith(preds ...predicate.Folder) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(func(s *sql.Selector) {
		step := newFolderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCase applies the HasEdge predicate on the "case" edge.
func HasCase() predicate.ProcessedDocument {
	return predicate.ProcessedDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CaseTable, CaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCaseWith applies the HasEdge predicate on the "case" edge with a given conditions (other predicates).
func HasCaseWith(preds ...predicate.InvestigationCase) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(func(s *sql.Selector) {
		step := newCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessedDocument) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessedDocument) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessedDocument) predicate.ProcessedDocument {
	return predicate.ProcessedDocument(sql.NotPredicates(p))
}
