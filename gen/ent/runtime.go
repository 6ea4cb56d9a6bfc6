// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/patriciodunstan/back-investigacion-vehiculos/db/ent/schema"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseactivity"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseaddress"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/caseowner"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/folder"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/investigationcase"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/processeddocument"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/registrycredit"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent/vehicle"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	caseactivityFields := schema.CaseActivity{}.Fields()
	_ = caseactivityFields
	// caseactivityDescKind is the schema descriptor for kind field.
	caseactivityDescKind := caseactivityFields[2].Descriptor()
	// caseactivity.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	caseactivity.KindValidator = caseactivityDescKind.Validators[0].(func(string) error)
	// caseactivityDescCreatedAt is the schema descriptor for created_at field.
	caseactivityDescCreatedAt := caseactivityFields[4].Descriptor()
	// caseactivity.DefaultCreatedAt holds the default value on creation for the created_at field.
	caseactivity.DefaultCreatedAt = caseactivityDescCreatedAt.Default.(func() time.Time)
	// caseactivityDescID is the schema descriptor for id field.
	caseactivityDescID := caseactivityFields[0].Descriptor()
	// caseactivity.DefaultID holds the default value on creation for the id field.
	caseactivity.DefaultID = caseactivityDescID.Default.(func() uuid.UUID)
	caseaddressFields := schema.CaseAddress{}.Fields()
	_ = caseaddressFields
	// caseaddressDescStreet is the schema descriptor for street field.
	caseaddressDescStreet := caseaddressFields[2].Descriptor()
	// caseaddress.StreetValidator is a validator for the "street" field. It is called by the builders before save.
	caseaddress.StreetValidator = caseaddressDescStreet.Validators[0].(func(string) error)
	// caseaddressDescSource is the schema descriptor for source field.
	caseaddressDescSource := caseaddressFields[5].Descriptor()
	// caseaddress.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	caseaddress.SourceValidator = caseaddressDescSource.Validators[0].(func(string) error)
	// caseaddressDescID is the schema descriptor for id field.
	caseaddressDescID := caseaddressFields[0].Descriptor()
	// caseaddress.DefaultID holds the default value on creation for the id field.
	caseaddress.DefaultID = caseaddressDescID.Default.(func() uuid.UUID)
	caseownerFields := schema.CaseOwner{}.Fields()
	_ = caseownerFields
	// caseownerDescSource is the schema descriptor for source field.
	caseownerDescSource := caseownerFields[4].Descriptor()
	// caseowner.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	caseowner.SourceValidator = caseownerDescSource.Validators[0].(func(string) error)
	// caseownerDescID is the schema descriptor for id field.
	caseownerDescID := caseownerFields[0].Descriptor()
	// caseowner.DefaultID holds the default value on creation for the id field.
	caseowner.DefaultID = caseownerDescID.Default.(func() uuid.UUID)
	folderFields := schema.Folder{}.Fields()
	_ = folderFields
	// folderDescName is the schema descriptor for name field.
	folderDescName := folderFields[1].Descriptor()
	// folder.NameValidator is a validator for the "name" field. It is called by the builders before save.
	folder.NameValidator = folderDescName.Validators[0].(func(string) error)
	// folderDescCreatedAt is the schema descriptor for created_at field.
	folderDescCreatedAt := folderFields[3].Descriptor()
	// folder.DefaultCreatedAt holds the default value on creation for the created_at field.
	folder.DefaultCreatedAt = folderDescCreatedAt.Default.(func() time.Time)
	// folderDescUpdatedAt is the schema descriptor for updated_at field.
	folderDescUpdatedAt := folderFields[4].Descriptor()
	// folder.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	folder.DefaultUpdatedAt = folderDescUpdatedAt.Default.(func() time.Time)
	// folder.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	folder.UpdateDefaultUpdatedAt = folderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// folderDescID is the schema descriptor for id field.
	folderDescID := folderFields[0].Descriptor()
	// folder.DefaultID holds the default value on creation for the id field.
	folder.DefaultID = folderDescID.Default.(func() uuid.UUID)
	investigationcaseFields := schema.InvestigationCase{}.Fields()
	_ = investigationcaseFields
	// investigationcaseDescCaseNumber is the schema descriptor for case_number field.
	investigationcaseDescCaseNumber := investigationcaseFields[2].Descriptor()
	// investigationcase.CaseNumberValidator is a validator for the "case_number" field. It is called by the builders before save.
	investigationcase.CaseNumberValidator = investigationcaseDescCaseNumber.Validators[0].(func(string) error)
	// investigationcaseDescCreatedAt is the schema descriptor for created_at field.
	investigationcaseDescCreatedAt := investigationcaseFields[6].Descriptor()
	// investigationcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	investigationcase.DefaultCreatedAt = investigationcaseDescCreatedAt.Default.(func() time.Time)
	// investigationcaseDescUpdatedAt is the schema descriptor for updated_at field.
	investigationcaseDescUpdatedAt := investigationcaseFields[7].Descriptor()
	// investigationcase.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	investigationcase.DefaultUpdatedAt = investigationcaseDescUpdatedAt.Default.(func() time.Time)
	// investigationcase.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	investigationcase.UpdateDefaultUpdatedAt = investigationcaseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// investigationcaseDescID is the schema descriptor for id field.
	investigationcaseDescID := investigationcaseFields[0].Descriptor()
	// investigationcase.DefaultID holds the default value on creation for the id field.
	investigationcase.DefaultID = investigationcaseDescID.Default.(func() uuid.UUID)
	processeddocumentFields := schema.ProcessedDocument{}.Fields()
	_ = processeddocumentFields
	// processeddocumentDescStorageRef is the schema descriptor for storage_ref field.
	processeddocumentDescStorageRef := processeddocumentFields[2].Descriptor()
	// processeddocument.StorageRefValidator is a validator for the "storage_ref" field. It is called by the builders before save.
	processeddocument.StorageRefValidator = processeddocumentDescStorageRef.Validators[0].(func(string) error)
	// processeddocumentDescFilename is the schema descriptor for filename field.
	processeddocumentDescFilename := processeddocumentFields[3].Descriptor()
	// processeddocument.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	processeddocument.FilenameValidator = processeddocumentDescFilename.Validators[0].(func(string) error)
	// processeddocumentDescFileExt is the schema descriptor for file_ext field.
	processeddocumentDescFileExt := processeddocumentFields[4].Descriptor()
	// processeddocument.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	processeddocument.FileExtValidator = processeddocumentDescFileExt.Validators[0].(func(string) error)
	// processeddocumentDescFileSize is the schema descriptor for file_size field.
	processeddocumentDescFileSize := processeddocumentFields[5].Descriptor()
	// processeddocument.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	processeddocument.FileSizeValidator = processeddocumentDescFileSize.Validators[0].(func(int) error)
	// processeddocumentDescContentHash is the schema descriptor for content_hash field.
	processeddocumentDescContentHash := processeddocumentFields[6].Descriptor()
	// processeddocument.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	processeddocument.ContentHashValidator = processeddocumentDescContentHash.Validators[0].(func([]byte) error)
	// processeddocumentDescDocType is the schema descriptor for doc_type field.
	processeddocumentDescDocType := processeddocumentFields[7].Descriptor()
	// processeddocument.DefaultDocType holds the default value on creation for the doc_type field.
	processeddocument.DefaultDocType = processeddocumentDescDocType.Default.(string)
	// processeddocument.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	processeddocument.DocTypeValidator = processeddocumentDescDocType.Validators[0].(func(string) error)
	// processeddocumentDescState is the schema descriptor for state field.
	processeddocumentDescState := processeddocumentFields[8].Descriptor()
	// processeddocument.DefaultState holds the default value on creation for the state field.
	processeddocument.DefaultState = processeddocumentDescState.Default.(string)
	// processeddocument.StateValidator is a validator for the "state" field. It is called by the builders before save.
	processeddocument.StateValidator = processeddocumentDescState.Validators[0].(func(string) error)
	// processeddocumentDescRetryCount is the schema descriptor for retry_count field.
	processeddocumentDescRetryCount := processeddocumentFields[14].Descriptor()
	// processeddocument.DefaultRetryCount holds the default value on creation for the retry_count field.
	processeddocument.DefaultRetryCount = processeddocumentDescRetryCount.Default.(int)
	// processeddocument.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	processeddocument.RetryCountValidator = processeddocumentDescRetryCount.Validators[0].(func(int) error)
	// processeddocumentDescCreatedAt is the schema descriptor for created_at field.
	processeddocumentDescCreatedAt := processeddocumentFields[16].Descriptor()
	// processeddocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	processeddocument.DefaultCreatedAt = processeddocumentDescCreatedAt.Default.(func() time.Time)
	// processeddocumentDescUpdatedAt is the schema descriptor for updated_at field.
	processeddocumentDescUpdatedAt := processeddocumentFields[17].Descriptor()
	// processeddocument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	processeddocument.DefaultUpdatedAt = processeddocumentDescUpdatedAt.Default.(func() time.Time)
	// processeddocument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	processeddocument.UpdateDefaultUpdatedAt = processeddocumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// processeddocumentDescID is the schema descriptor for id field.
	processeddocumentDescID := processeddocumentFields[0].Descriptor()
	// processeddocument.DefaultID holds the default value on creation for the id field.
	processeddocument.DefaultID = processeddocumentDescID.Default.(func() uuid.UUID)
	registrycreditFields := schema.RegistryCredit{}.Fields()
	_ = registrycreditFields
	// registrycreditDescSubject is the schema descriptor for subject field.
	registrycreditDescSubject := registrycreditFields[1].Descriptor()
	// registrycredit.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	registrycredit.SubjectValidator = registrycreditDescSubject.Validators[0].(func(string) error)
	// registrycreditDescKeyTail is the schema descriptor for key_tail field.
	registrycreditDescKeyTail := registrycreditFields[2].Descriptor()
	// registrycredit.KeyTailValidator is a validator for the "key_tail" field. It is called by the builders before save.
	registrycredit.KeyTailValidator = registrycreditDescKeyTail.Validators[0].(func(string) error)
	// registrycreditDescConsumedAt is the schema descriptor for consumed_at field.
	registrycreditDescConsumedAt := registrycreditFields[3].Descriptor()
	// registrycredit.DefaultConsumedAt holds the default value on creation for the consumed_at field.
	registrycredit.DefaultConsumedAt = registrycreditDescConsumedAt.Default.(func() time.Time)
	// registrycreditDescID is the schema descriptor for id field.
	registrycreditDescID := registrycreditFields[0].Descriptor()
	// registrycredit.DefaultID holds the default value on creation for the id field.
	registrycredit.DefaultID = registrycreditDescID.Default.(func() uuid.UUID)
	vehicleFields := schema.Vehicle{}.Fields()
	_ = vehicleFields
	// vehicleDescPlate is the schema descriptor for plate field.
	vehicleDescPlate := vehicleFields[2].Descriptor()
	// vehicle.PlateValidator is a validator for the "plate" field. It is called by the builders before save.
	vehicle.PlateValidator = vehicleDescPlate.Validators[0].(func(string) error)
	// vehicleDescID is the schema descriptor for id field.
	vehicleDescID := vehicleFields[0].Descriptor()
	// vehicle.DefaultID holds the default value on creation for the id field.
	vehicle.DefaultID = vehicleDescID.Default.(func() uuid.UUID)
}
