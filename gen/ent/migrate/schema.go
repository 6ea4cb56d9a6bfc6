// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CaseActivitiesColumns holds the columns for the "case_activities" table.
	CaseActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeUUID},
	}
	// CaseActivitiesTable holds the schema information for the "case_activities" table.
	CaseActivitiesTable = &schema.Table{
		Name:       "case_activities",
		Columns:    CaseActivitiesColumns,
		PrimaryKey: []*schema.Column{CaseActivitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "case_activities_investigation_cases_activities",
				Columns:    []*schema.Column{CaseActivitiesColumns[4]},
				RefColumns: []*schema.Column{InvestigationCasesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "caseactivity_case_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CaseActivitiesColumns[4], CaseActivitiesColumns[3]},
			},
		},
	}
	// CaseAddressesColumns holds the columns for the "case_addresses" table.
	CaseAddressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "street", Type: field.TypeString},
		{Name: "locality", Type: field.TypeString, Nullable: true},
		{Name: "region", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeUUID},
	}
	// CaseAddressesTable holds the schema information for the "case_addresses" table.
	CaseAddressesTable = &schema.Table{
		Name:       "case_addresses",
		Columns:    CaseAddressesColumns,
		PrimaryKey: []*schema.Column{CaseAddressesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "case_addresses_investigation_cases_addresses",
				Columns:    []*schema.Column{CaseAddressesColumns[5]},
				RefColumns: []*schema.Column{InvestigationCasesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// CaseOwnersColumns holds the columns for the "case_owners" table.
	CaseOwnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "national_id", Type: field.TypeString, Nullable: true},
		{Name: "full_name", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeUUID},
	}
	// CaseOwnersTable holds the schema information for the "case_owners" table.
	CaseOwnersTable = &schema.Table{
		Name:       "case_owners",
		Columns:    CaseOwnersColumns,
		PrimaryKey: []*schema.Column{CaseOwnersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "case_owners_investigation_cases_owners",
				Columns:    []*schema.Column{CaseOwnersColumns[4]},
				RefColumns: []*schema.Column{InvestigationCasesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// FoldersColumns holds the columns for the "folders" table.
	FoldersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "organization_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FoldersTable holds the schema information for the "folders" table.
	FoldersTable = &schema.Table{
		Name:       "folders",
		Columns:    FoldersColumns,
		PrimaryKey: []*schema.Column{FoldersColumns[0]},
	}
	// InvestigationCasesColumns holds the columns for the "investigation_cases" table.
	InvestigationCasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "case_number", Type: field.TypeString, Unique: true},
		{Name: "legal_context", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "enrichment_raw", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "folder_id", Type: field.TypeUUID},
	}
	// InvestigationCasesTable holds the schema information for the "investigation_cases" table.
	InvestigationCasesTable = &schema.Table{
		Name:       "investigation_cases",
		Columns:    InvestigationCasesColumns,
		PrimaryKey: []*schema.Column{InvestigationCasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "investigation_cases_folders_cases",
				Columns:    []*schema.Column{InvestigationCasesColumns[7]},
				RefColumns: []*schema.Column{FoldersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ProcessedDocumentsColumns holds the columns for the "processed_documents" table.
	ProcessedDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "storage_ref", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "doc_type", Type: field.TypeString, Default: "UNKNOWN"},
		{Name: "state", Type: field.TypeString, Default: "UPLOADED"},
		{Name: "pair_id", Type: field.TypeUUID, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "error_detail", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "next_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "folder_id", Type: field.TypeUUID},
		{Name: "case_id", Type: field.TypeUUID, Nullable: true},
	}
	// ProcessedDocumentsTable holds the schema information for the "processed_documents" table.
	ProcessedDocumentsTable = &schema.Table{
		Name:       "processed_documents",
		Columns:    ProcessedDocumentsColumns,
		PrimaryKey: []*schema.Column{ProcessedDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processed_documents_folders_documents",
				Columns:    []*schema.Column{ProcessedDocumentsColumns[16]},
				RefColumns: []*schema.Column{FoldersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "processed_documents_investigation_cases_documents",
				Columns:    []*schema.Column{ProcessedDocumentsColumns[17]},
				RefColumns: []*schema.Column{InvestigationCasesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processeddocument_folder_id_state",
				Unique:  false,
				Columns: []*schema.Column{ProcessedDocumentsColumns[16], ProcessedDocumentsColumns[7]},
			},
			{
				Name:    "processeddocument_folder_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ProcessedDocumentsColumns[16], ProcessedDocumentsColumns[5]},
			},
			{
				Name:    "processeddocument_state_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessedDocumentsColumns[7], ProcessedDocumentsColumns[13]},
			},
		},
	}
	// RegistryCreditsColumns holds the columns for the "registry_credits" table.
	RegistryCreditsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "subject", Type: field.TypeString},
		{Name: "key_tail", Type: field.TypeString},
		{Name: "consumed_at", Type: field.TypeTime},
	}
	// RegistryCreditsTable holds the schema information for the "registry_credits" table.
	RegistryCreditsTable = &schema.Table{
		Name:       "registry_credits",
		Columns:    RegistryCreditsColumns,
		PrimaryKey: []*schema.Column{RegistryCreditsColumns[0]},
	}
	// VehiclesColumns holds the columns for the "vehicles" table.
	VehiclesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "plate", Type: field.TypeString},
		{Name: "make", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "year", Type: field.TypeInt, Nullable: true},
		{Name: "color", Type: field.TypeString, Nullable: true},
		{Name: "vin", Type: field.TypeString, Nullable: true},
		{Name: "engine_number", Type: field.TypeString, Nullable: true},
		{Name: "case_id", Type: field.TypeUUID, Unique: true},
	}
	// VehiclesTable holds the schema information for the "vehicles" table.
	VehiclesTable = &schema.Table{
		Name:       "vehicles",
		Columns:    VehiclesColumns,
		PrimaryKey: []*schema.Column{VehiclesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "vehicles_investigation_cases_vehicle",
				Columns:    []*schema.Column{VehiclesColumns[8]},
				RefColumns: []*schema.Column{InvestigationCasesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CaseActivitiesTable,
		CaseAddressesTable,
		CaseOwnersTable,
		FoldersTable,
		InvestigationCasesTable,
		ProcessedDocumentsTable,
		RegistryCreditsTable,
		VehiclesTable,
	}
)

func init() {
	CaseActivitiesTable.ForeignKeys[0].RefTable = InvestigationCasesTable
	CaseActivitiesTable.Annotation = &entsql.Annotation{
		Table: "case_activities",
	}
	CaseAddressesTable.ForeignKeys[0].RefTable = InvestigationCasesTable
	CaseAddressesTable.Annotation = &entsql.Annotation{
		Table: "case_addresses",
	}
	CaseOwnersTable.ForeignKeys[0].RefTable = InvestigationCasesTable
	CaseOwnersTable.Annotation = &entsql.Annotation{
		Table: "case_owners",
	}
	FoldersTable.Annotation = &entsql.Annotation{
		Table: "folders",
	}
	InvestigationCasesTable.ForeignKeys[0].RefTable = FoldersTable
	InvestigationCasesTable.Annotation = &entsql.Annotation{
		Table: "investigation_cases",
	}
	ProcessedDocumentsTable.ForeignKeys[0].RefTable = FoldersTable
	ProcessedDocumentsTable.ForeignKeys[1].RefTable = InvestigationCasesTable
	ProcessedDocumentsTable.Annotation = &entsql.Annotation{
		Table: "processed_documents",
	}
	RegistryCreditsTable.Annotation = &entsql.Annotation{
		Table: "registry_credits",
	}
	VehiclesTable.ForeignKeys[0].RefTable = InvestigationCasesTable
	VehiclesTable.Annotation = &entsql.Annotation{
		Table: "vehicles",
	}
}
