package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
	"github.com/patriciodunstan/back-investigacion-vehiculos/db/ent/schema/utils"
)

// ProcessedDocument tracks one uploaded document through the pipeline.
type ProcessedDocument struct{ ent.Schema }

func (ProcessedDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processed_documents"},
	}
}

func (ProcessedDocument) Fields() []ent.Field {
	return []ent.Field{
		// v7 ids are time-ordered, so tie-breaking on id follows
		// ingestion order
		field.UUID("id", uuid.UUID{}).
			Default(func() uuid.UUID { return uuid.Must(uuid.NewV7()) }).
			Immutable(),
		// explicit FKs so we can define composite indexes
		field.UUID("folder_id", uuid.UUID{}),
		// content-addressed location in the artifact store; globally unique
		// so re-uploading identical bytes cannot duplicate work
		field.String("storage_ref").NotEmpty().Unique(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("doc_type").
			Default(string(constants.DocTypeUnknown)).
			Validate(utils.EnumValidator(constants.DocTypes...)),
		field.String("state").
			Default(string(constants.StateUploaded)).
			Validate(utils.EnumValidator(constants.DocStates...)),
		// symmetric self reference; both sides set in the same transaction
		field.UUID("pair_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("case_id", uuid.UUID{}).Optional().Nillable(),
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_fields", json.RawMessage{}).Optional(),
		field.String("error_detail").Optional().Nillable(),
		field.Int("retry_count").Default(0).NonNegative(),
		field.Time("next_attempt_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ProcessedDocument) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE folder
		edge.From("folder", Folder.Type).
			Ref("documents").
			Field("folder_id").
			Required().
			Unique(),
		// MANY documents -> ONE case (set once assembly completes)
		edge.From("case", InvestigationCase.Type).
			Ref("documents").
			Field("case_id").
			Unique(),
	}
}

func (ProcessedDocument) Indexes() []ent.Index {
	return []ent.Index{
		// pairing search: same folder, AWAITING_PAIR
		index.Fields("folder_id", "state"),
		index.Fields("folder_id", "content_hash").Unique(),
		index.Fields("state", "next_attempt_at"),
	}
}
