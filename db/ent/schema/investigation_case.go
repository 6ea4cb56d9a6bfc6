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

	"github.com/google/uuid"
)

// InvestigationCase is the structured record assembled from a document pair.
type InvestigationCase struct{ ent.Schema }

func (InvestigationCase) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "investigation_cases"},
	}
}

func (InvestigationCase) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("folder_id", uuid.UUID{}),
		field.String("case_number").NotEmpty().Unique(),
		field.String("legal_context").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// cross-validation warning annotations, never fatal
		field.JSON("warnings", []string{}).Optional(),
		field.JSON("enrichment_raw", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (InvestigationCase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("folder", Folder.Type).
			Ref("cases").
			Field("folder_id").
			Required().
			Unique(),
		// ONE case -> ONE vehicle
		edge.To("vehicle", Vehicle.Type).Unique(),
		// ONE case -> MANY owners / addresses / activities
		edge.To("owners", CaseOwner.Type),
		edge.To("addresses", CaseAddress.Type),
		edge.To("activities", CaseActivity.Type),
		// source documents (artifacts)
		edge.To("documents", ProcessedDocument.Type),
	}
}
