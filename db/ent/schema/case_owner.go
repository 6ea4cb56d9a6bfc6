package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/patriciodunstan/back-investigacion-vehiculos/db/ent/schema/utils"
)

// FieldSources tags where an assembled value came from.
var FieldSources = []string{"ENRICHMENT", "CERTIFICATE", "ORDER"}

type CaseOwner struct{ ent.Schema }

func (CaseOwner) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "case_owners"},
	}
}

func (CaseOwner) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("case_id", uuid.UUID{}),
		// canonical RUT, e.g. 12345678-5
		field.String("national_id").Optional().Nillable(),
		field.String("full_name").Optional().Nillable(),
		field.String("source").Validate(utils.EnumValidator(FieldSources...)),
	}
}

func (CaseOwner) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", InvestigationCase.Type).
			Ref("owners").
			Field("case_id").
			Required().
			Unique(),
	}
}
