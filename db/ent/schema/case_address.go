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

type CaseAddress struct{ ent.Schema }

func (CaseAddress) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "case_addresses"},
	}
}

func (CaseAddress) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("case_id", uuid.UUID{}),
		field.String("street").NotEmpty(),
		field.String("locality").Optional().Nillable(),
		field.String("region").Optional().Nillable(),
		field.String("source").Validate(utils.EnumValidator(FieldSources...)),
	}
}

func (CaseAddress) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", InvestigationCase.Type).
			Ref("addresses").
			Field("case_id").
			Required().
			Unique(),
	}
}
