package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Vehicle struct{ ent.Schema }

func (Vehicle) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vehicles"},
	}
}

func (Vehicle) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("case_id", uuid.UUID{}),
		// canonical PPU, uppercase, separators stripped
		field.String("plate").NotEmpty(),
		field.String("make").Optional().Nillable(),
		field.String("model").Optional().Nillable(),
		field.Int("year").Optional().Nillable(),
		field.String("color").Optional().Nillable(),
		field.String("vin").Optional().Nillable(),
		field.String("engine_number").Optional().Nillable(),
	}
}

func (Vehicle) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", InvestigationCase.Type).
			Ref("vehicle").
			Field("case_id").
			Required().
			Unique(),
	}
}
