package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CaseActivity is one timeline entry on a case (registry lookups, assembly
// events).
type CaseActivity struct{ ent.Schema }

func (CaseActivity) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "case_activities"},
	}
}

func (CaseActivity) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("case_id", uuid.UUID{}),
		field.String("kind").NotEmpty(),
		field.String("detail").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (CaseActivity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", InvestigationCase.Type).
			Ref("activities").
			Field("case_id").
			Required().
			Unique(),
	}
}

func (CaseActivity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "created_at"),
	}
}
