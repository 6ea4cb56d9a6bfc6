package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Folder is the shared drop location documents arrive in. Pairing is scoped
// to a single folder.
type Folder struct{ ent.Schema }

func (Folder) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "folders"},
	}
}

func (Folder) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.UUID("organization_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Folder) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", ProcessedDocument.Type),
		edge.To("cases", InvestigationCase.Type),
	}
}
