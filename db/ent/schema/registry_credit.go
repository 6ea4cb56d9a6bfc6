package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// RegistryCredit is the billing ledger: one row per performed registry call.
type RegistryCredit struct{ ent.Schema }

func (RegistryCredit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "registry_credits"},
	}
}

func (RegistryCredit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// plate or RUT the credit was spent on
		field.String("subject").NotEmpty(),
		// last 4 chars of the API key, for per-key billing reconciliation
		field.String("key_tail").NotEmpty(),
		field.Time("consumed_at").Default(time.Now),
	}
}
