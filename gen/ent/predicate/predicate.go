// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CaseActivity is the predicate function for caseactivity builders.
type CaseActivity func(*sql.Selector)

// CaseAddress is the predicate function for caseaddress builders.
type CaseAddress func(*sql.Selector)

// CaseOwner is the predicate function for caseowner builders.
type CaseOwner func(*sql.Selector)

// Folder is the predicate function for folder builders.
type Folder func(*sql.Selector)

// InvestigationCase is the predicate function for investigationcase builders.
type InvestigationCase func(*sql.Selector)

// ProcessedDocument is the predicate function for processeddocument builders.
type ProcessedDocument func(*sql.Selector)

// RegistryCredit is the predicate function for registrycredit builders.
type RegistryCredit func(*sql.Selector)

// Vehicle is the predicate function for vehicle builders.
type Vehicle func(*sql.Selector)
