package model

// Record is implemented by every persisted entity served through the generic
// record service.
type Record interface {
	TableName() string
	// Kind is the human readable entity name used in messages and exports.
	Kind() string
	GetID() uint64
	SetID(id uint64)
	Fields() []Field
}

// RecordPtr constrains a type parameter to a pointer to T implementing Record.
type RecordPtr[T any] interface {
	*T
	Record
}

// Validator is implemented by records with rules binding tags cannot express.
type Validator interface {
	Validate() error
}

// ConflictDescriber lets an entity name its own uniqueness conflict.
type ConflictDescriber interface {
	ConflictMessage() string
}

type Field struct {
	Label string
	Value string
}

type RecordCard struct {
	Kind   string
	ID     uint64
	Fields []Field
}

func CardOf(r Record) RecordCard {
	return RecordCard{Kind: r.Kind(), ID: r.GetID(), Fields: r.Fields()}
}
