package models

// Introspection read models built from information_schema. A foreign key
// keeps its column pairs ordered by ordinal position so composite keys
// (e.g. performances → performer_songs) stay aligned.

type Column struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Nullable bool   `json:"nullable"`
}

type ColumnRef struct {
	FromColumn string `json:"from_column"`
	ToColumn   string `json:"to_column"`
}

type ForeignKey struct {
	ConstraintName string      `json:"constraint_name"`
	ToTable        string      `json:"to_table"`
	Columns        []ColumnRef `json:"columns"`
}

type UniqueConstraint struct {
	ConstraintName string   `json:"constraint_name"`
	Columns        []string `json:"columns"`
}

type Table struct {
	Name              string             `json:"name"`
	Columns           []Column           `json:"columns"`
	PrimaryKeys       []string           `json:"primary_keys"`
	ForeignKeys       []ForeignKey       `json:"foreign_keys"`
	UniqueConstraints []UniqueConstraint `json:"unique_constraints,omitempty"`
}

type Relationship struct {
	FromTable string
	ToTable   string
	Type      string // Mermaid cardinality, e.g. "||--o{", "}o--o{"
}
