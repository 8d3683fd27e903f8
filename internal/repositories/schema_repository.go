package repositories

import (
	"context"

	"melodybase/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SchemaRepository struct {
	pool *pgxpool.Pool
}

func NewSchemaRepository(pool *pgxpool.Pool) *SchemaRepository {
	return &SchemaRepository{pool: pool}
}

// GetTables returns all table names in the specified schema
func (r *SchemaRepository) GetTables(ctx context.Context, schema string) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1
		AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := r.pool.Query(ctx, query, schema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

// GetColumns returns all columns for a specific table in a schema
func (r *SchemaRepository) GetColumns(ctx context.Context, schema, table string) ([]models.Column, error) {
	query := `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`

	rows, err := r.pool.Query(ctx, query, schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		var col models.Column
		var nullable string
		if err := rows.Scan(&col.Name, &col.DataType, &nullable); err != nil {
			return nil, err
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// GetPrimaryKeys returns the primary key columns in ordinal order.
func (r *SchemaRepository) GetPrimaryKeys(ctx context.Context, schema, table string) ([]string, error) {
	query := `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY'
			AND tc.table_schema = $1
			AND tc.table_name = $2
		ORDER BY kcu.ordinal_position
	`

	rows, err := r.pool.Query(ctx, query, schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pks []string
	for rows.Next() {
		var pk string
		if err := rows.Scan(&pk); err != nil {
			return nil, err
		}
		pks = append(pks, pk)
	}

	return pks, rows.Err()
}

// GetForeignKeys returns the foreign keys of a table with their column pairs
// in ordinal order. Pairing source and target through
// position_in_unique_constraint keeps composite keys aligned; joining
// constraint_column_usage directly would cross-product their columns.
func (r *SchemaRepository) GetForeignKeys(ctx context.Context, schema, table string) ([]models.ForeignKey, error) {
	query := `
		SELECT
			rc.constraint_name,
			target_kcu.table_name AS foreign_table_name,
			source_kcu.column_name,
			target_kcu.column_name AS foreign_column_name
		FROM information_schema.referential_constraints rc
		JOIN information_schema.key_column_usage source_kcu
			ON source_kcu.constraint_name = rc.constraint_name
			AND source_kcu.constraint_schema = rc.constraint_schema
		JOIN information_schema.key_column_usage target_kcu
			ON target_kcu.constraint_name = rc.unique_constraint_name
			AND target_kcu.constraint_schema = rc.unique_constraint_schema
			AND target_kcu.ordinal_position = source_kcu.position_in_unique_constraint
		WHERE rc.constraint_schema = $1
			AND source_kcu.table_name = $2
		ORDER BY rc.constraint_name, source_kcu.ordinal_position
	`

	rows, err := r.pool.Query(ctx, query, schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fks []models.ForeignKey
	byName := make(map[string]int)
	for rows.Next() {
		var constraintName, toTable string
		var ref models.ColumnRef
		if err := rows.Scan(&constraintName, &toTable, &ref.FromColumn, &ref.ToColumn); err != nil {
			return nil, err
		}

		idx, seen := byName[constraintName]
		if !seen {
			fks = append(fks, models.ForeignKey{ConstraintName: constraintName, ToTable: toTable})
			idx = len(fks) - 1
			byName[constraintName] = idx
		}
		fks[idx].Columns = append(fks[idx].Columns, ref)
	}

	return fks, rows.Err()
}

// GetUniqueConstraints returns the UNIQUE constraints of a table grouped by
// constraint, columns in ordinal order. Primary keys are not included.
func (r *SchemaRepository) GetUniqueConstraints(ctx context.Context, schema, table string) ([]models.UniqueConstraint, error) {
	query := `
		SELECT tc.constraint_name, kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'UNIQUE'
			AND tc.table_schema = $1
			AND tc.table_name = $2
		ORDER BY tc.constraint_name, kcu.ordinal_position
	`

	rows, err := r.pool.Query(ctx, query, schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var constraints []models.UniqueConstraint
	byName := make(map[string]int)
	for rows.Next() {
		var constraintName, column string
		if err := rows.Scan(&constraintName, &column); err != nil {
			return nil, err
		}

		idx, seen := byName[constraintName]
		if !seen {
			constraints = append(constraints, models.UniqueConstraint{ConstraintName: constraintName})
			idx = len(constraints) - 1
			byName[constraintName] = idx
		}
		constraints[idx].Columns = append(constraints[idx].Columns, column)
	}

	return constraints, rows.Err()
}
