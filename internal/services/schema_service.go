package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"melodybase/internal/models"
	"melodybase/internal/repositories"
	"melodybase/internal/utils"
)

const (
	maxJunctionTableColumns = 6
	minJunctionTableFKs     = 2

	diagramCacheKey = "schema:diagram"
	diagramCacheTTL = 10 * time.Minute
)

type SchemaService struct {
	schemaRepo *repositories.SchemaRepository
	cache      *repositories.RedisRepository
}

func NewSchemaService(schemaRepo *repositories.SchemaRepository, cache *repositories.RedisRepository) *SchemaService {
	return &SchemaService{
		schemaRepo: schemaRepo,
		cache:      cache,
	}
}

// Tables returns the introspected catalog: columns, keys and constraints of
// every table in the public schema.
func (s *SchemaService) Tables(ctx context.Context) ([]models.Table, error) {
	return parseTables(ctx, s.schemaRepo, "public")
}

// Diagram renders the catalog as a Mermaid ER diagram. The rendered text is
// cached briefly; the schema only changes on deploys.
func (s *SchemaService) Diagram(ctx context.Context) (string, error) {
	if cached, err := s.cache.CacheGet(ctx, diagramCacheKey); err == nil && cached != "" {
		return cached, nil
	}

	tables, err := parseTables(ctx, s.schemaRepo, "public")
	if err != nil {
		return "", fmt.Errorf("failed to parse tables: %w", err)
	}

	diagram := generateMermaid(tables, buildRelationships(tables))

	if err := s.cache.CacheSet(ctx, diagramCacheKey, diagram, diagramCacheTTL); err != nil {
		log.Printf("failed to cache schema diagram: %v", err)
	}

	return diagram, nil
}

func parseTables(ctx context.Context, schemaRepo *repositories.SchemaRepository, schema string) ([]models.Table, error) {
	tableNames, err := schemaRepo.GetTables(ctx, schema)
	if err != nil {
		return nil, err
	}

	tables := make([]models.Table, 0, len(tableNames))
	for _, tableName := range tableNames {
		table := models.Table{Name: tableName}

		table.Columns, err = schemaRepo.GetColumns(ctx, schema, tableName)
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for %s: %w", tableName, err)
		}

		table.PrimaryKeys, err = schemaRepo.GetPrimaryKeys(ctx, schema, tableName)
		if err != nil {
			return nil, fmt.Errorf("failed to get primary keys for %s: %w", tableName, err)
		}

		table.ForeignKeys, err = schemaRepo.GetForeignKeys(ctx, schema, tableName)
		if err != nil {
			return nil, fmt.Errorf("failed to get foreign keys for %s: %w", tableName, err)
		}

		table.UniqueConstraints, err = schemaRepo.GetUniqueConstraints(ctx, schema, tableName)
		if err != nil {
			return nil, fmt.Errorf("failed to get unique constraints for %s: %w", tableName, err)
		}

		tables = append(tables, table)
	}

	return tables, nil
}

// buildRelationships derives diagram edges. Junction tables collapse into
// many-to-many edges between the tables they join; every other foreign key
// becomes a one-to-many edge from the referenced table, or one-to-one when
// the key columns carry a unique constraint of their own.
func buildRelationships(tables []models.Table) []models.Relationship {
	var relationships []models.Relationship
	junctionTables := detectJunctionTables(tables)

	for _, table := range tables {
		if junctionTables[table.Name] {
			for i := 0; i < len(table.ForeignKeys); i++ {
				for j := i + 1; j < len(table.ForeignKeys); j++ {
					relationships = append(relationships, models.Relationship{
						FromTable: table.ForeignKeys[i].ToTable,
						ToTable:   table.ForeignKeys[j].ToTable,
						Type:      "}o--o{",
					})
				}
			}
			continue
		}

		for _, fk := range table.ForeignKeys {
			relType := "||--o{"
			if fkColumnsAreUnique(table, fk) {
				relType = "||--||"
			}
			relationships = append(relationships, models.Relationship{
				FromTable: fk.ToTable,
				ToTable:   table.Name,
				Type:      relType,
			})
		}
	}

	return relationships
}

// fkColumnsAreUnique reports whether some unique constraint covers exactly
// the foreign key's columns, which is what turns one-to-many into
// one-to-one.
func fkColumnsAreUnique(table models.Table, fk models.ForeignKey) bool {
	for _, uc := range table.UniqueConstraints {
		if len(uc.Columns) != len(fk.Columns) {
			continue
		}
		all := true
		for _, ref := range fk.Columns {
			if !utils.Contains(uc.Columns, ref.FromColumn) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// detectJunctionTables finds association tables: at least two foreign keys,
// every foreign key column inside the primary key, and few columns overall.
func detectJunctionTables(tables []models.Table) map[string]bool {
	junctionTables := make(map[string]bool)
	for _, table := range tables {
		if len(table.ForeignKeys) < minJunctionTableFKs ||
			len(table.PrimaryKeys) < minJunctionTableFKs ||
			len(table.Columns) > maxJunctionTableColumns {
			continue
		}

		allFKsInPK := true
		for _, fk := range table.ForeignKeys {
			for _, ref := range fk.Columns {
				if !utils.Contains(table.PrimaryKeys, ref.FromColumn) {
					allFKsInPK = false
					break
				}
			}
			if !allFKsInPK {
				break
			}
		}

		if allFKsInPK {
			junctionTables[table.Name] = true
		}
	}
	return junctionTables
}

func generateMermaid(tables []models.Table, relationships []models.Relationship) string {
	var sb strings.Builder

	sb.WriteString("erDiagram\n")

	if len(relationships) > 0 {
		seen := make(map[string]bool)
		for _, rel := range relationships {
			key := fmt.Sprintf("%s:%s:%s", rel.FromTable, rel.Type, rel.ToTable)
			if seen[key] {
				continue
			}
			seen[key] = true

			// Mermaid requires a label on every edge; empty hides it.
			sb.WriteString(fmt.Sprintf("    %s %s %s : \"\"\n",
				strings.ToUpper(rel.FromTable),
				rel.Type,
				strings.ToUpper(rel.ToTable)))
		}
		sb.WriteString("\n")
	}

	for _, table := range tables {
		sb.WriteString(fmt.Sprintf("    %s {\n", strings.ToUpper(table.Name)))

		for _, col := range table.Columns {
			annotations := ""
			if utils.Contains(table.PrimaryKeys, col.Name) {
				annotations = " PK"
			}
			if isForeignKeyColumn(table.ForeignKeys, col.Name) {
				annotations += " FK"
			}

			sb.WriteString(fmt.Sprintf("        %s %s%s\n",
				simplifyDataType(col.DataType),
				col.Name,
				annotations))
		}

		sb.WriteString("    }\n\n")
	}

	return sb.String()
}

func simplifyDataType(dataType string) string {
	dt := strings.ToLower(dataType)

	switch {
	case dt == "integer":
		return "int"
	case dt == "bigint":
		return "bigint"
	case dt == "smallint":
		return "smallint"
	case strings.HasPrefix(dt, "character varying"):
		return "varchar"
	case strings.HasPrefix(dt, "character"):
		return "char"
	case dt == "text":
		return "text"
	case strings.HasPrefix(dt, "timestamp without time zone"):
		return "timestamp"
	case strings.HasPrefix(dt, "timestamp with time zone"):
		return "timestamptz"
	case strings.HasPrefix(dt, "time without time zone"):
		return "time"
	case dt == "date":
		return "date"
	case dt == "boolean":
		return "boolean"
	case strings.HasPrefix(dt, "numeric"):
		return "numeric"
	case dt == "real":
		return "real"
	case dt == "double precision":
		return "double"
	case dt == "json":
		return "json"
	case dt == "jsonb":
		return "jsonb"
	case dt == "uuid":
		return "uuid"
	case dt == "bytea":
		return "bytea"
	case strings.HasPrefix(dt, "array"):
		return "array"
	default:
		return dataType
	}
}

func isForeignKeyColumn(fks []models.ForeignKey, colName string) bool {
	for _, fk := range fks {
		for _, ref := range fk.Columns {
			if ref.FromColumn == colName {
				return true
			}
		}
	}
	return false
}
