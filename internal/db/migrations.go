package db

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type column struct {
	name    string
	kind    string
	size    int
	notNull bool
}

type foreignKey struct {
	name   string
	column string
	table  string
}

type tableDef struct {
	name        string
	columns     []column
	unique      map[string]string
	indexes     [][2]string
	foreignKeys []foreignKey
}

const (
	kindString = "string"
	kindInt    = "int"
	kindRef    = "ref"
	kindDate   = "date"
)

var schema = []tableDef{
	{
		name: "users",
		columns: []column{
			{name: "name", kind: kindString, size: 50},
			{name: "email", kind: kindString, size: 100, notNull: true},
		},
		unique:  map[string]string{"uq_users_email": "email"},
		indexes: [][2]string{{"idx_users_name", "name"}},
	},
	{
		name: "workshops",
		columns: []column{
			{name: "name", kind: kindString, size: 30},
			{name: "workshop_head", kind: kindString, size: 50},
			{name: "phone", kind: kindString, size: 11},
		},
		indexes: [][2]string{{"idx_workshops_name", "name"}},
	},
	{
		name: "goods",
		columns: []column{
			{name: "good_name", kind: kindString, size: 50},
			{name: "workshop_id", kind: kindRef, notNull: true},
			{name: "unit_cost", kind: kindInt, notNull: true},
		},
		indexes: [][2]string{
			{"idx_goods_good_name", "good_name"},
			{"idx_goods_workshop_id", "workshop_id"},
		},
		foreignKeys: []foreignKey{{name: "fk_goods_workshop", column: "workshop_id", table: "workshops"}},
	},
	{
		name: "contracts",
		columns: []column{
			{name: "name", kind: kindString, size: 30},
			{name: "address", kind: kindString, size: 255},
			{name: "date_registration", kind: kindDate, notNull: true},
			{name: "date_completion", kind: kindDate},
		},
		indexes: [][2]string{{"idx_contracts_name", "name"}},
	},
	{
		name: "orders",
		columns: []column{
			{name: "contract_id", kind: kindRef, notNull: true},
			{name: "good_id", kind: kindRef},
			{name: "amount", kind: kindInt, notNull: true},
		},
		indexes: [][2]string{
			{"idx_orders_contract_id", "contract_id"},
			{"idx_orders_good_id", "good_id"},
		},
		foreignKeys: []foreignKey{
			{name: "fk_orders_contract", column: "contract_id", table: "contracts"},
			{name: "fk_orders_good", column: "good_id", table: "goods"},
		},
	},
}

type dialect struct {
	primaryKey    string
	refType       string
	intType       string
	inlineIndexes bool
	tableOptions  string
}

var dialects = map[string]dialect{
	"postgres": {
		primaryKey: "id BIGSERIAL PRIMARY KEY",
		refType:    "BIGINT",
		intType:    "BIGINT",
	},
	"mysql": {
		primaryKey:    "id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY",
		refType:       "BIGINT UNSIGNED",
		intType:       "BIGINT",
		inlineIndexes: true,
		tableOptions:  " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
	},
	"sqlite": {
		primaryKey: "id INTEGER PRIMARY KEY AUTOINCREMENT",
		refType:    "INTEGER",
		intType:    "INTEGER",
	},
}

// Migrate creates the record tables for the dialect of database. Tables that
// already exist are left untouched, so toggling foreignKeys only affects
// tables created by this call.
func Migrate(database *gorm.DB, foreignKeys bool) error {
	statements, err := migrationStatements(database.Dialector.Name(), foreignKeys)
	if err != nil {
		return err
	}
	return runMigrations(database, statements)
}

func runMigrations(database *gorm.DB, statements []string) error {
	for i, stmt := range statements {
		if err := database.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

func migrationStatements(dialectName string, foreignKeys bool) ([]string, error) {
	d, ok := dialects[dialectName]
	if !ok {
		return nil, fmt.Errorf("no migrations for dialect %q", dialectName)
	}
	var statements []string
	for _, table := range schema {
		statements = append(statements, d.createTable(table, foreignKeys))
		if d.inlineIndexes {
			continue
		}
		for _, idx := range table.indexes {
			statements = append(statements,
				fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s);", idx[0], table.name, idx[1]))
		}
	}
	return statements, nil
}

func (d dialect) createTable(table tableDef, foreignKeys bool) string {
	defs := []string{d.primaryKey}
	for _, col := range table.columns {
		def := col.name + " " + d.columnType(col)
		if col.notNull {
			def += " NOT NULL"
		}
		if col.kind == kindInt && col.notNull {
			def += " DEFAULT 0"
		}
		defs = append(defs, def)
	}
	for name, col := range table.unique {
		defs = append(defs, fmt.Sprintf("CONSTRAINT %s UNIQUE (%s)", name, col))
	}
	if d.inlineIndexes {
		for _, idx := range table.indexes {
			defs = append(defs, fmt.Sprintf("INDEX %s (%s)", idx[0], idx[1]))
		}
	}
	if foreignKeys {
		for _, fk := range table.foreignKeys {
			defs = append(defs, fmt.Sprintf("CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(id)", fk.name, fk.column, fk.table))
		}
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)%s;", table.name, strings.Join(defs, ",\n\t"), d.tableOptions)
}

func (d dialect) columnType(col column) string {
	switch col.kind {
	case kindString:
		return fmt.Sprintf("VARCHAR(%d)", col.size)
	case kindRef:
		return d.refType
	case kindDate:
		return "DATE"
	default:
		return d.intType
	}
}
