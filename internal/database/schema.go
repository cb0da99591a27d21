package database

import (
	"context"
	"fmt"
	"strings"
)

type columnTypes struct {
	id, float, timestamp string
}

func (d Dialect) columnTypes() columnTypes {
	if d == DialectSQLite {
		return columnTypes{id: "INTEGER PRIMARY KEY AUTOINCREMENT", float: "REAL", timestamp: "TIMESTAMP"}
	}
	return columnTypes{id: "BIGSERIAL PRIMARY KEY", float: "DOUBLE PRECISION", timestamp: "TIMESTAMPTZ"}
}

const restaurantsDDL = `CREATE TABLE IF NOT EXISTS restaurants (
    id {{id}},
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    rating {{float}} NOT NULL DEFAULT 0,
    delivery_fee {{float}} NOT NULL DEFAULT 0,
    delivery_time TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '',
    is_open BOOLEAN NOT NULL DEFAULT TRUE,
    image_url TEXT NOT NULL DEFAULT '',
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at {{timestamp}} NOT NULL,
    updated_at {{timestamp}} NOT NULL
)`

const productsDDL = `CREATE TABLE IF NOT EXISTS products (
    id {{id}},
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    price {{float}} NOT NULL DEFAULT 0,
    original_price {{float}} NOT NULL DEFAULT 0,
    category TEXT NOT NULL,
    restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
    image_url TEXT NOT NULL DEFAULT '',
    is_available BOOLEAN NOT NULL DEFAULT TRUE,
    nutritional_info TEXT NOT NULL DEFAULT '',
    allergens TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '',
    preparation_time TEXT NOT NULL DEFAULT '',
    portion_size TEXT NOT NULL DEFAULT '',
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at {{timestamp}} NOT NULL,
    updated_at {{timestamp}} NOT NULL
)`

var indexDDL = []string{
	`CREATE INDEX IF NOT EXISTS idx_restaurants_natural_key ON restaurants (name, category, is_active)`,
	`CREATE INDEX IF NOT EXISTS idx_restaurants_updated_at ON restaurants (updated_at)`,
	`CREATE INDEX IF NOT EXISTS idx_products_natural_key ON products (name, restaurant_id, is_active)`,
}

// SchemaStatements returns the DDL creating the catalog tables for d.
func (d Dialect) SchemaStatements() []string {
	types := d.columnTypes()
	replacer := strings.NewReplacer("{{id}}", types.id, "{{float}}", types.float, "{{timestamp}}", types.timestamp)
	statements := []string{replacer.Replace(restaurantsDDL), replacer.Replace(productsDDL)}
	return append(statements, indexDDL...)
}

// EnsureSchema creates the restaurants and products tables when missing.
func EnsureSchema(ctx context.Context, db *DB) error {
	for _, stmt := range db.Dialect.SchemaStatements() {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("error applying schema: %w", err)
		}
	}
	return nil
}
