package vendorstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the shops table for local runs. The deployed store belongs
// to the marketplace CRUD layer; this mirrors its shape closely enough to
// develop and demo against.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS shops (
        id INTEGER PRIMARY KEY,
        name TEXT NOT NULL,
        category TEXT NOT NULL,
        whatsapp_number TEXT NOT NULL DEFAULT '',
        description TEXT,
        profile_image TEXT,
        cart_image TEXT,
        is_live BOOLEAN NOT NULL DEFAULT FALSE,
        latitude DOUBLE PRECISION,
        longitude DOUBLE PRECISION
    );
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create shops table: %w", err)
	}

	return nil
}

type VendorSeed struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	WhatsApp string   `json:"whatsapp_number"`
	IsLive   bool     `json:"is_live"`
	Lat      *float64 `json:"latitude"`
	Lon      *float64 `json:"longitude"`
}

// Populate the shops table from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed vendors: read %q: %w", jsonPath, err)
	}

	var data []VendorSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed vendors: parse json: %w", err)
	}

	for i, v := range data {
		if v.ID <= 0 {
			return fmt.Errorf("seed vendors: invalid id at index %d: %d", i, v.ID)
		}
		if strings.TrimSpace(v.Name) == "" {
			return fmt.Errorf("seed vendors: empty name at index %d", i)
		}
		if v.IsLive && (v.Lat == nil || v.Lon == nil) {
			return fmt.Errorf("seed vendors: live vendor id=%d missing location", v.ID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed vendors: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := `
	INSERT INTO shops (id, name, category, whatsapp_number, is_live, latitude, longitude)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    ON CONFLICT (id) DO UPDATE SET
        name = EXCLUDED.name,
        category = EXCLUDED.category,
        whatsapp_number = EXCLUDED.whatsapp_number,
        is_live = EXCLUDED.is_live,
        latitude = EXCLUDED.latitude,
        longitude = EXCLUDED.longitude;
	`
	stmt, err := tx.Prepare(q)
	if err != nil {
		return fmt.Errorf("seed vendors: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range data {
		if _, err := stmt.Exec(v.ID, v.Name, v.Category, v.WhatsApp, v.IsLive, v.Lat, v.Lon); err != nil {
			return fmt.Errorf("seed vendors: insert id=%d: %w", v.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed vendors: commit tx: %w", err)
	}

	return nil
}
