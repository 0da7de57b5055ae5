// Package store keeps the demo's items in a SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when an item ID does not exist.
var ErrNotFound = errors.New("item not found")

// ErrEmptyName is returned when adding or renaming to a blank name.
var ErrEmptyName = errors.New("item name is empty")

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT    NOT NULL,
	created_at INTEGER NOT NULL
);
`

// Item is one row of the demo list.
type Item struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Store wraps the database connection
type Store struct {
	conn *sql.DB
	now  func() time.Time
}

// Open opens (creating if needed) the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// single writer; also keeps in-memory databases on one connection
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	conn.Exec("PRAGMA synchronous=NORMAL")

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{conn: conn, now: time.Now}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.conn.Close()
}

// Add inserts a new item and returns it.
func (s *Store) Add(name string) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrEmptyName
	}

	created := s.now()
	res, err := s.conn.Exec(`INSERT INTO items (name, created_at) VALUES (?, ?)`, name, created.UnixNano())
	if err != nil {
		return Item{}, fmt.Errorf("insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Item{}, fmt.Errorf("insert item: %w", err)
	}

	return Item{ID: id, Name: name, CreatedAt: created}, nil
}

// List returns all items, oldest first.
func (s *Store) List() ([]Item, error) {
	rows, err := s.conn.Query(`SELECT id, name, created_at FROM items ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var created int64
		if err := rows.Scan(&it.ID, &it.Name, &created); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.CreatedAt = time.Unix(0, created)
		items = append(items, it)
	}
	return items, rows.Err()
}

// Get returns one item by ID.
func (s *Store) Get(id int64) (Item, error) {
	var it Item
	var created int64
	err := s.conn.QueryRow(`SELECT id, name, created_at FROM items WHERE id = ?`, id).
		Scan(&it.ID, &it.Name, &created)
	if err == sql.ErrNoRows {
		return Item{}, ErrNotFound
	}
	if err != nil {
		return Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	it.CreatedAt = time.Unix(0, created)
	return it, nil
}

// Rename changes an item's name.
func (s *Store) Rename(id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	res, err := s.conn.Exec(`UPDATE items SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("rename item %d: %w", id, err)
	}
	return expectOne(res)
}

// Delete removes an item.
func (s *Store) Delete(id int64) error {
	res, err := s.conn.Exec(`DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	return expectOne(res)
}

// Clear removes every item and returns how many were deleted.
func (s *Store) Clear() (int64, error) {
	res, err := s.conn.Exec(`DELETE FROM items`)
	if err != nil {
		return 0, fmt.Errorf("clear items: %w", err)
	}
	return res.RowsAffected()
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
