package model

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/julienpequegnot/tfclass/internal/database"
	"github.com/julienpequegnot/tfclass/internal/frequency"
)

// ErrNoModel is returned by Load when nothing has been trained yet.
var ErrNoModel = errors.New("no trained model")

const (
	metaSampleCount = "sample_count"
	metaTrainedAt   = "trained_at"
)

type Meta struct {
	SampleCount int64
	TrainedAt   time.Time
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Save replaces the stored model with m.
func (r *Repository) Save(m *Model[string]) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"category_tokens", "categories", "document_frequencies", "model_meta"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	tokenStmt, err := tx.Prepare(`INSERT INTO category_tokens (category_id, token, position, frequency) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer tokenStmt.Close()

	for i, name := range m.categories {
		result, err := tx.Exec(`INSERT INTO categories (name, position) VALUES (?, ?)`, name, i)
		if err != nil {
			return fmt.Errorf("failed to insert category %s: %w", name, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}

		pos := 0
		for token, n := range m.profiles[name].All() {
			if _, err := tokenStmt.Exec(id, token, pos, n); err != nil {
				return fmt.Errorf("failed to insert token for %s: %w", name, err)
			}
			pos++
		}
	}

	dfStmt, err := tx.Prepare(`INSERT INTO document_frequencies (token, position, frequency) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer dfStmt.Close()

	pos := 0
	for token, n := range m.docFreq.All() {
		if _, err := dfStmt.Exec(token, pos, n); err != nil {
			return fmt.Errorf("failed to insert document frequency: %w", err)
		}
		pos++
	}

	meta := map[string]string{
		metaSampleCount: strconv.FormatInt(m.samples, 10),
		metaTrainedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	for key, value := range meta {
		if _, err := tx.Exec(`INSERT INTO model_meta (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("failed to insert meta %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Meta returns the sample count and training time of the stored model.
func (r *Repository) Meta() (*Meta, error) {
	rows, err := r.db.Query(`SELECT key, value FROM model_meta`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	raw, ok := values[metaSampleCount]
	if !ok {
		return nil, ErrNoModel
	}

	var meta Meta
	meta.SampleCount, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sample count: %w", err)
	}
	if ts, ok := values[metaTrainedAt]; ok {
		meta.TrainedAt, _ = time.Parse(time.RFC3339, ts)
	}
	return &meta, nil
}

func (r *Repository) Exists() (bool, error) {
	_, err := r.Meta()
	if errors.Is(err, ErrNoModel) {
		return false, nil
	}
	return err == nil, err
}

// Load reads the stored model.
func (r *Repository) Load() (*Model[string], error) {
	meta, err := r.Meta()
	if err != nil {
		return nil, err
	}

	categories, err := r.loadCategories()
	if err != nil {
		return nil, err
	}

	profiles, err := r.loadProfiles()
	if err != nil {
		return nil, err
	}

	docFreq, err := r.loadDocumentFrequencies()
	if err != nil {
		return nil, err
	}

	return New(categories, profiles, docFreq, meta.SampleCount), nil
}

func (r *Repository) loadCategories() ([]string, error) {
	rows, err := r.db.Query(`SELECT name FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *Repository) loadProfiles() (map[string]*frequency.Profile[string], error) {
	rows, err := r.db.Query(`
		SELECT c.name, t.token, t.frequency
		FROM category_tokens t
		JOIN categories c ON c.id = t.category_id
		ORDER BY c.position, t.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category tokens: %w", err)
	}
	defer rows.Close()

	type acc struct {
		tokens []string
		counts map[string]int64
	}
	byCategory := make(map[string]*acc)
	for rows.Next() {
		var name, token string
		var n int64
		if err := rows.Scan(&name, &token, &n); err != nil {
			return nil, err
		}
		a, ok := byCategory[name]
		if !ok {
			a = &acc{counts: make(map[string]int64)}
			byCategory[name] = a
		}
		a.tokens = append(a.tokens, token)
		a.counts[token] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	profiles := make(map[string]*frequency.Profile[string], len(byCategory))
	for name, a := range byCategory {
		profiles[name] = frequency.FromCounts(a.tokens, a.counts)
	}
	return profiles, nil
}

func (r *Repository) loadDocumentFrequencies() (*frequency.Profile[string], error) {
	rows, err := r.db.Query(`SELECT token, frequency FROM document_frequencies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query document frequencies: %w", err)
	}
	defer rows.Close()

	var tokens []string
	counts := make(map[string]int64)
	for rows.Next() {
		var token string
		var n int64
		if err := rows.Scan(&token, &n); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		counts[token] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return frequency.FromCounts(tokens, counts), nil
}
