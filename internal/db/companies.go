package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/london-crypto-directory/internal/types"
)

// ListCompanies returns every company ordered by name ascending.
// No pagination or filtering is applied; callers filter in memory.
func (db *DB) ListCompanies(ctx context.Context) ([]types.Company, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []types.Company{}
	for rows.Next() {
		var c types.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Category, &c.OriginalCategory, &c.TwitterHandle, &c.TwitterURL); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// SaveSubmission records a form submission
func (db *DB) SaveSubmission(ctx context.Context, sub *types.Submission) error {
	payload, err := json.Marshal(sub.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO submissions (id, kind, subject, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sub.ID, string(sub.Kind), sub.Subject, payload, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}
