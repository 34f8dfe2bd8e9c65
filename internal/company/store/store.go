package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ebisa/contabil/internal/apperr"
	"github.com/ebisa/contabil/internal/company"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) List(ctx context.Context) ([]*company.Company, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, nome, cnpj, created_at FROM empresas ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	var companies []*company.Company

	for rows.Next() {
		var c company.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.CNPJ, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}

		companies = append(companies, &c)
	}

	return companies, rows.Err()
}

func (s *Store) GetByName(ctx context.Context, name string) (*company.Company, error) {
	var c company.Company

	err := s.db.QueryRowContext(ctx,
		`SELECT id, nome, cnpj, created_at FROM empresas WHERE nome = $1`, name,
	).Scan(&c.ID, &c.Name, &c.CNPJ, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting company: %w", err)
	}

	return &c, nil
}

func (s *Store) Create(ctx context.Context, c *company.Company) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO empresas (nome, cnpj) VALUES ($1, $2) RETURNING id, created_at`,
		c.Name, c.CNPJ,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating company: %w", err)
	}

	return nil
}
