package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/ebisa/contabil/internal/apperr"
	"github.com/ebisa/contabil/internal/trialbalance"
)

// itemColumns is the number of bound parameters per inserted item.
const itemColumns = 10

type Store struct {
	db        *sql.DB
	batchSize int
}

func New(db *sql.DB, batchSize int) *Store {
	return &Store{db: db, batchSize: batchSize}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectBatchColumns = `
	b.id, b.empresa_id, e.nome, b.mes, b.ano, b.user_importacao, b.dt_importacao,
	(SELECT COUNT(*) FROM balancete_itens i WHERE i.balancete_id = b.id)
`

func scanBatch(s scanner) (*trialbalance.Batch, error) {
	var b trialbalance.Batch
	if err := s.Scan(
		&b.ID, &b.CompanyID, &b.CompanyName, &b.Month, &b.Year, &b.User, &b.ImportedAt, &b.ItemCount,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Store) GetBatch(ctx context.Context, id int64) (*trialbalance.Batch, error) {
	query := `SELECT ` + selectBatchColumns + `
		FROM balancetes b
		JOIN empresas e ON e.id = b.empresa_id
		WHERE b.id = $1`

	b, err := scanBatch(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting trial balance: %w", err)
	}

	return b, nil
}

func (s *Store) ListBatches(ctx context.Context, filter trialbalance.ListFilter) ([]*trialbalance.Batch, error) {
	query := `SELECT ` + selectBatchColumns + `
		FROM balancetes b
		JOIN empresas e ON e.id = b.empresa_id
		WHERE 1 = 1`

	var args []any

	argIdx := 1

	if filter.CompanyName != nil {
		query += fmt.Sprintf(" AND e.nome = $%d", argIdx)

		args = append(args, *filter.CompanyName)
		argIdx++
	}

	if filter.Year != nil {
		query += fmt.Sprintf(" AND b.ano = $%d", argIdx)

		args = append(args, *filter.Year)
		argIdx++
	}

	if filter.Month != nil {
		query += fmt.Sprintf(" AND b.mes = $%d", argIdx)

		args = append(args, *filter.Month)
		argIdx++
	}

	query += " ORDER BY b.dt_importacao DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing trial balances: %w", err)
	}
	defer rows.Close()

	var batches []*trialbalance.Batch

	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning trial balance: %w", err)
		}

		batches = append(batches, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trial balances: %w", err)
	}

	return batches, nil
}

func (s *Store) ListItems(ctx context.Context, batchID int64) ([]*trialbalance.Item, error) {
	query := `
		SELECT id, balancete_id, cod_conta, nome_conta, saldo_anterior, val_debito, val_credito,
			saldo_atual, cod_reduzido, cod_centro_custo, nome_centro_custo
		FROM balancete_itens
		WHERE balancete_id = $1
		ORDER BY cod_centro_custo NULLS FIRST, cod_conta`

	rows, err := s.db.QueryContext(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("listing trial balance items: %w", err)
	}
	defer rows.Close()

	var items []*trialbalance.Item

	for rows.Next() {
		var (
			it                  trialbalance.Item
			reduced, costCenter sql.NullInt32
			costCenterName      sql.NullString
		)

		if err := rows.Scan(
			&it.ID, &it.BatchID, &it.AccountCode, &it.AccountName,
			&it.PriorBalance, &it.Debit, &it.Credit, &it.CurrentBalance,
			&reduced, &costCenter, &costCenterName,
		); err != nil {
			return nil, fmt.Errorf("scanning trial balance item: %w", err)
		}

		it.ReducedCode = nullInt(reduced)
		it.CostCenterCode = nullInt(costCenter)

		if costCenterName.Valid {
			it.CostCenterName = &costCenterName.String
		}

		items = append(items, &it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trial balance items: %w", err)
	}

	return items, nil
}

func nullInt(n sql.NullInt32) *int {
	if !n.Valid {
		return nil
	}

	v := int(n.Int32)

	return &v
}

func importLockKey(companyID int64, month, year int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "balancete:%d:%04d-%02d", companyID, year, month)

	return int64(h.Sum64())
}

type importTx struct {
	tx        *sql.Tx
	batchSize int
}

func (s *Store) BeginImport(ctx context.Context, companyID int64, month, year int) (trialbalance.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", importLockKey(companyID, month, year)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: dbTx, batchSize: s.batchSize}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) DeletePeriod(ctx context.Context, companyID int64, month, year int) (int64, error) {
	res, err := itx.tx.ExecContext(ctx, `
		DELETE FROM balancete_itens
		WHERE balancete_id IN (
			SELECT id FROM balancetes WHERE empresa_id = $1 AND mes = $2 AND ano = $3
		)`, companyID, month, year)
	if err != nil {
		return 0, fmt.Errorf("deleting items: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted items: %w", err)
	}

	if _, err := itx.tx.ExecContext(ctx,
		`DELETE FROM balancetes WHERE empresa_id = $1 AND mes = $2 AND ano = $3`,
		companyID, month, year,
	); err != nil {
		return 0, fmt.Errorf("deleting trial balance: %w", err)
	}

	return deleted, nil
}

func (itx *importTx) CreateBatch(ctx context.Context, b *trialbalance.Batch) error {
	query := `
		INSERT INTO balancetes (empresa_id, mes, ano, user_importacao, dt_importacao)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, dt_importacao
	`

	if err := itx.tx.QueryRowContext(ctx, query, b.CompanyID, b.Month, b.Year, b.User).
		Scan(&b.ID, &b.ImportedAt); err != nil {
		return fmt.Errorf("creating trial balance: %w", err)
	}

	return nil
}

// CreateItems writes the items as multi-row inserts of at most batchSize rows.
func (itx *importTx) CreateItems(ctx context.Context, batchID int64, items []trialbalance.ItemParams) error {
	for start := 0; start < len(items); start += itx.batchSize {
		end := min(start+itx.batchSize, len(items))

		query, args := insertItemsQuery(batchID, items[start:end])
		if _, err := itx.tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting items %d-%d: %w", start+1, end, err)
		}
	}

	return nil
}

func insertItemsQuery(batchID int64, items []trialbalance.ItemParams) (string, []any) {
	var sb strings.Builder

	sb.WriteString(`INSERT INTO balancete_itens (
		balancete_id, cod_conta, nome_conta, saldo_anterior, val_debito, val_credito,
		saldo_atual, cod_reduzido, cod_centro_custo, nome_centro_custo
	) VALUES `)

	args := make([]any, 0, len(items)*itemColumns)

	for i, it := range items {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(placeholders(i*itemColumns+1, itemColumns))

		args = append(args,
			batchID, it.AccountCode, it.AccountName,
			it.PriorBalance, it.Debit, it.Credit, it.CurrentBalance,
			it.ReducedCode, it.CostCenterCode, it.CostCenterName,
		)
	}

	return sb.String(), args
}

// placeholders renders "($from, ..., $from+n-1)".
func placeholders(from, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
