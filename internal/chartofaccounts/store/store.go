package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/ebisa/contabil/internal/chartofaccounts"
)

const itemColumns = 13

type Store struct {
	db        *sql.DB
	batchSize int
}

func New(db *sql.DB, batchSize int) *Store {
	return &Store{db: db, batchSize: batchSize}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectVigencyColumns = `
	v.id, v.empresa_id, e.nome, v.plano_contas_id, p.nome, v.ano_vigencia, v.fl_ativo,
	v.user_importacao, v.created_at
`

const vigencyJoins = `
	FROM plano_contas_vigencias v
	JOIN empresas e ON e.id = v.empresa_id
	JOIN planos_contas p ON p.id = v.plano_contas_id
`

func scanVigency(s scanner) (*chartofaccounts.Vigency, error) {
	var v chartofaccounts.Vigency
	if err := s.Scan(
		&v.ID, &v.CompanyID, &v.CompanyName, &v.ChartID, &v.ChartName, &v.Year, &v.Active,
		&v.User, &v.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &v, nil
}

func (s *Store) ActiveVigency(ctx context.Context, companyID int64, year int) (*chartofaccounts.Vigency, error) {
	query := `SELECT ` + selectVigencyColumns + vigencyJoins + `
		WHERE v.empresa_id = $1 AND v.ano_vigencia = $2 AND v.fl_ativo
		ORDER BY v.id DESC
		LIMIT 1`

	v, err := scanVigency(s.db.QueryRowContext(ctx, query, companyID, year))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting active vigency: %w", err)
	}

	return v, nil
}

func (s *Store) ListVigencies(ctx context.Context, filter chartofaccounts.VigencyFilter) ([]*chartofaccounts.Vigency, error) {
	query := `SELECT ` + selectVigencyColumns + vigencyJoins + ` WHERE 1 = 1`

	var args []any

	argIdx := 1

	if filter.CompanyName != nil {
		query += fmt.Sprintf(" AND e.nome = $%d", argIdx)

		args = append(args, *filter.CompanyName)
		argIdx++
	}

	if filter.Year != nil {
		query += fmt.Sprintf(" AND v.ano_vigencia = $%d", argIdx)

		args = append(args, *filter.Year)
		argIdx++
	}

	if filter.ActiveOnly {
		query += " AND v.fl_ativo"
	}

	query += " ORDER BY e.nome, v.ano_vigencia DESC, v.id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vigencies: %w", err)
	}
	defer rows.Close()

	var out []*chartofaccounts.Vigency

	for rows.Next() {
		v, err := scanVigency(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vigency: %w", err)
		}

		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vigencies: %w", err)
	}

	return out, nil
}

func (s *Store) ListItems(ctx context.Context, chartID int64) ([]*chartofaccounts.Item, error) {
	query := `
		SELECT id, plano_contas_id, cod_conta, nome_conta, cod_reduzido, grupo_contas,
			COALESCE(tipo_conta, ''), usar_no_balanco, permite_rateio, redutora,
			COALESCE(conta_referencial, ''), fl_ativa, data_cadastramento, COALESCE(codigo_evento, '')
		FROM plano_contas_itens
		WHERE plano_contas_id = $1
		ORDER BY cod_conta`

	rows, err := s.db.QueryContext(ctx, query, chartID)
	if err != nil {
		return nil, fmt.Errorf("listing chart items: %w", err)
	}
	defer rows.Close()

	var items []*chartofaccounts.Item

	for rows.Next() {
		var (
			it             chartofaccounts.Item
			reduced, group sql.NullInt32
			registered     sql.NullTime
		)

		if err := rows.Scan(
			&it.ID, &it.ChartID, &it.AccountCode, &it.AccountName, &reduced, &group,
			&it.AccountType, &it.UseInBalanceSheet, &it.AllowsSplit, &it.Contra,
			&it.ReferenceAccount, &it.Active, &registered, &it.EventCode,
		); err != nil {
			return nil, fmt.Errorf("scanning chart item: %w", err)
		}

		it.ReducedCode = nullInt(reduced)
		it.GroupCode = nullInt(group)

		if registered.Valid {
			it.RegisteredAt = &registered.Time
		}

		items = append(items, &it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chart items: %w", err)
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

func importLockKey(companyID int64, year int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "plano:%d:%04d", companyID, year)

	return int64(h.Sum64())
}

type importTx struct {
	tx        *sql.Tx
	batchSize int
}

func (s *Store) BeginImport(ctx context.Context, companyID int64, year int) (chartofaccounts.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", importLockKey(companyID, year)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: dbTx, batchSize: s.batchSize}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) DeactivateVigencies(ctx context.Context, companyID int64, year int) (int64, error) {
	res, err := itx.tx.ExecContext(ctx, `
		UPDATE plano_contas_vigencias
		SET fl_ativo = FALSE
		WHERE empresa_id = $1 AND ano_vigencia = $2 AND fl_ativo`,
		companyID, year)
	if err != nil {
		return 0, fmt.Errorf("deactivating vigencies: %w", err)
	}

	return res.RowsAffected()
}

func (itx *importTx) CreateChart(ctx context.Context, c *chartofaccounts.Chart) error {
	query := `
		INSERT INTO planos_contas (nome, descricao, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	if err := itx.tx.QueryRowContext(ctx, query, c.Name, c.Description).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("creating chart: %w", err)
	}

	return nil
}

func (itx *importTx) CreateVigency(ctx context.Context, v *chartofaccounts.Vigency) error {
	query := `
		INSERT INTO plano_contas_vigencias (empresa_id, plano_contas_id, ano_vigencia, fl_ativo, user_importacao, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	if err := itx.tx.QueryRowContext(ctx, query, v.CompanyID, v.ChartID, v.Year, v.Active, v.User).
		Scan(&v.ID, &v.CreatedAt); err != nil {
		return fmt.Errorf("creating vigency: %w", err)
	}

	return nil
}

// UpsertItems inserts or updates items keyed by (chart, account code). Each
// chunk must not repeat an account code.
func (itx *importTx) UpsertItems(ctx context.Context, chartID int64, items []chartofaccounts.ItemParams) error {
	for start := 0; start < len(items); start += itx.batchSize {
		end := min(start+itx.batchSize, len(items))

		query, args := upsertItemsQuery(chartID, items[start:end])
		if _, err := itx.tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upserting items %d-%d: %w", start+1, end, err)
		}
	}

	return nil
}

func upsertItemsQuery(chartID int64, items []chartofaccounts.ItemParams) (string, []any) {
	var sb strings.Builder

	sb.WriteString(`INSERT INTO plano_contas_itens (
		plano_contas_id, cod_conta, nome_conta, cod_reduzido, grupo_contas, tipo_conta,
		usar_no_balanco, permite_rateio, redutora, conta_referencial, fl_ativa,
		data_cadastramento, codigo_evento
	) VALUES `)

	args := make([]any, 0, len(items)*itemColumns)

	for i, it := range items {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(placeholders(i*itemColumns+1, itemColumns))

		args = append(args,
			chartID, it.AccountCode, it.AccountName, it.ReducedCode, it.GroupCode,
			nullString(it.AccountType), it.UseInBalanceSheet, it.AllowsSplit, it.Contra,
			nullString(it.ReferenceAccount), it.Active, dateOnly(it.RegisteredAt), nullString(it.EventCode),
		)
	}

	sb.WriteString(`
	ON CONFLICT (plano_contas_id, cod_conta) DO UPDATE SET
		nome_conta = EXCLUDED.nome_conta,
		cod_reduzido = EXCLUDED.cod_reduzido,
		grupo_contas = EXCLUDED.grupo_contas,
		tipo_conta = EXCLUDED.tipo_conta,
		usar_no_balanco = EXCLUDED.usar_no_balanco,
		permite_rateio = EXCLUDED.permite_rateio,
		redutora = EXCLUDED.redutora,
		conta_referencial = EXCLUDED.conta_referencial,
		fl_ativa = EXCLUDED.fl_ativa,
		data_cadastramento = EXCLUDED.data_cadastramento,
		codigo_evento = EXCLUDED.codigo_evento`)

	return sb.String(), args
}

func placeholders(from, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func dateOnly(t *time.Time) any {
	if t == nil {
		return nil
	}

	return t.Format(time.DateOnly)
}
