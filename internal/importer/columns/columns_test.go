package columns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebisa/contabil/internal/apperr"
	"github.com/ebisa/contabil/internal/importer/columns"
)

var aliases = columns.AliasMap{
	{Canonical: "cod_conta", Names: []string{"Código Contábil", "Código da Conta", "Conta"}},
	{Canonical: "nome_conta", Names: []string{"Descrição", "Nome da Conta", "Conta"}},
	{Canonical: "fl_ativa", Names: []string{"Ativa", "Status"}},
}

var required = []string{"cod_conta", "nome_conta", "fl_ativa"}

func TestReconcile_RenamesAndDrops(t *testing.T) {
	in := columns.Table{
		Columns: []string{"Código Contábil", "Observação", "DESCRIÇÃO", "Ativa"},
		Rows: [][]string{
			{"1.1", "x", "Ativo", "S"},
			{"1.2", "y"},
		},
	}

	res, err := columns.Reconcile(in, aliases, required)
	require.NoError(t, err)

	assert.Equal(t, []string{"cod_conta", "nome_conta", "fl_ativa"}, res.Table.Columns)
	assert.Equal(t, [][]string{{"1.1", "Ativo", "S"}, {"1.2", "", ""}}, res.Table.Rows)
	assert.Equal(t, []string{"Observação"}, res.Dropped)
	assert.Equal(t, "DESCRIÇÃO", res.Renamed["nome_conta"])
}

func TestReconcile_Idempotent(t *testing.T) {
	in := columns.Table{Columns: []string{"cod_conta", "nome_conta", "fl_ativa"}}

	first, err := columns.Reconcile(in, aliases, required)
	require.NoError(t, err)

	second, err := columns.Reconcile(first.Table, aliases, required)
	require.NoError(t, err)

	assert.Equal(t, in.Columns, second.Table.Columns)
	assert.Empty(t, second.Dropped)
}

func TestReconcile_ConsumeOnce(t *testing.T) {
	// "Conta" is an alias of both fields; the earlier field claims it and the
	// later one keeps scanning its own aliases.
	in := columns.Table{Columns: []string{"Conta", "Nome da Conta", "Status", "Ativa"}}

	res, err := columns.Reconcile(in, aliases, required)
	require.NoError(t, err)

	assert.Equal(t, []string{"cod_conta", "nome_conta", "fl_ativa"}, res.Table.Columns)
	assert.Equal(t, "Ativa", res.Renamed["fl_ativa"], "declaration order decides between aliases")
	assert.Equal(t, []string{"Status"}, res.Dropped)
}

func TestReconcile_NoDuplicateCanonicalNames(t *testing.T) {
	in := columns.Table{Columns: []string{"cod_conta", "Código Contábil", "cod-conta", "nome_conta", "fl_ativa"}}

	res, err := columns.Reconcile(in, aliases, required)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, c := range res.Table.Columns {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}

	assert.Equal(t, "cod_conta", res.Renamed["cod_conta"])
	assert.ElementsMatch(t, []string{"Código Contábil", "cod-conta"}, res.Dropped)
}

func TestReconcile_MissingRequired(t *testing.T) {
	in := columns.Table{Columns: []string{"Código Contábil", "Descrição", "Conta Ativada"}}

	_, err := columns.Reconcile(in, aliases, required)
	require.ErrorIs(t, err, apperr.ErrSchema)

	var schemaErr *apperr.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"fl_ativa"}, schemaErr.Missing)
	assert.Equal(t, []string{"cod_conta", "nome_conta"}, schemaErr.Columns)
	assert.Equal(t, "Conta Ativada", schemaErr.Hints["fl_ativa"])
}

func TestTable_Index(t *testing.T) {
	idx := columns.Table{Columns: []string{"a", "b", "a"}}.Index()
	assert.Equal(t, map[string]int{"a": 0, "b": 1}, idx)
}
