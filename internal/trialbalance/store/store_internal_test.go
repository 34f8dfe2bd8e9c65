package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ebisa/contabil/internal/trialbalance"
)

func TestInsertItemsQuery(t *testing.T) {
	code := 3
	items := []trialbalance.ItemParams{
		{AccountCode: "1.1", AccountName: "Caixa", CurrentBalance: 10},
		{AccountCode: "2.1", AccountName: "Fornecedores", CostCenterCode: &code},
	}

	query, args := insertItemsQuery(42, items)

	assert.Contains(t, query, "($1, $2, $3, $4, $5, $6, $7, $8, $9, $10), ($11, $12,")
	assert.Contains(t, query, "$20)")
	assert.Len(t, args, 20)
	assert.Equal(t, int64(42), args[0])
	assert.Equal(t, int64(42), args[10])
	assert.Equal(t, &code, args[18])
}

func TestImportLockKey(t *testing.T) {
	a := importLockKey(1, 1, 2025)

	assert.Equal(t, a, importLockKey(1, 1, 2025))
	assert.NotEqual(t, a, importLockKey(1, 2, 2025))
	assert.NotEqual(t, a, importLockKey(2, 1, 2025))
}
