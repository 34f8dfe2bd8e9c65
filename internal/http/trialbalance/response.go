package trialbalance

import (
	"time"

	"github.com/ebisa/contabil/internal/trialbalance"
)

type batchResponse struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"empresa_id"`
	CompanyName string    `json:"empresa"`
	Month       int       `json:"mes"`
	Year        int       `json:"ano"`
	User        string    `json:"user_importacao"`
	ImportedAt  time.Time `json:"dt_importacao"`
	ItemCount   int       `json:"itens"`
}

type itemResponse struct {
	ID             int64   `json:"id"`
	AccountCode    string  `json:"cod_conta"`
	AccountName    string  `json:"nome_conta"`
	ReducedCode    *int    `json:"cod_reduzido,omitempty"`
	PriorBalance   float64 `json:"saldo_anterior"`
	Debit          float64 `json:"debito"`
	Credit         float64 `json:"credito"`
	CurrentBalance float64 `json:"saldo_atual"`
	CostCenterCode *int    `json:"cod_centro_custo,omitempty"`
	CostCenterName *string `json:"nome_centro_custo,omitempty"`
}

func toBatchResponse(b *trialbalance.Batch) batchResponse {
	return batchResponse{
		ID:          b.ID,
		CompanyID:   b.CompanyID,
		CompanyName: b.CompanyName,
		Month:       b.Month,
		Year:        b.Year,
		User:        b.User,
		ImportedAt:  b.ImportedAt,
		ItemCount:   b.ItemCount,
	}
}

func toBatchResponseList(bs []*trialbalance.Batch) []batchResponse {
	resp := make([]batchResponse, len(bs))
	for i, b := range bs {
		resp[i] = toBatchResponse(b)
	}

	return resp
}

func toItemResponseList(items []*trialbalance.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = itemResponse{
			ID:             it.ID,
			AccountCode:    it.AccountCode,
			AccountName:    it.AccountName,
			ReducedCode:    it.ReducedCode,
			PriorBalance:   it.PriorBalance,
			Debit:          it.Debit,
			Credit:         it.Credit,
			CurrentBalance: it.CurrentBalance,
			CostCenterCode: it.CostCenterCode,
			CostCenterName: it.CostCenterName,
		}
	}

	return resp
}
