package chartofaccounts

import (
	"time"

	"github.com/ebisa/contabil/internal/chartofaccounts"
)

type vigencyResponse struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"empresa_id"`
	CompanyName string    `json:"empresa"`
	ChartID     int64     `json:"plano_contas_id"`
	ChartName   string    `json:"plano_contas"`
	Year        int       `json:"ano_vigencia"`
	Active      bool      `json:"fl_ativo"`
	User        string    `json:"user_importacao"`
	CreatedAt   time.Time `json:"created_at"`
}

type itemResponse struct {
	ID                int64      `json:"id"`
	AccountCode       string     `json:"cod_conta"`
	AccountName       string     `json:"nome_conta"`
	ReducedCode       *int       `json:"cod_reduzido"`
	GroupCode         *int       `json:"grupo_contas"`
	AccountType       string     `json:"tipo_conta,omitempty"`
	UseInBalanceSheet bool       `json:"usar_no_balanco"`
	AllowsSplit       bool       `json:"permite_rateio"`
	Contra            bool       `json:"redutora"`
	ReferenceAccount  string     `json:"conta_referencial,omitempty"`
	Active            bool       `json:"fl_ativa"`
	RegisteredAt      *time.Time `json:"data_cadastramento,omitempty"`
	EventCode         string     `json:"codigo_evento,omitempty"`
}

func toVigencyResponseList(vs []*chartofaccounts.Vigency) []vigencyResponse {
	resp := make([]vigencyResponse, len(vs))
	for i, v := range vs {
		resp[i] = vigencyResponse{
			ID:          v.ID,
			CompanyID:   v.CompanyID,
			CompanyName: v.CompanyName,
			ChartID:     v.ChartID,
			ChartName:   v.ChartName,
			Year:        v.Year,
			Active:      v.Active,
			User:        v.User,
			CreatedAt:   v.CreatedAt,
		}
	}

	return resp
}

func toItemResponseList(items []*chartofaccounts.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = itemResponse{
			ID:                it.ID,
			AccountCode:       it.AccountCode,
			AccountName:       it.AccountName,
			ReducedCode:       it.ReducedCode,
			GroupCode:         it.GroupCode,
			AccountType:       it.AccountType,
			UseInBalanceSheet: it.UseInBalanceSheet,
			AllowsSplit:       it.AllowsSplit,
			Contra:            it.Contra,
			ReferenceAccount:  it.ReferenceAccount,
			Active:            it.Active,
			RegisteredAt:      it.RegisteredAt,
			EventCode:         it.EventCode,
		}
	}

	return resp
}
