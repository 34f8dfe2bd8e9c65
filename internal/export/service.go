// Package export renders stored trial balances as spreadsheets.
package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ebisa/contabil/internal/trialbalance"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=export

type TrialBalances interface {
	Get(ctx context.Context, id int64) (*trialbalance.Batch, error)
	Items(ctx context.Context, batchID int64) ([]*trialbalance.Item, error)
}

const sheetName = "Balancete"

var header = []any{
	"Centro de custo", "Cód. Contábil", "Cód. Reduzido", "Conta",
	"Saldo Anterior", "Débito", "Crédito", "Saldo Atual",
}

// Service handles the export of trial balances.
type Service struct {
	trialBalances TrialBalances
}

func NewService(trialBalances TrialBalances) *Service {
	return &Service{trialBalances: trialBalances}
}

// FileName is the download name of an exported batch.
func FileName(b *trialbalance.Batch) string {
	company := strings.Map(func(r rune) rune {
		if r == ' ' || r == '/' || r == '\\' {
			return '_'
		}

		return r
	}, b.CompanyName)

	return fmt.Sprintf("balancete_%s_%d%02d.xlsx", company, b.Year, b.Month)
}

// TrialBalanceXLSX writes one batch as a workbook: a title row, the column
// header and one row per item. Balances keep their stored sign.
func (s *Service) TrialBalanceXLSX(ctx context.Context, batchID int64, w io.Writer) error {
	batch, err := s.trialBalances.Get(ctx, batchID)
	if err != nil {
		return fmt.Errorf("getting trial balance: %w", err)
	}

	items, err := s.trialBalances.Items(ctx, batchID)
	if err != nil {
		return fmt.Errorf("listing trial balance items: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}})
	if err != nil {
		return fmt.Errorf("creating title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1A659E"}, Pattern: 1},
		Font:      &excelize.Font{Color: "FFFFFF", Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	// 4 is the built-in "#,##0.00" format.
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return fmt.Errorf("creating amount style: %w", err)
	}

	title := fmt.Sprintf("Balancete %s %02d/%d", batch.CompanyName, batch.Month, batch.Year)
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}

	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("styling title: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A3", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if err := f.SetCellStyle(sheetName, "A3", "H3", headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+4)
		if err != nil {
			return err
		}

		row := []any{
			costCenter(it.ItemParams), it.AccountCode, optional(it.ReducedCode), it.AccountName,
			it.PriorBalance, it.Debit, it.Credit, it.CurrentBalance,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if len(items) > 0 {
		last := fmt.Sprintf("H%d", len(items)+3)
		if err := f.SetCellStyle(sheetName, "E4", last, amountStyle); err != nil {
			return fmt.Errorf("styling amounts: %w", err)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 24)
	_ = f.SetColWidth(sheetName, "B", "C", 14)
	_ = f.SetColWidth(sheetName, "D", "D", 40)
	_ = f.SetColWidth(sheetName, "E", "H", 16)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func costCenter(p trialbalance.ItemParams) string {
	switch {
	case p.CostCenterCode != nil && p.CostCenterName != nil:
		return fmt.Sprintf("%d - %s", *p.CostCenterCode, *p.CostCenterName)
	case p.CostCenterName != nil:
		return *p.CostCenterName
	}

	return ""
}

func optional(v *int) any {
	if v == nil {
		return ""
	}

	return *v
}
