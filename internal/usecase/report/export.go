package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

type ExportMonthlyReport struct {
	report *GetMonthlyReport
	store  ObjectStore
	audit  *audit.Dispatcher
}

func NewExportMonthlyReport(
	report *GetMonthlyReport,
	store ObjectStore,
	audit *audit.Dispatcher,
) *ExportMonthlyReport {
	return &ExportMonthlyReport{
		report: report,
		store:  store,
		audit:  audit,
	}
}

func objectKey(year, month int) string {
	return fmt.Sprintf("reports/monthly/%04d-%02d.json", year, month)
}

// Execute gera o relatório e grava o JSON no bucket; retorna a chave do objeto.
func (uc *ExportMonthlyReport) Execute(
	ctx context.Context,
	year int,
	month int,
) (string, error) {

	if uc.store == nil {
		return "", httperr.ErrInvalidState("report_export_disabled")
	}

	rep, err := uc.report.Execute(ctx, year, month)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(rep)
	if err != nil {
		return "", err
	}

	key := objectKey(year, month)
	if err := uc.store.Put(ctx, key, body, "application/json"); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "monthly_report_exported",
		Entity:   "report",
		Metadata: map[string]any{"key": key},
	})

	return key, nil
}
