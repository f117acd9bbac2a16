package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/pos-admin/internal/application/ports"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
)

type ReportRepository struct{ mock.Mock }

func (m *ReportRepository) RecentSales(ctx context.Context, limit int) ([]repository.SaleSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.SaleSummary), args.Error(1)
}

// EachSaleForExport recorre las filas configuradas con Return(rows, err).
func (m *ReportRepository) EachSaleForExport(ctx context.Context, fn func(repository.SaleExportRow) error) error {
	args := m.Called(ctx)
	if rows, ok := args.Get(0).([]repository.SaleExportRow); ok {
		for _, r := range rows {
			if err := fn(r); err != nil {
				return err
			}
		}
	}
	return args.Error(1)
}

type SalesReportRenderer struct{ mock.Mock }

func (m *SalesReportRenderer) RenderSalesReport(ctx context.Context, report ports.SalesReport) ([]byte, error) {
	args := m.Called(ctx, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
