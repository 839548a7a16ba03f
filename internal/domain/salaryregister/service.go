package salaryregister

import "context"

// SalaryRegisterService defines the interface for the salary register summary report
type SalaryRegisterService interface {
	// Filter descriptors with defaults resolved for the caller
	GetFilters(ctx context.Context, req FiltersRequest) (FiltersResponse, error)

	// Run the report
	Execute(ctx context.Context, req ReportRequest) (Report, error)

	// Run the report and render it as an xlsx workbook
	ExportXLSX(ctx context.Context, req ReportRequest) (ExportFile, error)
}
