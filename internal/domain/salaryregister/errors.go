package salaryregister

import "errors"

var (
	ErrCompanyRequired        = errors.New("company is required")
	ErrCompanyNotFound        = errors.New("company not found")
	ErrCompanyAccessDenied    = errors.New("cannot report on another company")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
