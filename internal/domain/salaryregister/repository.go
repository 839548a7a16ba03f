package salaryregister

import (
	"context"
	"time"
)

// SalaryRegisterRepository defines the reads behind the salary register.
// Every query is scoped by companyID.
type SalaryRegisterRepository interface {
	// Salary slips matching the filters, ordered by employee then start date
	GetSalarySlips(ctx context.Context, query SlipQuery) ([]SalarySlip, error)

	// Distinct components used on the given slips, with their type
	GetSalaryComponents(ctx context.Context, companyID string, slipIDs []string) ([]SalaryComponent, error)

	// Detail lines of the given slips for one component type
	GetSalaryDetails(ctx context.Context, companyID string, slipIDs []string, componentType ComponentType) ([]SalaryDetail, error)

	// Joining date per employee ID
	GetEmployeeJoiningDates(ctx context.Context, companyID string) (map[string]time.Time, error)
}
