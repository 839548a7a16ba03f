package salaryregister

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocStatus enum
type DocStatus string

const (
	DocStatusDraft     DocStatus = "Draft"
	DocStatusSubmitted DocStatus = "Submitted"
	DocStatusCancelled DocStatus = "Cancelled"
)

var docStatusCodes = map[DocStatus]int{
	DocStatusDraft:     0,
	DocStatusSubmitted: 1,
	DocStatusCancelled: 2,
}

// Code returns the stored docstatus value and whether s is a known status.
func (s DocStatus) Code() (int, bool) {
	code, ok := docStatusCodes[s]
	return code, ok
}

func DocStatusChoices() []string {
	return []string{string(DocStatusDraft), string(DocStatusSubmitted), string(DocStatusCancelled)}
}

// ComponentType enum
type ComponentType string

const (
	ComponentTypeEarning   ComponentType = "earning"
	ComponentTypeDeduction ComponentType = "deduction"
)

// ParentField names the salary slip table a salary detail belongs to.
func (t ComponentType) ParentField() string {
	if t == ComponentTypeDeduction {
		return "deductions"
	}
	return "earnings"
}

// SalarySlip - One employee's payroll document for one pay period
type SalarySlip struct {
	ID             string
	CompanyID      string
	EmployeeID     string
	EmployeeName   string
	Department     *string
	Designation    *string
	StartDate      time.Time
	EndDate        time.Time
	Currency       string
	ExchangeRate   decimal.Decimal
	GrossPay       decimal.Decimal
	TotalDeduction decimal.Decimal
	NetPay         decimal.Decimal
	DocStatus      int
}

// SalaryDetail - One earning or deduction line on a salary slip
type SalaryDetail struct {
	SalarySlipID    string
	SalaryComponent string
	Amount          decimal.Decimal
	ExchangeRate    decimal.Decimal
}

// SalaryComponent - Component name with its earning/deduction type
type SalaryComponent struct {
	Name string
	Type ComponentType
}

// SlipQuery is the repository-level form of the report filters.
type SlipQuery struct {
	CompanyID  string
	FromDate   *time.Time
	ToDate     *time.Time
	EmployeeID *string
	Currency   *string
	DocStatus  *int
}
