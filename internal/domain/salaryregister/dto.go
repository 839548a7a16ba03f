package salaryregister

import (
	"net/url"
	"time"

	"github.com/cmlabs-hris/payroll-report/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ReportName is the key the report is registered under.
const ReportName = "Salary Register Summary"

// ========== FILTER DTOs ==========

type FiltersRequest struct {
	AcceptLanguage string
}

type FiltersResponse struct {
	ReportName string             `json:"report_name"`
	Filters    []FilterDescriptor `json:"filters"`
}

// FilterValues are the values collected from the filter controls.
type FilterValues struct {
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Currency  string `json:"currency,omitempty"`
	Employee  string `json:"employee,omitempty"`
	Company   string `json:"company"`
	DocStatus string `json:"docstatus,omitempty"`
}

func (f FilterValues) Get(fieldname string) string {
	switch fieldname {
	case FilterFromDate:
		return f.FromDate
	case FilterToDate:
		return f.ToDate
	case FilterCurrency:
		return f.Currency
	case FilterEmployee:
		return f.Employee
	case FilterCompany:
		return f.Company
	case FilterDocStatus:
		return f.DocStatus
	}
	return ""
}

func (f *FilterValues) Set(fieldname, value string) {
	switch fieldname {
	case FilterFromDate:
		f.FromDate = value
	case FilterToDate:
		f.ToDate = value
	case FilterCurrency:
		f.Currency = value
	case FilterEmployee:
		f.Employee = value
	case FilterCompany:
		f.Company = value
	case FilterDocStatus:
		f.DocStatus = value
	}
}

// ParseFilterValues reads filter values from query parameters. A parameter
// that is absent takes the descriptor default; one sent empty stays empty.
func ParseFilterValues(params url.Values, descriptors []FilterDescriptor) FilterValues {
	var f FilterValues
	for _, d := range descriptors {
		if params.Has(d.Fieldname) {
			f.Set(d.Fieldname, params.Get(d.Fieldname))
			continue
		}
		f.Set(d.Fieldname, d.Default)
	}
	return f
}

// Validate checks required flags and the input kind of each descriptor.
func (f FilterValues) Validate(descriptors []FilterDescriptor) error {
	var errs validator.ValidationErrors

	for _, d := range descriptors {
		value := f.Get(d.Fieldname)
		if validator.IsEmpty(value) {
			if d.Required {
				errs = append(errs, validator.ValidationError{Field: d.Fieldname, Message: "is required"})
			}
			continue
		}

		switch d.Fieldtype {
		case FieldtypeDate:
			if _, ok := validator.IsValidDate(value); !ok {
				errs = append(errs, validator.ValidationError{Field: d.Fieldname, Message: "must be in YYYY-MM-DD format"})
			}
		case FieldtypeSelect:
			if !validator.IsInSlice(value, d.Choices) {
				errs = append(errs, validator.ValidationError{Field: d.Fieldname, Message: "must be one of the listed options"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SlipQuery converts validated values into repository filters. The
// currency filter only narrows the query when it differs from the
// company currency.
func (f FilterValues) SlipQuery(companyCurrency string) SlipQuery {
	q := SlipQuery{CompanyID: f.Company}

	if t, ok := validator.IsValidDate(f.FromDate); ok {
		q.FromDate = &t
	}
	if t, ok := validator.IsValidDate(f.ToDate); ok {
		q.ToDate = &t
	}
	if f.Employee != "" {
		employee := f.Employee
		q.EmployeeID = &employee
	}
	if f.Currency != "" && f.Currency != companyCurrency {
		currency := f.Currency
		q.Currency = &currency
	}
	if code, ok := DocStatus(f.DocStatus).Code(); ok {
		q.DocStatus = &code
	}
	return q
}

// ========== REPORT DTOs ==========

type ReportRequest struct {
	Params         url.Values
	AcceptLanguage string
}

type Report struct {
	ReportName  string       `json:"report_name"`
	Filters     FilterValues `json:"filters"`
	Currency    string       `json:"currency"`
	GeneratedAt string       `json:"generated_at"`
	Columns     []Column     `json:"columns"`
	Rows        []ReportRow  `json:"rows"`
	Totals      *Totals      `json:"totals,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// ReportRow pairs the raw row with its display strings per column.
type ReportRow struct {
	Data    Row               `json:"data"`
	Display map[string]string `json:"display"`
}

// Totals accumulates the payout card figures.
type Totals struct {
	GrossPay       decimal.Decimal `json:"gross_pay"`
	NetPay         decimal.Decimal `json:"net_pay"`
	SocialSecurity decimal.Decimal `json:"social_security"`
	IncomeTax      decimal.Decimal `json:"income_tax"`
	StudentLoan    decimal.Decimal `json:"student_loan"`
	Penalty        decimal.Decimal `json:"penalty"`
}

// AmountToBePaid is gross pay less penalties, which are withheld without
// being paid to any party.
func (t Totals) AmountToBePaid() decimal.Decimal {
	return t.GrossPay.Sub(t.Penalty)
}

func (t Totals) TotalDisbursement() decimal.Decimal {
	return t.AmountToBePaid().Add(t.SocialSecurity)
}

// SocialSecurityPayout covers the employee and the matching employer share.
func (t Totals) SocialSecurityPayout() decimal.Decimal {
	return t.SocialSecurity.Mul(decimal.NewFromInt(2))
}

func (t Totals) TotalPayout() decimal.Decimal {
	return t.NetPay.Add(t.SocialSecurityPayout()).Add(t.IncomeTax).Add(t.StudentLoan)
}

// ========== EXPORT DTOs ==========

type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
	GeneratedAt time.Time
}
