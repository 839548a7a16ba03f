package salaryregister

import (
	"time"

	"github.com/cmlabs-hris/payroll-report/internal/pkg/validator"
)

type Fieldtype string

const (
	FieldtypeDate     Fieldtype = "Date"
	FieldtypeLink     Fieldtype = "Link"
	FieldtypeData     Fieldtype = "Data"
	FieldtypeSelect   Fieldtype = "Select"
	FieldtypeCurrency Fieldtype = "Currency"
)

const (
	FilterFromDate  = "from_date"
	FilterToDate    = "to_date"
	FilterCurrency  = "currency"
	FilterEmployee  = "employee"
	FilterCompany   = "company"
	FilterDocStatus = "docstatus"
)

// FilterDescriptor describes one input control of the report.
// Link descriptors resolve against the entity type in Options;
// Select descriptors offer Choices.
type FilterDescriptor struct {
	Fieldname string    `json:"fieldname"`
	Label     string    `json:"label"`
	Fieldtype Fieldtype `json:"fieldtype"`
	Options   string    `json:"options,omitempty"`
	Choices   []string  `json:"choices,omitempty"`
	Default   string    `json:"default,omitempty"`
	Required  bool      `json:"reqd"`
	Width     string    `json:"width"`
}

// Defaults is the default-settings lookup the filter set resolves its
// default values against.
type Defaults interface {
	Today() time.Time
	// DefaultCompany is the company the current user works in.
	DefaultCompany() string
	// CompanyCurrency is the currency of DefaultCompany.
	CompanyCurrency() string
}

// Translator translates a label into the display language.
type Translator func(string) string

// Filters returns the report's filter descriptors in display order.
func Filters(defaults Defaults, tr Translator) []FilterDescriptor {
	if tr == nil {
		tr = func(s string) string { return s }
	}
	today := defaults.Today()

	return []FilterDescriptor{
		{
			Fieldname: FilterFromDate,
			Label:     tr("From"),
			Fieldtype: FieldtypeDate,
			Default:   FormatDate(AddMonths(today, -1)),
			Required:  true,
			Width:     "100px",
		},
		{
			Fieldname: FilterToDate,
			Label:     tr("To"),
			Fieldtype: FieldtypeDate,
			Default:   FormatDate(today),
			Required:  true,
			Width:     "100px",
		},
		{
			Fieldname: FilterCurrency,
			Label:     tr("Currency"),
			Fieldtype: FieldtypeLink,
			Options:   "Currency",
			Default:   defaults.CompanyCurrency(),
			Width:     "50px",
		},
		{
			Fieldname: FilterEmployee,
			Label:     tr("Employee"),
			Fieldtype: FieldtypeLink,
			Options:   "Employee",
			Width:     "100px",
		},
		{
			Fieldname: FilterCompany,
			Label:     tr("Company"),
			Fieldtype: FieldtypeLink,
			Options:   "Company",
			Default:   defaults.DefaultCompany(),
			Required:  true,
			Width:     "100px",
		},
		{
			Fieldname: FilterDocStatus,
			Label:     tr("Document Status"),
			Fieldtype: FieldtypeSelect,
			Choices:   DocStatusChoices(),
			Default:   string(DocStatusSubmitted),
			Width:     "100px",
		},
	}
}

// AddMonths shifts t by n calendar months, clamping the day to the last
// day of the target month (Mar 31 minus one month is Feb 28/29).
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func FormatDate(t time.Time) string {
	return t.Format(validator.DateLayout)
}
