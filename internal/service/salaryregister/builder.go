package salaryregister

import (
	"fmt"
	"html"
	"sort"
	"time"

	"github.com/cmlabs-hris/payroll-report/internal/config"
	"github.com/cmlabs-hris/payroll-report/internal/domain/salaryregister"
	"github.com/cmlabs-hris/payroll-report/internal/pkg/i18n"
	"github.com/shopspring/decimal"
)

type bucket int

const (
	bucketNone bucket = iota
	bucketSocialSecurity
	bucketIncomeTax
	bucketStudentLoan
	bucketPenalty
)

// deductionBuckets assigns deduction components to payout card figures.
type deductionBuckets map[string]bucket

func newDeductionBuckets(cfg config.ReportConfig) deductionBuckets {
	b := deductionBuckets{}
	for _, name := range cfg.PenaltyComponents {
		b[name] = bucketPenalty
	}
	if cfg.SocialSecurityComponent != "" {
		b[cfg.SocialSecurityComponent] = bucketSocialSecurity
	}
	if cfg.IncomeTaxComponent != "" {
		b[cfg.IncomeTaxComponent] = bucketIncomeTax
	}
	if cfg.StudentLoanComponent != "" {
		b[cfg.StudentLoanComponent] = bucketStudentLoan
	}
	return b
}

func (b deductionBuckets) add(totals *salaryregister.Totals, component string, amount decimal.Decimal) {
	switch b[component] {
	case bucketSocialSecurity:
		totals.SocialSecurity = totals.SocialSecurity.Add(amount)
	case bucketIncomeTax:
		totals.IncomeTax = totals.IncomeTax.Add(amount)
	case bucketStudentLoan:
		totals.StudentLoan = totals.StudentLoan.Add(amount)
	case bucketPenalty:
		totals.Penalty = totals.Penalty.Add(amount)
	}
}

type reportBuilder struct {
	currency        string
	companyCurrency string
	buckets         deductionBuckets
}

// inCompanyCurrency reports whether amounts are converted with the slip
// exchange rate. Only an explicit request for the company currency does so.
func (b *reportBuilder) inCompanyCurrency() bool {
	return b.currency == b.companyCurrency
}

type componentAmount struct {
	name   string
	amount *decimal.Decimal
}

func (b *reportBuilder) build(
	slips []salaryregister.SalarySlip,
	components []salaryregister.SalaryComponent,
	earnings, deductions []salaryregister.SalaryDetail,
	joiningDates map[string]time.Time,
	tr salaryregister.Translator,
) ([]salaryregister.Column, []salaryregister.Row, salaryregister.Totals) {
	columns := salaryregister.Columns(tr)
	earningTypes, deductionTypes := splitComponentTypes(components)
	earningMap := b.detailMap(earnings)
	deductionMap := b.detailMap(deductions)
	rowCurrency := reportCurrency(b.currency, b.companyCurrency)

	totals := salaryregister.Totals{}
	var rows []salaryregister.Row

	for _, slip := range slips {
		salaryregister.WidenColumns(columns, slip)

		row := b.slipRow(slip, joiningDates, rowCurrency)
		totals.GrossPay = totals.GrossPay.Add(row[salaryregister.ColumnGrossPay].(decimal.Decimal))
		totals.NetPay = totals.NetPay.Add(row[salaryregister.ColumnNetPay].(decimal.Decimal))
		rows = append(rows, row)

		earns := rankComponents(earningTypes, earningMap[slip.ID])
		deducts := rankComponents(deductionTypes, deductionMap[slip.ID])

		for i := 0; i < max(len(earns), len(deducts)); i++ {
			componentRow := salaryregister.Row{
				salaryregister.ColumnIndent:   1,
				salaryregister.ColumnCurrency: rowCurrency,
			}
			if i < len(earns) {
				componentRow[salaryregister.ColumnEarnType] = earns[i].name
				componentRow[salaryregister.ColumnGrossPay] = amountValue(earns[i].amount)
			}
			if i < len(deducts) {
				componentRow[salaryregister.ColumnDeductType] = deducts[i].name
				componentRow[salaryregister.ColumnTotalDeduction] = amountValue(deducts[i].amount)
				if deducts[i].amount != nil {
					b.buckets.add(&totals, deducts[i].name, *deducts[i].amount)
				}
			}
			rows = append(rows, componentRow)
		}
	}

	return columns, rows, totals
}

func (b *reportBuilder) slipRow(slip salaryregister.SalarySlip, joiningDates map[string]time.Time, currency string) salaryregister.Row {
	gross, deduction, net := slip.GrossPay, slip.TotalDeduction, slip.NetPay
	if b.inCompanyCurrency() {
		gross = gross.Mul(slip.ExchangeRate)
		deduction = deduction.Mul(slip.ExchangeRate)
		net = net.Mul(slip.ExchangeRate)
	}

	var joined any
	if d, ok := joiningDates[slip.EmployeeID]; ok {
		joined = salaryregister.FormatDate(d)
	}

	return salaryregister.Row{
		salaryregister.ColumnIndent:         0,
		salaryregister.ColumnSalarySlipID:   slip.ID,
		salaryregister.ColumnEmployee:       slip.EmployeeID,
		salaryregister.ColumnEmployeeName:   slip.EmployeeName,
		salaryregister.ColumnDateOfJoining:  joined,
		salaryregister.ColumnDepartment:     stringValue(slip.Department),
		salaryregister.ColumnDesignation:    stringValue(slip.Designation),
		salaryregister.ColumnStartDate:      salaryregister.FormatDate(slip.StartDate),
		salaryregister.ColumnEndDate:        salaryregister.FormatDate(slip.EndDate),
		salaryregister.ColumnCurrency:       currency,
		salaryregister.ColumnGrossPay:       gross,
		salaryregister.ColumnTotalDeduction: deduction,
		salaryregister.ColumnNetPay:         net,
	}
}

// detailMap sums detail amounts per slip and component. A zero exchange
// rate counts as 1.
func (b *reportBuilder) detailMap(details []salaryregister.SalaryDetail) map[string]map[string]decimal.Decimal {
	result := make(map[string]map[string]decimal.Decimal)
	for _, d := range details {
		perSlip, ok := result[d.SalarySlipID]
		if !ok {
			perSlip = make(map[string]decimal.Decimal)
			result[d.SalarySlipID] = perSlip
		}

		amount := d.Amount
		if b.inCompanyCurrency() {
			rate := d.ExchangeRate
			if rate.IsZero() {
				rate = decimal.NewFromInt(1)
			}
			amount = amount.Mul(rate)
		}
		perSlip[d.SalaryComponent] = perSlip[d.SalaryComponent].Add(amount)
	}
	return result
}

func splitComponentTypes(components []salaryregister.SalaryComponent) (earningTypes, deductionTypes []string) {
	for _, c := range components {
		switch c.Type {
		case salaryregister.ComponentTypeDeduction:
			deductionTypes = append(deductionTypes, c.Name)
		default:
			earningTypes = append(earningTypes, c.Name)
		}
	}
	sort.Strings(earningTypes)
	sort.Strings(deductionTypes)
	return earningTypes, deductionTypes
}

// rankComponents lists every component type with the slip's amount for
// it, largest first. Types the slip does not use sort last, by name.
func rankComponents(types []string, amounts map[string]decimal.Decimal) []componentAmount {
	ranked := make([]componentAmount, 0, len(types))
	for _, name := range types {
		ca := componentAmount{name: name}
		if amount, ok := amounts[name]; ok {
			ca.amount = &amount
		}
		ranked = append(ranked, ca)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].amount, ranked[j].amount
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.GreaterThan(*b)
		}
	})
	return ranked
}

func amountValue(amount *decimal.Decimal) any {
	if amount == nil {
		return nil
	}
	return *amount
}

func stringValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// displayRows renders every visible cell of every row through the report
// cell formatter.
func displayRows(rows []salaryregister.Row, columns []salaryregister.Column, def salaryregister.DefaultFormatter) []salaryregister.ReportRow {
	result := make([]salaryregister.ReportRow, 0, len(rows))
	for i, row := range rows {
		display := make(map[string]string, len(columns))
		for _, column := range columns {
			if column.Hidden {
				continue
			}
			display[column.Fieldname] = salaryregister.Format(row[column.Fieldname], i, column, row, def)
		}
		result = append(result, salaryregister.ReportRow{Data: row, Display: display})
	}
	return result
}

// defaultFormatter renders cells before highlighting: currency columns as
// grouped two-decimal amounts prefixed by the row currency.
func defaultFormatter(locale i18n.Locale) salaryregister.DefaultFormatter {
	return func(value any, _ int, column salaryregister.Column, data salaryregister.Row) string {
		if value == nil {
			return ""
		}

		if column.Fieldtype == salaryregister.FieldtypeCurrency {
			if amount, ok := toDecimal(value); ok {
				s := locale.Amount(amount)
				if currency, _ := data[column.Options].(string); currency != "" {
					s = currency + " " + s
				}
				return html.EscapeString(s)
			}
		}
		return html.EscapeString(fmt.Sprint(value))
	}
}

func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, false
		}
		return *v, true
	case float64:
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	}
	return decimal.Decimal{}, false
}
