package salaryregister

import (
	"bytes"
	"html/template"

	"github.com/cmlabs-hris/payroll-report/internal/domain/salaryregister"
	"github.com/cmlabs-hris/payroll-report/internal/pkg/i18n"
	"github.com/shopspring/decimal"
)

var payoutCardTemplate = template.Must(template.New("payout_card").Parse(`
<div class="col-xs-12 column-break">
{{- range .}}
	<table class="table table-condensed">
		<thead>
			<tr>
			{{- range .}}
				<th style="width: {{.Width}}px" class="text-center">{{.Label}}</th>
			{{- end}}
			</tr>
		</thead>
		<tbody>
			<tr>
			{{- range .}}
				<td class="text-center">
					<div {{if .Bold}}style="font-weight: bold" {{end}}class="value">{{.Value}}</div>
				</td>
			{{- end}}
			</tr>
		</tbody>
	</table>
{{- end}}
</div>
`))

// payoutLine is one figure of the payout summary. Label is a catalog key.
type payoutLine struct {
	Label  string
	Amount decimal.Decimal
	Width  int
	Bold   bool
}

// payoutSections lists what has to be paid out in total, then how it
// splits across the receiving parties.
func payoutSections(totals salaryregister.Totals) [][]payoutLine {
	return [][]payoutLine{
		{
			{Label: "Salary", Amount: totals.AmountToBePaid(), Width: 150},
			{Label: "Social Security", Amount: totals.SocialSecurity, Width: 150},
			{Label: "Total Disbursement", Amount: totals.TotalDisbursement(), Width: 150, Bold: true},
		},
		{
			{Label: "Payroll Bank Account", Amount: totals.NetPay, Width: 150},
			{Label: "Social Security Office", Amount: totals.SocialSecurityPayout(), Width: 80},
			{Label: "Revenue Department", Amount: totals.IncomeTax, Width: 80},
			{Label: "Revenue Department (Student Loan)", Amount: totals.StudentLoan, Width: 150},
			{Label: "Total Payout", Amount: totals.TotalPayout(), Width: 80, Bold: true},
		},
	}
}

type payoutCell struct {
	Label string
	Value string
	Width int
	Bold  bool
}

// renderPayoutCard renders the payout summary shown above the register.
func renderPayoutCard(totals salaryregister.Totals, currency string, locale i18n.Locale) (string, error) {
	sections := payoutSections(totals)
	tables := make([][]payoutCell, 0, len(sections))
	for _, lines := range sections {
		cells := make([]payoutCell, 0, len(lines))
		for _, line := range lines {
			value := locale.Amount(line.Amount)
			if currency != "" {
				value = currency + " " + value
			}
			cells = append(cells, payoutCell{
				Label: locale.T(line.Label),
				Value: value,
				Width: line.Width,
				Bold:  line.Bold,
			})
		}
		tables = append(tables, cells)
	}

	var buf bytes.Buffer
	if err := payoutCardTemplate.Execute(&buf, tables); err != nil {
		return "", err
	}
	return buf.String(), nil
}
