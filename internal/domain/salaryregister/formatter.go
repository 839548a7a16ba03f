package salaryregister

import "fmt"

// Row is one result row keyed by column fieldname.
type Row map[string]any

// DefaultFormatter renders a cell the way the report host does when no
// special formatting applies.
type DefaultFormatter func(value any, row int, column Column, data Row) string

const (
	HighlightGreen = "green"
	HighlightRed   = "red"
	HighlightBlue  = "blue"
)

var highlightColors = map[string]string{
	ColumnGrossPay:       HighlightGreen,
	ColumnTotalDeduction: HighlightRed,
	ColumnNetPay:         HighlightBlue,
}

// Highlight reports the color a cell is emphasized with. Only the three
// amount columns of a salary slip row are highlighted; component and
// summary rows carry no salary_slip_id.
func Highlight(column Column, data Row) (string, bool) {
	color, ok := highlightColors[column.Fieldname]
	if !ok || !HasSalarySlip(data) {
		return "", false
	}
	return color, true
}

// HasSalarySlip reports whether data carries a non-empty salary_slip_id.
func HasSalarySlip(data Row) bool {
	if data == nil {
		return false
	}
	switch v := data[ColumnSalarySlipID].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case *string:
		return v != nil && *v != ""
	default:
		return false
	}
}

// Format renders one cell: the default rendering, wrapped in bold colored
// markup when Highlight applies. It never modifies column or data.
func Format(value any, row int, column Column, data Row, def DefaultFormatter) string {
	var s string
	if def != nil {
		s = def(value, row, column, data)
	} else if value != nil {
		s = fmt.Sprint(value)
	}

	color, ok := Highlight(column, data)
	if !ok {
		return s
	}
	return "<span style='color:" + color + ";font-weight:bold'>" + s + "</span>"
}
