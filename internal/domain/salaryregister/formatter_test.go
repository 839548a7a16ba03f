package salaryregister

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseline(value any, _ int, _ Column, _ Row) string {
	return fmt.Sprintf("<div>%v</div>", value)
}

func TestFormat_HighlightsSlipRows(t *testing.T) {
	data := Row{ColumnSalarySlipID: "SAL-0001", ColumnGrossPay: 1500}

	tests := []struct {
		column string
		want   string
	}{
		{ColumnGrossPay, "<span style='color:green;font-weight:bold'><div>1500</div></span>"},
		{ColumnTotalDeduction, "<span style='color:red;font-weight:bold'><div>1500</div></span>"},
		{ColumnNetPay, "<span style='color:blue;font-weight:bold'><div>1500</div></span>"},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			got := Format(1500, 0, Column{Fieldname: tt.column}, data, baseline)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_RowsWithoutSlipAreUnchanged(t *testing.T) {
	rows := map[string]Row{
		"nil data":       nil,
		"missing id":     {ColumnEarnType: "Basic"},
		"empty id":       {ColumnSalarySlipID: ""},
		"nil id":         {ColumnSalarySlipID: nil},
		"nil string ptr": {ColumnSalarySlipID: (*string)(nil)},
	}

	for name, data := range rows {
		for _, column := range []string{ColumnGrossPay, ColumnTotalDeduction, ColumnNetPay} {
			t.Run(name+"/"+column, func(t *testing.T) {
				got := Format(42, 3, Column{Fieldname: column}, data, baseline)
				assert.Equal(t, "<div>42</div>", got)
			})
		}
	}
}

func TestFormat_OtherColumnsAreUnchanged(t *testing.T) {
	data := Row{ColumnSalarySlipID: "SAL-0001"}
	for _, column := range []string{ColumnEmployee, ColumnEarnType, ColumnCurrency, "gross_pay_extra", ""} {
		got := Format("x", 0, Column{Fieldname: column}, data, baseline)
		assert.Equal(t, "<div>x</div>", got, column)
	}
}

func TestFormat_DoesNotMutateInputs(t *testing.T) {
	data := Row{ColumnSalarySlipID: "SAL-0001", ColumnNetPay: 10}
	column := Column{Fieldname: ColumnNetPay, Label: "Net Pay", Width: 120}

	Format(10, 0, column, data, baseline)

	assert.Equal(t, Row{ColumnSalarySlipID: "SAL-0001", ColumnNetPay: 10}, data)
	assert.Equal(t, Column{Fieldname: ColumnNetPay, Label: "Net Pay", Width: 120}, column)
}

func TestFormat_NilDefaultFormatter(t *testing.T) {
	assert.Equal(t, "", Format(nil, 0, Column{Fieldname: ColumnGrossPay}, nil, nil))
	assert.Equal(t, "7", Format(7, 0, Column{Fieldname: ColumnEmployee}, nil, nil))
	assert.Equal(t,
		"<span style='color:green;font-weight:bold'>7</span>",
		Format(7, 0, Column{Fieldname: ColumnGrossPay}, Row{ColumnSalarySlipID: "SAL-1"}, nil),
	)
}

func TestHighlight(t *testing.T) {
	slip := "SAL-0002"
	color, ok := Highlight(Column{Fieldname: ColumnTotalDeduction}, Row{ColumnSalarySlipID: &slip})
	assert.True(t, ok)
	assert.Equal(t, HighlightRed, color)

	_, ok = Highlight(Column{Fieldname: ColumnEmployeeName}, Row{ColumnSalarySlipID: slip})
	assert.False(t, ok)
}

func TestHasSalarySlip(t *testing.T) {
	slip := "SAL-0003"
	empty := ""
	var missing *string

	tests := []struct {
		name string
		data Row
		want bool
	}{
		{name: "string id", data: Row{ColumnSalarySlipID: "SAL-0003"}, want: true},
		{name: "pointer id", data: Row{ColumnSalarySlipID: &slip}, want: true},
		{name: "empty string", data: Row{ColumnSalarySlipID: ""}, want: false},
		{name: "empty pointer", data: Row{ColumnSalarySlipID: &empty}, want: false},
		{name: "nil pointer", data: Row{ColumnSalarySlipID: missing}, want: false},
		{name: "nil value", data: Row{ColumnSalarySlipID: nil}, want: false},
		{name: "zero int", data: Row{ColumnSalarySlipID: 0}, want: false},
		{name: "false", data: Row{ColumnSalarySlipID: false}, want: false},
		{name: "nil row", data: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasSalarySlip(tt.data))

			_, ok := Highlight(Column{Fieldname: ColumnNetPay}, tt.data)
			assert.Equal(t, tt.want, ok)
		})
	}
}
