package salaryregister

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/cmlabs-hris/payroll-report/internal/domain/salaryregister"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	svc := newTestService(t, newTestRepo())

	file, err := svc.ExportXLSX(companyContext(t), salaryregister.ReportRequest{Params: url.Values{}})
	require.NoError(t, err)

	assert.Equal(t, xlsxContentType, file.ContentType)
	assert.True(t, strings.HasPrefix(file.Filename, "salary_register_summary_2026-09-19_2026-10-19_"), file.Filename)
	assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))
	require.NotEmpty(t, file.Content)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	header := func(cell string) string {
		v, err := f.GetCellValue(sheetName, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Salary Slip ID", header("A1"))
	assert.Equal(t, "Gross Pay", header("J1"))
	assert.Equal(t, "Net Pay", header("M1"))
	assert.Equal(t, "", header("N1"), "hidden currency column is not exported")

	assert.Equal(t, "SAL-001", header("A2"))
	assert.Equal(t, "Alice", header("C2"))
	assert.Equal(t, "Basic", header("I3"))
	assert.Equal(t, "SAL-002", header("A6"))

	// Slip amounts carry the highlight style, component amounts do not
	slipStyle, err := f.GetCellStyle(sheetName, "J2")
	require.NoError(t, err)
	componentStyle, err := f.GetCellStyle(sheetName, "J3")
	require.NoError(t, err)
	assert.NotEqual(t, slipStyle, componentStyle)

	// Totals follow the data rows after one blank row
	assert.Equal(t, "Salary", header("A11"))
	assert.Equal(t, "Total Payout", header("A18"))
}

func TestExportXLSX_PropagatesReportErrors(t *testing.T) {
	svc := newTestService(t, newTestRepo())

	_, err := svc.ExportXLSX(companyContext(t), salaryregister.ReportRequest{Params: url.Values{"to_date": {"yesterday"}}})
	require.Error(t, err)
}

func TestRenderWorkbook_EmptyReport(t *testing.T) {
	content, err := renderWorkbook(salaryregister.Report{}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExportXLSX_ThaiLabels(t *testing.T) {
	svc := newTestService(t, newTestRepo())

	file, err := svc.ExportXLSX(companyContext(t), salaryregister.ReportRequest{Params: url.Values{}, AcceptLanguage: "th"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()

	cell := func(name string) string {
		v, err := f.GetCellValue(sheetName, name)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "เลขที่สลิปเงินเดือน", cell("A1"))
	assert.Equal(t, "เงินเดือน", cell("A11"))
	assert.Equal(t, "ประกันสังคม", cell("A12"))
	assert.Equal(t, "รวมยอดจ่าย", cell("A18"))
}

func TestRenderWorkbook_RoundsAmountsToCents(t *testing.T) {
	columns := salaryregister.Columns(nil)
	report := salaryregister.Report{
		Columns: columns,
		Rows: []salaryregister.ReportRow{{Data: salaryregister.Row{
			salaryregister.ColumnIndent:   1,
			salaryregister.ColumnGrossPay: decimal.RequireFromString("2.675"),
		}}},
		Totals: &salaryregister.Totals{NetPay: decimal.RequireFromString("1.005")},
	}

	content, err := renderWorkbook(report, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	raw := excelize.Options{RawCellValue: true}
	gross, err := f.GetCellValue(sheetName, "J2", raw)
	require.NoError(t, err)
	assert.Equal(t, "2.68", gross)

	// Row 4 starts the totals; the payroll bank account line carries net pay
	assert.Equal(t, "Payroll Bank Account", mustCell(t, f, "A7"))
	net, err := f.GetCellValue(sheetName, "B7", raw)
	require.NoError(t, err)
	assert.Equal(t, "1.01", net)
}

func mustCell(t *testing.T, f *excelize.File, name string) string {
	t.Helper()
	v, err := f.GetCellValue(sheetName, name)
	require.NoError(t, err)
	return v
}
