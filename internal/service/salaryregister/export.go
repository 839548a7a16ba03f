package salaryregister

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/payroll-report/internal/domain/salaryregister"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	sheetName       = "Salary Register"
)

var highlightFontColors = map[string]string{
	salaryregister.HighlightGreen: "#008000",
	salaryregister.HighlightRed:   "#FF0000",
	salaryregister.HighlightBlue:  "#0000FF",
}

// ExportXLSX runs the report and renders it as a workbook
func (s *SalaryRegisterServiceImpl) ExportXLSX(ctx context.Context, req salaryregister.ReportRequest) (salaryregister.ExportFile, error) {
	report, err := s.Execute(ctx, req)
	if err != nil {
		return salaryregister.ExportFile{}, err
	}

	content, err := renderWorkbook(report, s.catalog.Locale(req.AcceptLanguage).T)
	if err != nil {
		return salaryregister.ExportFile{}, fmt.Errorf("%w: %v", salaryregister.ErrReportGenerationFailed, err)
	}

	exportID := uuid.New()
	filename := fmt.Sprintf("salary_register_summary_%s_%s_%s.xlsx",
		report.Filters.FromDate, report.Filters.ToDate, exportID.String()[:8])

	s.logger.InfoContext(ctx, "salary register summary exported",
		slog.String("export_id", exportID.String()),
		slog.String("company_id", report.Filters.Company),
		slog.Int("bytes", len(content)),
	)

	return salaryregister.ExportFile{
		Filename:    filename,
		ContentType: xlsxContentType,
		Content:     content,
		GeneratedAt: s.now(),
	}, nil
}

type workbookStyles struct {
	header    int
	amount    int
	indent    int
	highlight map[string]int
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	var styles workbookStyles
	var err error

	styles.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return styles, err
	}

	// 4 is the built-in "#,##0.00" format
	styles.amount, err = f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return styles, err
	}

	styles.indent, err = f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{Indent: 1}})
	if err != nil {
		return styles, err
	}

	styles.highlight = make(map[string]int, len(highlightFontColors))
	for name, color := range highlightFontColors {
		id, err := f.NewStyle(&excelize.Style{
			Font:   &excelize.Font{Bold: true, Color: color},
			NumFmt: 4,
		})
		if err != nil {
			return styles, err
		}
		styles.highlight[name] = id
	}

	return styles, nil
}

// renderWorkbook writes the report to a single sheet. Column labels arrive
// translated; tr translates the totals block.
func renderWorkbook(report salaryregister.Report, tr salaryregister.Translator) ([]byte, error) {
	if tr == nil {
		tr = func(s string) string { return s }
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return nil, err
	}

	var columns []salaryregister.Column
	for _, c := range report.Columns {
		if !c.Hidden {
			columns = append(columns, c)
		}
	}

	// Header
	for i, c := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, c.Label); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, styles.header); err != nil {
			return nil, err
		}

		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, name, name, columnWidth(c)); err != nil {
			return nil, err
		}
	}

	// Rows
	for r, row := range report.Rows {
		for i, c := range columns {
			value, ok := row.Data[c.Fieldname]
			if !ok || value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)

			if d, ok := value.(decimal.Decimal); ok {
				value = cellAmount(d)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}

			style := 0
			if color, ok := salaryregister.Highlight(c, row.Data); ok {
				style = styles.highlight[color]
			} else if c.Fieldtype == salaryregister.FieldtypeCurrency {
				style = styles.amount
			} else if isComponentLabel(c, row.Data) {
				style = styles.indent
			}
			if style != 0 {
				if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	if report.Totals != nil {
		if err := writeTotals(f, styles, len(report.Rows)+3, *report.Totals, tr); err != nil {
			return nil, err
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// writeTotals lists the payout figures below the data, one per row.
func writeTotals(f *excelize.File, styles workbookStyles, startRow int, totals salaryregister.Totals, tr salaryregister.Translator) error {
	row := startRow
	for _, lines := range payoutSections(totals) {
		for _, line := range lines {
			labelCell, _ := excelize.CoordinatesToCellName(1, row)
			amountCell, _ := excelize.CoordinatesToCellName(2, row)
			if err := f.SetCellValue(sheetName, labelCell, tr(line.Label)); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheetName, labelCell, labelCell, styles.header); err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, amountCell, cellAmount(line.Amount)); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheetName, amountCell, amountCell, styles.amount); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// cellAmount rounds to cents before the value becomes a float cell.
func cellAmount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func isComponentLabel(c salaryregister.Column, data salaryregister.Row) bool {
	if indent, _ := data[salaryregister.ColumnIndent].(int); indent == 0 {
		return false
	}
	return c.Fieldname == salaryregister.ColumnEarnType || c.Fieldname == salaryregister.ColumnDeductType
}

// columnWidth converts a pixel width to spreadsheet character units.
func columnWidth(c salaryregister.Column) float64 {
	if c.Width <= 0 {
		return 15
	}
	return float64(c.Width) / 7
}
