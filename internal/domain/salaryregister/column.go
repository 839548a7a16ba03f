package salaryregister

const (
	ColumnSalarySlipID   = "salary_slip_id"
	ColumnEmployee       = "employee"
	ColumnEmployeeName   = "employee_name"
	ColumnDateOfJoining  = "date_of_joining"
	ColumnDepartment     = "department"
	ColumnDesignation    = "designation"
	ColumnStartDate      = "start_date"
	ColumnEndDate        = "end_date"
	ColumnEarnType       = "earn_type"
	ColumnGrossPay       = "gross_pay"
	ColumnDeductType     = "deduct_type"
	ColumnTotalDeduction = "total_deduction"
	ColumnNetPay         = "net_pay"
	ColumnCurrency       = "currency"

	// ColumnIndent is not rendered; it marks component rows (1) under their slip (0).
	ColumnIndent = "indent"
)

// AutoWidth leaves the column width to the renderer.
const AutoWidth = -1

// Column describes one output field of the report.
type Column struct {
	Fieldname string    `json:"fieldname"`
	Label     string    `json:"label"`
	Fieldtype Fieldtype `json:"fieldtype"`
	Options   string    `json:"options,omitempty"`
	Width     int       `json:"width,omitempty"`
	Hidden    bool      `json:"hidden,omitempty"`
}

// Columns returns the report columns in display order. Currency columns
// carry Options "currency": their unit comes from the row's currency field.
func Columns(tr Translator) []Column {
	if tr == nil {
		tr = func(s string) string { return s }
	}
	return []Column{
		{Fieldname: ColumnSalarySlipID, Label: tr("Salary Slip ID"), Fieldtype: FieldtypeLink, Options: "Salary Slip", Width: 150},
		{Fieldname: ColumnEmployee, Label: tr("Employee"), Fieldtype: FieldtypeLink, Options: "Employee", Width: 120},
		{Fieldname: ColumnEmployeeName, Label: tr("Employee Name"), Fieldtype: FieldtypeData, Width: 140},
		{Fieldname: ColumnDateOfJoining, Label: tr("Date of Joining"), Fieldtype: FieldtypeDate, Width: 80},
		{Fieldname: ColumnDepartment, Label: tr("Department"), Fieldtype: FieldtypeLink, Options: "Department", Width: AutoWidth},
		{Fieldname: ColumnDesignation, Label: tr("Designation"), Fieldtype: FieldtypeLink, Options: "Designation", Width: AutoWidth},
		{Fieldname: ColumnStartDate, Label: tr("Start Date"), Fieldtype: FieldtypeData, Width: 80},
		{Fieldname: ColumnEndDate, Label: tr("End Date"), Fieldtype: FieldtypeData, Width: 80},
		{Fieldname: ColumnEarnType, Label: tr("Earn Type"), Fieldtype: FieldtypeData, Width: 160},
		{Fieldname: ColumnGrossPay, Label: tr("Gross Pay"), Fieldtype: FieldtypeCurrency, Options: "currency", Width: 120},
		{Fieldname: ColumnDeductType, Label: tr("Deduct Type"), Fieldtype: FieldtypeData, Width: 160},
		{Fieldname: ColumnTotalDeduction, Label: tr("Total Deduction"), Fieldtype: FieldtypeCurrency, Options: "currency", Width: 120},
		{Fieldname: ColumnNetPay, Label: tr("Net Pay"), Fieldtype: FieldtypeCurrency, Options: "currency", Width: 120},
		{Fieldname: ColumnCurrency, Label: tr("Currency"), Fieldtype: FieldtypeData, Options: "Currency", Hidden: true},
	}
}

// WidenColumns gives department and designation a fixed width once any
// slip carries a value for them.
func WidenColumns(columns []Column, slip SalarySlip) {
	for i := range columns {
		switch columns[i].Fieldname {
		case ColumnDepartment:
			if slip.Department != nil {
				columns[i].Width = 120
			}
		case ColumnDesignation:
			if slip.Designation != nil {
				columns[i].Width = 120
			}
		}
	}
}
