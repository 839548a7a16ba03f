package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-report/internal/domain/salaryregister"
	"github.com/cmlabs-hris/payroll-report/internal/pkg/database"
)

type salaryRegisterRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRegisterRepository(db *database.DB) salaryregister.SalaryRegisterRepository {
	return &salaryRegisterRepositoryImpl{db: db}
}

// GetSalarySlips retrieves the slips matching the report filters
func (r *salaryRegisterRepositoryImpl) GetSalarySlips(ctx context.Context, query salaryregister.SlipQuery) ([]salaryregister.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"ss.company_id = $1"}
	args := []interface{}{query.CompanyID}

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if query.DocStatus != nil {
		addCondition("ss.docstatus = $%d", *query.DocStatus)
	}
	if query.FromDate != nil {
		addCondition("ss.start_date >= $%d", *query.FromDate)
	}
	if query.ToDate != nil {
		addCondition("ss.end_date <= $%d", *query.ToDate)
	}
	if query.EmployeeID != nil {
		addCondition("ss.employee_id::text = $%d", *query.EmployeeID)
	}
	if query.Currency != nil {
		addCondition("ss.currency = $%d", *query.Currency)
	}

	sql := `
		SELECT
			ss.id,
			ss.company_id::text,
			ss.employee_id::text,
			ss.employee_name,
			ss.department,
			ss.designation,
			ss.start_date,
			ss.end_date,
			ss.currency,
			ss.exchange_rate,
			ss.gross_pay,
			ss.total_deduction,
			ss.net_pay,
			ss.docstatus
		FROM salary_slips ss
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY ss.employee_name ASC, ss.start_date ASC, ss.id ASC
	`

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary slips: %w", err)
	}
	defer rows.Close()

	var slips []salaryregister.SalarySlip
	for rows.Next() {
		var s salaryregister.SalarySlip
		if err := rows.Scan(
			&s.ID,
			&s.CompanyID,
			&s.EmployeeID,
			&s.EmployeeName,
			&s.Department,
			&s.Designation,
			&s.StartDate,
			&s.EndDate,
			&s.Currency,
			&s.ExchangeRate,
			&s.GrossPay,
			&s.TotalDeduction,
			&s.NetPay,
			&s.DocStatus,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary slip: %w", err)
		}
		slips = append(slips, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary slips: %w", err)
	}

	return slips, nil
}

// GetSalaryComponents retrieves the distinct components used on the slips.
// Components without a master record take their type from the slip table
// they appear in.
func (r *salaryRegisterRepositoryImpl) GetSalaryComponents(ctx context.Context, companyID string, slipIDs []string) ([]salaryregister.SalaryComponent, error) {
	if len(slipIDs) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT
			sd.salary_component,
			COALESCE(sc.type, CASE WHEN sd.parentfield = 'deductions' THEN 'deduction' ELSE 'earning' END)
		FROM salary_details sd
		JOIN salary_slips ss ON ss.id = sd.salary_slip_id
		LEFT JOIN salary_components sc
			ON sc.name = sd.salary_component AND sc.company_id = ss.company_id
		WHERE ss.company_id = $1
			AND sd.salary_slip_id = ANY($2)
		ORDER BY 1
	`

	rows, err := q.Query(ctx, query, companyID, slipIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary components: %w", err)
	}
	defer rows.Close()

	var components []salaryregister.SalaryComponent
	for rows.Next() {
		var c salaryregister.SalaryComponent
		var componentType string
		if err := rows.Scan(&c.Name, &componentType); err != nil {
			return nil, fmt.Errorf("failed to scan salary component: %w", err)
		}
		c.Type = salaryregister.ComponentType(componentType)
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary components: %w", err)
	}

	return components, nil
}

// GetSalaryDetails retrieves earning or deduction lines with the exchange
// rate of their slip
func (r *salaryRegisterRepositoryImpl) GetSalaryDetails(ctx context.Context, companyID string, slipIDs []string, componentType salaryregister.ComponentType) ([]salaryregister.SalaryDetail, error) {
	if len(slipIDs) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			sd.salary_slip_id,
			sd.salary_component,
			sd.amount,
			ss.exchange_rate
		FROM salary_slips ss
		JOIN salary_details sd ON ss.id = sd.salary_slip_id
		WHERE ss.company_id = $1
			AND sd.salary_slip_id = ANY($2)
			AND sd.parentfield = $3
		ORDER BY sd.salary_slip_id, sd.idx
	`

	rows, err := q.Query(ctx, query, companyID, slipIDs, componentType.ParentField())
	if err != nil {
		return nil, fmt.Errorf("failed to query salary details: %w", err)
	}
	defer rows.Close()

	var details []salaryregister.SalaryDetail
	for rows.Next() {
		var d salaryregister.SalaryDetail
		if err := rows.Scan(&d.SalarySlipID, &d.SalaryComponent, &d.Amount, &d.ExchangeRate); err != nil {
			return nil, fmt.Errorf("failed to scan salary detail: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary details: %w", err)
	}

	return details, nil
}

// GetEmployeeJoiningDates maps employee ID to hire date
func (r *salaryRegisterRepositoryImpl) GetEmployeeJoiningDates(ctx context.Context, companyID string) (map[string]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id::text, e.hire_date
		FROM employees e
		WHERE e.company_id = $1
			AND e.hire_date IS NOT NULL
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee joining dates: %w", err)
	}
	defer rows.Close()

	dates := make(map[string]time.Time)
	for rows.Next() {
		var employeeID string
		var hireDate time.Time
		if err := rows.Scan(&employeeID, &hireDate); err != nil {
			return nil, fmt.Errorf("failed to scan employee joining date: %w", err)
		}
		dates[employeeID] = hireDate
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee joining dates: %w", err)
	}

	return dates, nil
}
