package salaryregister

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/payroll-report/internal/config"
	"github.com/cmlabs-hris/payroll-report/internal/domain/company"
	"github.com/cmlabs-hris/payroll-report/internal/domain/salaryregister"
	"github.com/cmlabs-hris/payroll-report/internal/pkg/i18n"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type SalaryRegisterServiceImpl struct {
	repo        salaryregister.SalaryRegisterRepository
	companyRepo company.CompanyRepository
	catalog     *i18n.Catalog
	cfg         config.ReportConfig
	logger      *slog.Logger
	now         func() time.Time
}

func NewSalaryRegisterService(
	repo salaryregister.SalaryRegisterRepository,
	companyRepo company.CompanyRepository,
	catalog *i18n.Catalog,
	cfg config.ReportConfig,
	logger *slog.Logger,
) salaryregister.SalaryRegisterService {
	return &SalaryRegisterServiceImpl{
		repo:        repo,
		companyRepo: companyRepo,
		catalog:     catalog,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// requestDefaults answers the filter default lookups for one caller.
type requestDefaults struct {
	today   time.Time
	company company.Company
}

func (d requestDefaults) Today() time.Time        { return d.today }
func (d requestDefaults) DefaultCompany() string  { return d.company.ID }
func (d requestDefaults) CompanyCurrency() string { return d.company.Currency }

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *SalaryRegisterServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", salaryregister.ErrCompanyRequired
	}

	return companyID, nil
}

func (s *SalaryRegisterServiceImpl) resolveDefaults(ctx context.Context) (requestDefaults, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return requestDefaults{}, err
	}

	userCompany, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return requestDefaults{}, salaryregister.ErrCompanyNotFound
		}
		return requestDefaults{}, fmt.Errorf("failed to get company: %w", err)
	}

	return requestDefaults{today: s.now(), company: userCompany}, nil
}

// resolveCompany maps the company filter, an ID or a username, onto the
// caller's own company.
func (s *SalaryRegisterServiceImpl) resolveCompany(ctx context.Context, value string, defaults requestDefaults) (company.Company, error) {
	if value == defaults.company.ID {
		return defaults.company, nil
	}

	var requested company.Company
	var err error
	if _, parseErr := uuid.Parse(value); parseErr == nil {
		requested, err = s.companyRepo.GetByID(ctx, value)
	} else {
		requested, err = s.companyRepo.GetByUsername(ctx, value)
	}
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return company.Company{}, salaryregister.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	if requested.ID != defaults.company.ID {
		return company.Company{}, salaryregister.ErrCompanyAccessDenied
	}
	return requested, nil
}

// GetFilters returns the filter descriptors with defaults for the caller
func (s *SalaryRegisterServiceImpl) GetFilters(ctx context.Context, req salaryregister.FiltersRequest) (salaryregister.FiltersResponse, error) {
	defaults, err := s.resolveDefaults(ctx)
	if err != nil {
		return salaryregister.FiltersResponse{}, err
	}

	locale := s.catalog.Locale(req.AcceptLanguage)
	return salaryregister.FiltersResponse{
		ReportName: salaryregister.ReportName,
		Filters:    salaryregister.Filters(defaults, locale.T),
	}, nil
}

// Execute runs the salary register summary
func (s *SalaryRegisterServiceImpl) Execute(ctx context.Context, req salaryregister.ReportRequest) (salaryregister.Report, error) {
	start := time.Now()

	defaults, err := s.resolveDefaults(ctx)
	if err != nil {
		return salaryregister.Report{}, err
	}

	locale := s.catalog.Locale(req.AcceptLanguage)
	descriptors := salaryregister.Filters(defaults, locale.T)

	values := salaryregister.ParseFilterValues(req.Params, descriptors)
	if err := values.Validate(descriptors); err != nil {
		return salaryregister.Report{}, err
	}

	reportCompany, err := s.resolveCompany(ctx, values.Company, defaults)
	if err != nil {
		return salaryregister.Report{}, err
	}
	values.Company = reportCompany.ID

	slips, err := s.repo.GetSalarySlips(ctx, values.SlipQuery(reportCompany.Currency))
	if err != nil {
		return salaryregister.Report{}, fmt.Errorf("failed to get salary slips: %w", err)
	}

	report := salaryregister.Report{
		ReportName:  salaryregister.ReportName,
		Filters:     values,
		Currency:    reportCurrency(values.Currency, reportCompany.Currency),
		GeneratedAt: s.now().Format(time.RFC3339),
		Columns:     []salaryregister.Column{},
		Rows:        []salaryregister.ReportRow{},
	}
	if len(slips) == 0 {
		return report, nil
	}

	slipIDs := make([]string, 0, len(slips))
	for _, slip := range slips {
		slipIDs = append(slipIDs, slip.ID)
	}

	var (
		components   []salaryregister.SalaryComponent
		earnings     []salaryregister.SalaryDetail
		deductions   []salaryregister.SalaryDetail
		joiningDates map[string]time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		components, err = s.repo.GetSalaryComponents(gctx, reportCompany.ID, slipIDs)
		if err != nil {
			return fmt.Errorf("failed to get salary components: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		earnings, err = s.repo.GetSalaryDetails(gctx, reportCompany.ID, slipIDs, salaryregister.ComponentTypeEarning)
		if err != nil {
			return fmt.Errorf("failed to get earnings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		deductions, err = s.repo.GetSalaryDetails(gctx, reportCompany.ID, slipIDs, salaryregister.ComponentTypeDeduction)
		if err != nil {
			return fmt.Errorf("failed to get deductions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		joiningDates, err = s.repo.GetEmployeeJoiningDates(gctx, reportCompany.ID)
		if err != nil {
			return fmt.Errorf("failed to get joining dates: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return salaryregister.Report{}, err
	}

	b := &reportBuilder{
		currency:        values.Currency,
		companyCurrency: reportCompany.Currency,
		buckets:         newDeductionBuckets(s.cfg),
	}
	columns, rows, totals := b.build(slips, components, earnings, deductions, joiningDates, locale.T)

	message, err := renderPayoutCard(totals, report.Currency, locale)
	if err != nil {
		return salaryregister.Report{}, fmt.Errorf("%w: %v", salaryregister.ErrReportGenerationFailed, err)
	}

	report.Columns = columns
	report.Rows = displayRows(rows, columns, defaultFormatter(locale))
	report.Totals = &totals
	report.Message = message

	s.logger.InfoContext(ctx, "salary register summary generated",
		slog.String("company_id", reportCompany.ID),
		slog.Int("salary_slips", len(slips)),
		slog.Int("rows", len(rows)),
		slog.Duration("duration", time.Since(start)),
	)

	return report, nil
}

func reportCurrency(requested, companyCurrency string) string {
	if requested != "" {
		return requested
	}
	return companyCurrency
}
