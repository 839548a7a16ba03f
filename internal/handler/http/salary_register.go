package http

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-report/internal/domain/salaryregister"
	"github.com/cmlabs-hris/payroll-report/internal/handler/http/response"
)

type SalaryRegisterHandler interface {
	// Filter controls with their resolved defaults
	GetFilters(w http.ResponseWriter, r *http.Request)

	// Report rows, columns and payout card
	GetReport(w http.ResponseWriter, r *http.Request)

	// Workbook download
	Export(w http.ResponseWriter, r *http.Request)
}

type salaryRegisterHandlerImpl struct {
	salaryRegisterService salaryregister.SalaryRegisterService
}

func NewSalaryRegisterHandler(salaryRegisterService salaryregister.SalaryRegisterService) SalaryRegisterHandler {
	return &salaryRegisterHandlerImpl{
		salaryRegisterService: salaryRegisterService,
	}
}

// GetFilters handles GET /reports/salary-register-summary/filters
func (h *salaryRegisterHandlerImpl) GetFilters(w http.ResponseWriter, r *http.Request) {
	req := salaryregister.FiltersRequest{
		AcceptLanguage: r.Header.Get("Accept-Language"),
	}

	result, err := h.salaryRegisterService.GetFilters(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetReport handles GET /reports/salary-register-summary
func (h *salaryRegisterHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryRegisterService.Execute(r.Context(), reportRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export handles GET /reports/salary-register-summary/export
func (h *salaryRegisterHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.salaryRegisterService.ExportXLSX(r.Context(), reportRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Filename, file.ContentType, file.Content)
}

func reportRequest(r *http.Request) salaryregister.ReportRequest {
	return salaryregister.ReportRequest{
		Params:         r.URL.Query(),
		AcceptLanguage: r.Header.Get("Accept-Language"),
	}
}
