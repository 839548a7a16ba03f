package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/payroll-report/internal/domain/auth"
	"github.com/cmlabs-hris/payroll-report/internal/domain/salaryregister"
	"github.com/cmlabs-hris/payroll-report/internal/domain/user"
	"github.com/cmlabs-hris/payroll-report/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")

	// User domain errors
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrCompanyIDRequired):
		Forbidden(w, "Join a company before viewing reports")

	// Salary register errors
	case errors.Is(err, salaryregister.ErrCompanyRequired):
		BadRequest(w, "Company is required", nil)
	case errors.Is(err, salaryregister.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, salaryregister.ErrCompanyAccessDenied):
		Forbidden(w, "Cannot view reports of another company")
	case errors.Is(err, salaryregister.ErrReportGenerationFailed):
		InternalServerError(w, "Failed to generate report")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
