package domain

import "errors"

// Authentication / authorization failures. ErrInvalidToken deliberately
// covers forged, expired, and orphaned (deleted subject) credentials so
// the response never reveals which case was hit.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrAccountPending   = errors.New("account awaiting approval")
	ErrForbidden        = errors.New("forbidden")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDocument    = errors.New("invalid CPF/CNPJ document")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrBudgetNotFound       = errors.New("budget not found")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrDiaryEntryNotFound   = errors.New("work diary entry not found")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
