package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrTenantInactive         = errors.New("tenant is inactive")
	ErrUserInactive           = errors.New("user is inactive")
	ErrDuplicateEmail         = errors.New("email already exists for this tenant")
	ErrDuplicateTenantSlug    = errors.New("tenant slug already exists")
	ErrInvalidVertical        = errors.New("invalid business vertical")
	ErrInvalidRole            = errors.New("invalid user role")
	ErrInvalidGSTIN           = errors.New("gstin does not match the required format")
	ErrDuplicatePhone         = errors.New("phone number already exists for this tenant")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrAppointmentInPast      = errors.New("appointment cannot be scheduled in the past")
	ErrInvalidApptStatus      = errors.New("invalid appointment status")
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrInvoiceNoItems         = errors.New("invoice must have at least one line item")
	ErrInvoiceCancelled       = errors.New("invoice is cancelled")
	ErrInstallmentNotFound    = errors.New("installment not found")
	ErrInstallmentAlreadyPaid = errors.New("installment is already paid")
	ErrInvalidEMITenure       = errors.New("emi tenure must be between 1 and 60 months")
	ErrInvalidPaymentMode     = errors.New("invalid payment mode")
	ErrUnsupportedAttachment  = errors.New("unsupported attachment type")
	ErrAttachmentTooLarge     = errors.New("attachment exceeds maximum allowed size")
	ErrUploadFailed           = errors.New("file upload to storage failed")
)
