package domain

// Vertical identifies the business vertical a tenant operates in.
type Vertical string

const (
	VerticalElectronics Vertical = "electronics"
	VerticalFurniture   Vertical = "furniture"
)

// AllowedVerticals lists the verticals a tenant may register under.
var AllowedVerticals = map[Vertical]bool{
	VerticalElectronics: true,
	VerticalFurniture:   true,
}

// UserRole defines the role hierarchy within a tenant.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// AllowedUserRoles lists the roles a user may be assigned.
var AllowedUserRoles = map[UserRole]bool{
	RoleAdmin: true,
	RoleStaff: true,
}

// AppointmentStatus represents the lifecycle of a showroom appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// AllowedAppointmentStatuses lists the valid appointment statuses.
var AllowedAppointmentStatuses = map[AppointmentStatus]bool{
	AppointmentScheduled: true,
	AppointmentCompleted: true,
	AppointmentCancelled: true,
}

// InvoiceStatus represents the payment lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid      InvoiceStatus = "unpaid"
	InvoiceStatusPartialPaid InvoiceStatus = "partial_paid"
	InvoiceStatusPaid        InvoiceStatus = "paid"
	InvoiceStatusCancelled   InvoiceStatus = "cancelled"
)

// PaymentMode identifies how an invoice is settled.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModeCard PaymentMode = "card"
	PaymentModeUPI  PaymentMode = "upi"
	PaymentModeEMI  PaymentMode = "emi"
)

// AllowedPaymentModes lists the accepted payment modes.
var AllowedPaymentModes = map[PaymentMode]bool{
	PaymentModeCash: true,
	PaymentModeCard: true,
	PaymentModeUPI:  true,
	PaymentModeEMI:  true,
}

// InstallmentStatus represents the state of a single EMI installment.
type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPaid    InstallmentStatus = "paid"
	InstallmentOverdue InstallmentStatus = "overdue"
)

// AttachmentType represents the allowed attachment file types.
type AttachmentType string

const (
	AttachmentPDF AttachmentType = "pdf"
	AttachmentJPG AttachmentType = "jpg"
	AttachmentPNG AttachmentType = "png"
)

// AllowedAttachmentTypes maps AttachmentType to its MIME content type.
var AllowedAttachmentTypes = map[AttachmentType]string{
	AttachmentPDF: "application/pdf",
	AttachmentJPG: "image/jpeg",
	AttachmentPNG: "image/png",
}

// AllowedAttachmentContentTypes maps MIME content types back to AttachmentType.
var AllowedAttachmentContentTypes = map[string]AttachmentType{
	"application/pdf": AttachmentPDF,
	"image/jpeg":      AttachmentJPG,
	"image/png":       AttachmentPNG,
}

// AllowedAttachmentExtensions maps file extensions (without dot) to AttachmentType.
var AllowedAttachmentExtensions = map[string]AttachmentType{
	"pdf":  AttachmentPDF,
	"jpg":  AttachmentJPG,
	"jpeg": AttachmentJPG,
	"png":  AttachmentPNG,
}
