package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents one showroom business operating in a single vertical.
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	Vertical  Vertical  `db:"vertical" json:"vertical"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	State     string    `db:"state" json:"state"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated staff account belonging to a tenant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Customer represents a showroom customer record.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TenantID  uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	Address   string    `db:"address" json:"address"`
	City      string    `db:"city" json:"city"`
	State     string    `db:"state" json:"state"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Employee represents a showroom employee record.
type Employee struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	TenantID    uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	Name        string     `db:"name" json:"name"`
	Phone       string     `db:"phone" json:"phone"`
	Email       string     `db:"email" json:"email"`
	Designation string     `db:"designation" json:"designation"`
	Salary      float64    `db:"salary" json:"salary"`
	JoinedOn    time.Time  `db:"joined_on" json:"joined_on"`
	LeftOn      *time.Time `db:"left_on" json:"left_on"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Appointment represents a scheduled showroom visit.
type Appointment struct {
	ID          uuid.UUID         `db:"id" json:"id"`
	TenantID    uuid.UUID         `db:"tenant_id" json:"tenant_id"`
	CustomerID  uuid.UUID         `db:"customer_id" json:"customer_id"`
	EmployeeID  *uuid.UUID        `db:"employee_id" json:"employee_id"`
	ScheduledAt time.Time         `db:"scheduled_at" json:"scheduled_at"`
	Purpose     string            `db:"purpose" json:"purpose"`
	Status      AppointmentStatus `db:"status" json:"status"`
	Notes       string            `db:"notes" json:"notes"`
	CreatedBy   uuid.UUID         `db:"created_by" json:"created_by"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updated_at"`
}

// Invoice represents a sale with its server-computed GST breakdown.
// Monetary fields are rounded to 2 decimal places at assembly time;
// the breakdown is recomputed by the tax engine, never trusted from input.
type Invoice struct {
	ID                 uuid.UUID     `db:"id" json:"id"`
	TenantID           uuid.UUID     `db:"tenant_id" json:"tenant_id"`
	CustomerID         uuid.UUID     `db:"customer_id" json:"customer_id"`
	EmployeeID         *uuid.UUID    `db:"employee_id" json:"employee_id"`
	InvoiceNumber      string        `db:"invoice_number" json:"invoice_number"`
	InvoiceDate        time.Time     `db:"invoice_date" json:"invoice_date"`
	CustomerState      string        `db:"customer_state" json:"customer_state"`
	Subtotal           float64       `db:"subtotal" json:"subtotal"`
	DiscountAmount     float64       `db:"discount_amount" json:"discount_amount"`
	DiscountedSubtotal float64       `db:"discounted_subtotal" json:"discounted_subtotal"`
	CGSTRate           float64       `db:"cgst_rate" json:"cgst_rate"`
	CGSTAmount         float64       `db:"cgst_amount" json:"cgst_amount"`
	SGSTRate           float64       `db:"sgst_rate" json:"sgst_rate"`
	SGSTAmount         float64       `db:"sgst_amount" json:"sgst_amount"`
	IGSTRate           float64       `db:"igst_rate" json:"igst_rate"`
	IGSTAmount         float64       `db:"igst_amount" json:"igst_amount"`
	TotalTaxAmount     float64       `db:"total_tax_amount" json:"total_tax_amount"`
	GrandTotal         float64       `db:"grand_total" json:"grand_total"`
	PaymentMode        PaymentMode   `db:"payment_mode" json:"payment_mode"`
	Status             InvoiceStatus `db:"status" json:"status"`
	Notes              string        `db:"notes" json:"notes"`
	CreatedBy          uuid.UUID     `db:"created_by" json:"created_by"`
	CreatedAt          time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at" json:"updated_at"`
}

// InvoiceItem represents a single line item on an invoice.
type InvoiceItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	InvoiceID   uuid.UUID `db:"invoice_id" json:"invoice_id"`
	TenantID    uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Description string    `db:"description" json:"description"`
	HSNCode     string    `db:"hsn_code" json:"hsn_code"`
	Quantity    float64   `db:"quantity" json:"quantity"`
	UnitPrice   float64   `db:"unit_price" json:"unit_price"`
	Amount      float64   `db:"amount" json:"amount"`
	TaxEnabled  bool      `db:"tax_enabled" json:"tax_enabled"`
	Position    int       `db:"position" json:"position"`
}

// Installment represents one EMI installment attached to an invoice.
type Installment struct {
	ID        uuid.UUID         `db:"id" json:"id"`
	InvoiceID uuid.UUID         `db:"invoice_id" json:"invoice_id"`
	TenantID  uuid.UUID         `db:"tenant_id" json:"tenant_id"`
	Sequence  int               `db:"sequence" json:"sequence"`
	Amount    float64           `db:"amount" json:"amount"`
	DueDate   time.Time         `db:"due_date" json:"due_date"`
	Status    InstallmentStatus `db:"status" json:"status"`
	PaidAt    *time.Time        `db:"paid_at" json:"paid_at"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt time.Time         `db:"updated_at" json:"updated_at"`
}

// DueInstallment is the read model for upcoming installment reminders,
// joining the installment with its invoice and customer contact details.
type DueInstallment struct {
	Installment
	InvoiceNumber string `db:"invoice_number" json:"invoice_number"`
	CustomerName  string `db:"customer_name" json:"customer_name"`
	CustomerEmail string `db:"customer_email" json:"customer_email"`
}

// InvoiceRegisterRow is the read model for register exports, joining the
// invoice with the customer it was billed to.
type InvoiceRegisterRow struct {
	Invoice
	CustomerName  string `db:"customer_name" json:"customer_name"`
	CustomerGSTIN string `db:"customer_gstin" json:"customer_gstin"`
}

// InvoiceAttachment stores metadata about a file attached to an invoice.
type InvoiceAttachment struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	InvoiceID    uuid.UUID      `db:"invoice_id" json:"invoice_id"`
	TenantID     uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	UploadedBy   uuid.UUID      `db:"uploaded_by" json:"uploaded_by"`
	FileName     string         `db:"file_name" json:"file_name"`
	OriginalName string         `db:"original_name" json:"original_name"`
	FileType     AttachmentType `db:"file_type" json:"file_type"`
	FileSize     int64          `db:"file_size" json:"file_size"`
	S3Bucket     string         `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string         `db:"s3_key" json:"s3_key"`
	ContentType  string         `db:"content_type" json:"content_type"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// DashboardStats holds the per-tenant counters shown on the dashboard.
type DashboardStats struct {
	TotalCustomers    int     `db:"total_customers" json:"total_customers"`
	TotalEmployees    int     `db:"total_employees" json:"total_employees"`
	InvoicesUnpaid    int     `db:"invoices_unpaid" json:"invoices_unpaid"`
	InvoicesPartial   int     `db:"invoices_partial" json:"invoices_partial"`
	InvoicesPaid      int     `db:"invoices_paid" json:"invoices_paid"`
	InvoicesCancelled int     `db:"invoices_cancelled" json:"invoices_cancelled"`
	RevenueTotal      float64 `db:"revenue_total" json:"revenue_total"`
	TaxCollected      float64 `db:"tax_collected" json:"tax_collected"`
	AppointmentsToday int     `db:"appointments_today" json:"appointments_today"`
	EMIDueThisMonth   float64 `db:"emi_due_this_month" json:"emi_due_this_month"`
}
