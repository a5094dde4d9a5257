package handler

import (
	"time"

	"github.com/google/uuid"

	"showroomos/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	TenantSlug string `json:"tenant_slug" binding:"required" example:"mehta-electronics"`
	Email      string `json:"email" binding:"required" example:"owner@mehta.example"`
	Password   string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// RegisterRequest represents the showroom registration request body.
type RegisterRequest struct {
	ShowroomName string `json:"showroom_name" binding:"required" example:"Mehta Electronics"`
	Slug         string `json:"slug" binding:"required" example:"mehta-electronics"`
	Vertical     string `json:"vertical" binding:"required" example:"electronics"`
	GSTIN        string `json:"gstin" example:"24AAACM1234A1Z5"`
	State        string `json:"state" binding:"required" example:"Gujarat"`
	Email        string `json:"email" binding:"required" example:"owner@mehta.example"`
	Password     string `json:"password" binding:"required" example:"securepassword123"`
	FullName     string `json:"full_name" binding:"required" example:"Rakesh Mehta"`
}

// CreateTenantRequest represents the create tenant request body.
type CreateTenantRequest struct {
	Name     string `json:"name" binding:"required" example:"Mehta Electronics"`
	Slug     string `json:"slug" binding:"required" example:"mehta-electronics"`
	Vertical string `json:"vertical" binding:"required" example:"electronics"`
	GSTIN    string `json:"gstin" example:"24AAACM1234A1Z5"`
	State    string `json:"state" binding:"required" example:"Gujarat"`
}

// UpdateTenantRequest represents the update tenant request body.
type UpdateTenantRequest struct {
	Name     *string `json:"name" example:"Mehta Electronics & Appliances"`
	Slug     *string `json:"slug" example:"mehta-appliances"`
	Vertical *string `json:"vertical" example:"electronics"`
	GSTIN    *string `json:"gstin" example:"24AAACM1234A1Z5"`
	State    *string `json:"state" example:"Gujarat"`
	IsActive *bool   `json:"is_active" example:"false"`
}

// CreateUserRequest represents the create user request body.
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required" example:"sales@mehta.example"`
	Password string          `json:"password" binding:"required" example:"securepassword123"`
	FullName string          `json:"full_name" example:"Priya Shah"`
	Role     domain.UserRole `json:"role" binding:"required" example:"staff"`
}

// UpdateUserRequest represents the update user request body.
type UpdateUserRequest struct {
	Email    *string          `json:"email" example:"priya@mehta.example"`
	FullName *string          `json:"full_name" example:"Priya Shah"`
	Role     *domain.UserRole `json:"role" example:"admin"`
	IsActive *bool            `json:"is_active" example:"true"`
}

// CreateCustomerRequest represents the create customer request body.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required" example:"Anil Patel"`
	Phone   string `json:"phone" binding:"required" example:"9876543210"`
	Email   string `json:"email" example:"anil@example.com"`
	Address string `json:"address" example:"12 Ring Road"`
	City    string `json:"city" example:"Surat"`
	State   string `json:"state" binding:"required" example:"Gujarat"`
	GSTIN   string `json:"gstin" example:"24AAACA1234A1Z5"`
	Notes   string `json:"notes" example:"Prefers evening calls"`
}

// CreateEmployeeRequest represents the create employee request body.
type CreateEmployeeRequest struct {
	Name        string    `json:"name" binding:"required" example:"Suresh Kumar"`
	Phone       string    `json:"phone" binding:"required" example:"9123456780"`
	Email       string    `json:"email" example:"suresh@mehta.example"`
	Designation string    `json:"designation" example:"Sales Executive"`
	Salary      float64   `json:"salary" example:"25000"`
	JoinedOn    time.Time `json:"joined_on" example:"2024-06-01T00:00:00Z"`
}

// CreateAppointmentRequest represents the appointment booking request body.
type CreateAppointmentRequest struct {
	CustomerID  uuid.UUID  `json:"customer_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	EmployeeID  *uuid.UUID `json:"employee_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	ScheduledAt time.Time  `json:"scheduled_at" binding:"required" example:"2026-09-15T11:00:00Z"`
	Purpose     string     `json:"purpose" example:"TV wall-mount demo"`
	Notes       string     `json:"notes" example:"Bring the 55-inch model"`
}

// InvoiceItemRequest represents one line item in an invoice request.
type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required" example:"Samsung 55-inch QLED TV"`
	HSNCode     string  `json:"hsn_code" example:"8528"`
	Quantity    float64 `json:"quantity" example:"1"`
	UnitPrice   float64 `json:"unit_price" example:"65000"`
	TaxEnabled  *bool   `json:"tax_enabled" example:"true"`
}

// CreateInvoiceRequest represents the create invoice request body.
type CreateInvoiceRequest struct {
	CustomerID      uuid.UUID            `json:"customer_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	EmployeeID      *uuid.UUID           `json:"employee_id"`
	Items           []InvoiceItemRequest `json:"items" binding:"required"`
	DiscountAmount  float64              `json:"discount_amount" example:"0"`
	DiscountPercent float64              `json:"discount_percent" example:"5"`
	PaymentMode     string               `json:"payment_mode" binding:"required" example:"emi"`
	EMIMonths       int                  `json:"emi_months" example:"12"`
	Notes           string               `json:"notes" example:"Festive offer applied"`
}

// QuoteRequest represents the tax preview request body.
type QuoteRequest struct {
	Items           []InvoiceItemRequest `json:"items" binding:"required"`
	CustomerState   string               `json:"customer_state" example:"Maharashtra"`
	DiscountAmount  float64              `json:"discount_amount" example:"0"`
	DiscountPercent float64              `json:"discount_percent" example:"10"`
}

// GSTINCheckRequest represents the GSTIN validation request body.
type GSTINCheckRequest struct {
	GSTIN string `json:"gstin" binding:"required" example:"24AAACM1234A1Z5"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2026-09-15T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// GSTINCheckResponse represents the GSTIN validation result.
type GSTINCheckResponse struct {
	GSTIN     string `json:"gstin" example:"24AAACM1234A1Z5"`
	Valid     bool   `json:"valid" example:"true"`
	StateCode string `json:"state_code,omitempty" example:"24"`
	HomeState bool   `json:"home_state" example:"true"`
	Error     string `json:"error,omitempty"`
}

// AttachmentWithDownloadURL represents an attachment with its download URL.
type AttachmentWithDownloadURL struct {
	Attachment  domain.InvoiceAttachment `json:"attachment"`
	DownloadURL string                   `json:"download_url" example:"https://s3.amazonaws.com/showroomos-uploads/...?X-Amz-Signature=..."`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
