package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"showroomos/internal/domain"
	"showroomos/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem, installments []domain.Installment) error {
	inv.ID = uuid.New()
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO invoices (id, tenant_id, customer_id, employee_id, invoice_number,
		invoice_date, customer_state, subtotal, discount_amount, discounted_subtotal,
		cgst_rate, cgst_amount, sgst_rate, sgst_amount, igst_rate, igst_amount,
		total_tax_amount, grand_total, payment_mode, status, notes, created_by,
		created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		$17, $18, $19, $20, $21, $22, $23, $24)`

	_, err = tx.ExecContext(ctx, query,
		inv.ID, inv.TenantID, inv.CustomerID, inv.EmployeeID, inv.InvoiceNumber,
		inv.InvoiceDate, inv.CustomerState, inv.Subtotal, inv.DiscountAmount,
		inv.DiscountedSubtotal, inv.CGSTRate, inv.CGSTAmount, inv.SGSTRate, inv.SGSTAmount,
		inv.IGSTRate, inv.IGSTAmount, inv.TotalTaxAmount, inv.GrandTotal,
		inv.PaymentMode, inv.Status, inv.Notes, inv.CreatedBy, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create invoice: %w", err)
	}

	itemQuery := `INSERT INTO invoice_items (id, invoice_id, tenant_id, description, hsn_code,
		quantity, unit_price, amount, tax_enabled, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for i := range items {
		items[i].ID = uuid.New()
		items[i].InvoiceID = inv.ID
		items[i].TenantID = inv.TenantID
		items[i].Position = i
		_, err = tx.ExecContext(ctx, itemQuery,
			items[i].ID, items[i].InvoiceID, items[i].TenantID, items[i].Description,
			items[i].HSNCode, items[i].Quantity, items[i].UnitPrice, items[i].Amount,
			items[i].TaxEnabled, items[i].Position)
		if err != nil {
			return fmt.Errorf("invoiceRepo.Create item %d: %w", i, err)
		}
	}

	instQuery := `INSERT INTO installments (id, invoice_id, tenant_id, sequence, amount,
		due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for i := range installments {
		installments[i].ID = uuid.New()
		installments[i].InvoiceID = inv.ID
		installments[i].TenantID = inv.TenantID
		installments[i].CreatedAt = now
		installments[i].UpdatedAt = now
		_, err = tx.ExecContext(ctx, instQuery,
			installments[i].ID, installments[i].InvoiceID, installments[i].TenantID,
			installments[i].Sequence, installments[i].Amount, installments[i].DueDate,
			installments[i].Status, installments[i].CreatedAt, installments[i].UpdatedAt)
		if err != nil {
			return fmt.Errorf("invoiceRepo.Create installment %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM invoices WHERE id = $1 AND tenant_id = $2", invoiceID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) GetItems(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	var items []domain.InvoiceItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM invoice_items WHERE invoice_id = $1 AND tenant_id = $2 ORDER BY position ASC",
		invoiceID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetItems: %w", err)
	}
	return items, nil
}

func (r *invoiceRepo) GetInstallments(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.Installment, error) {
	var installments []domain.Installment
	err := r.db.SelectContext(ctx, &installments,
		"SELECT * FROM installments WHERE invoice_id = $1 AND tenant_id = $2 ORDER BY sequence ASC",
		invoiceID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetInstallments: %w", err)
	}
	return installments, nil
}

// invoiceWhereClause constructs a dynamic WHERE clause for invoice listings.
func invoiceWhereClause(tenantID uuid.UUID, filter port.InvoiceFilter) (clause string, args []interface{}) {
	args = []interface{}{tenantID}
	clause = "WHERE tenant_id = $1"
	argN := 2

	if filter.Status != "" {
		clause += fmt.Sprintf(" AND status = $%d", argN)
		args = append(args, filter.Status)
		argN++
	}
	if filter.CustomerID != uuid.Nil {
		clause += fmt.Sprintf(" AND customer_id = $%d", argN)
		args = append(args, filter.CustomerID)
		argN++
	}
	if filter.From != nil {
		clause += fmt.Sprintf(" AND invoice_date >= $%d", argN)
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		clause += fmt.Sprintf(" AND invoice_date <= $%d", argN)
		args = append(args, *filter.To)
		argN++ //nolint:ineffassign // argN kept incremented for consistency
	}

	return clause, args
}

func (r *invoiceRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, filter port.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error) {
	where, args := invoiceWhereClause(tenantID, filter)

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByTenant count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM invoices %s ORDER BY invoice_date DESC, created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByTenant: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListRegister(ctx context.Context, tenantID uuid.UUID, filter port.InvoiceFilter) ([]domain.InvoiceRegisterRow, error) {
	args := []interface{}{tenantID}
	where := "WHERE inv.tenant_id = $1"
	argN := 2

	if filter.Status != "" {
		where += fmt.Sprintf(" AND inv.status = $%d", argN)
		args = append(args, filter.Status)
		argN++
	}
	if filter.CustomerID != uuid.Nil {
		where += fmt.Sprintf(" AND inv.customer_id = $%d", argN)
		args = append(args, filter.CustomerID)
		argN++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND inv.invoice_date >= $%d", argN)
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND inv.invoice_date <= $%d", argN)
		args = append(args, *filter.To)
		argN++ //nolint:ineffassign // argN kept incremented for consistency
	}

	query := fmt.Sprintf(`
		SELECT inv.*, c.name AS customer_name, c.gstin AS customer_gstin
		FROM invoices inv
		INNER JOIN customers c ON c.id = inv.customer_id
		%s
		ORDER BY inv.invoice_date ASC, inv.invoice_number ASC`, where)

	var rows []domain.InvoiceRegisterRow
	err := r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListRegister: %w", err)
	}
	return rows, nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, tenantID, invoiceID uuid.UUID, status domain.InvoiceStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET status = $1, updated_at = NOW() WHERE id = $2 AND tenant_id = $3",
		status, invoiceID, tenantID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

// NextSequence increments and returns the per-tenant invoice counter for the
// fiscal year. The upsert keeps the read-modify-write atomic under concurrent
// invoice creation.
func (r *invoiceRepo) NextSequence(ctx context.Context, tenantID uuid.UUID, fiscalYear string) (int64, error) {
	var seq int64
	err := r.db.GetContext(ctx, &seq, `
		INSERT INTO invoice_sequences (tenant_id, fiscal_year, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (tenant_id, fiscal_year)
		DO UPDATE SET last_value = invoice_sequences.last_value + 1
		RETURNING last_value`,
		tenantID, fiscalYear)
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.NextSequence: %w", err)
	}
	return seq, nil
}

func (r *invoiceRepo) MarkInstallmentPaid(ctx context.Context, tenantID, installmentID uuid.UUID, paidAt time.Time) (*domain.Installment, error) {
	var inst domain.Installment
	err := r.db.GetContext(ctx, &inst,
		"SELECT * FROM installments WHERE id = $1 AND tenant_id = $2", installmentID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInstallmentNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.MarkInstallmentPaid lookup: %w", err)
	}
	if inst.Status == domain.InstallmentPaid {
		return nil, domain.ErrInstallmentAlreadyPaid
	}

	err = r.db.GetContext(ctx, &inst, `
		UPDATE installments SET status = $1, paid_at = $2, updated_at = NOW()
		WHERE id = $3 AND tenant_id = $4 AND status != $1
		RETURNING *`,
		domain.InstallmentPaid, paidAt, installmentID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInstallmentAlreadyPaid
		}
		return nil, fmt.Errorf("invoiceRepo.MarkInstallmentPaid: %w", err)
	}
	return &inst, nil
}

func (r *invoiceRepo) ListDueInstallments(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.DueInstallment, error) {
	var due []domain.DueInstallment
	err := r.db.SelectContext(ctx, &due, `
		SELECT ins.*, inv.invoice_number, c.name AS customer_name, c.email AS customer_email
		FROM installments ins
		INNER JOIN invoices inv ON inv.id = ins.invoice_id
		INNER JOIN customers c ON c.id = inv.customer_id
		WHERE ins.tenant_id = $1 AND ins.status = 'pending'
		  AND ins.due_date >= $2 AND ins.due_date < $3
		ORDER BY ins.due_date ASC`,
		tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListDueInstallments: %w", err)
	}
	return due, nil
}

type attachmentRepo struct {
	db *sqlx.DB
}

// NewInvoiceAttachmentRepo creates a new PostgreSQL-backed InvoiceAttachmentRepository.
func NewInvoiceAttachmentRepo(db *sqlx.DB) port.InvoiceAttachmentRepository {
	return &attachmentRepo{db: db}
}

func (r *attachmentRepo) Create(ctx context.Context, att *domain.InvoiceAttachment) error {
	att.ID = uuid.New()
	att.CreatedAt = time.Now().UTC()

	query := `INSERT INTO invoice_attachments (id, invoice_id, tenant_id, uploaded_by, file_name,
		original_name, file_type, file_size, s3_bucket, s3_key, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		att.ID, att.InvoiceID, att.TenantID, att.UploadedBy, att.FileName,
		att.OriginalName, att.FileType, att.FileSize, att.S3Bucket, att.S3Key,
		att.ContentType, att.CreatedAt)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Create: %w", err)
	}
	return nil
}

func (r *attachmentRepo) GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.InvoiceAttachment, error) {
	var att domain.InvoiceAttachment
	err := r.db.GetContext(ctx, &att,
		"SELECT * FROM invoice_attachments WHERE id = $1 AND tenant_id = $2", attachmentID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("attachmentRepo.GetByID: %w", err)
	}
	return &att, nil
}

func (r *attachmentRepo) ListByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.InvoiceAttachment, error) {
	var atts []domain.InvoiceAttachment
	err := r.db.SelectContext(ctx, &atts,
		"SELECT * FROM invoice_attachments WHERE invoice_id = $1 AND tenant_id = $2 ORDER BY created_at DESC",
		invoiceID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("attachmentRepo.ListByInvoice: %w", err)
	}
	return atts, nil
}

func (r *attachmentRepo) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM invoice_attachments WHERE id = $1 AND tenant_id = $2", attachmentID, tenantID)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
