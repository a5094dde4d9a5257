package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"showroomos/internal/config"
	"showroomos/internal/domain"
	"showroomos/internal/port"
)

// AttachmentUploadInput is the DTO for invoice attachment uploads.
type AttachmentUploadInput struct {
	TenantID   uuid.UUID
	InvoiceID  uuid.UUID
	UploadedBy uuid.UUID
	File       multipart.File
	Header     *multipart.FileHeader
}

// AttachmentService defines the invoice attachment contract.
type AttachmentService interface {
	Upload(ctx context.Context, input AttachmentUploadInput) (*domain.InvoiceAttachment, error)
	ListByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.InvoiceAttachment, error)
	GetDownloadURL(ctx context.Context, tenantID, attachmentID uuid.UUID) (string, error)
	Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error
}

type attachmentService struct {
	attachmentRepo port.InvoiceAttachmentRepository
	invoiceRepo    port.InvoiceRepository
	storage        port.ObjectStorage
	cfg            *config.S3Config
}

// NewAttachmentService creates a new AttachmentService implementation.
func NewAttachmentService(
	attachmentRepo port.InvoiceAttachmentRepository,
	invoiceRepo port.InvoiceRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) AttachmentService {
	return &attachmentService{
		attachmentRepo: attachmentRepo,
		invoiceRepo:    invoiceRepo,
		storage:        storage,
		cfg:            cfg,
	}
}

func (s *attachmentService) Upload(ctx context.Context, input AttachmentUploadInput) (*domain.InvoiceAttachment, error) {
	// Attachment must belong to an existing invoice in the same tenant
	if _, err := s.invoiceRepo.GetByID(ctx, input.TenantID, input.InvoiceID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedAttachmentExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedAttachment
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrAttachmentTooLarge
	}

	// Magic-byte content sniffing; the extension alone is not trusted
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])
	if _, validContent := domain.AllowedAttachmentContentTypes[detectedType]; !validContent {
		return nil, domain.ErrUnsupportedAttachment
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	attachmentID := uuid.New()
	s3Key := fmt.Sprintf("tenants/%s/invoices/%s/%s/%s",
		input.TenantID, input.InvoiceID, attachmentID, input.Header.Filename)
	contentType := domain.AllowedAttachmentTypes[fileType]

	att := &domain.InvoiceAttachment{
		ID:           attachmentID,
		InvoiceID:    input.InvoiceID,
		TenantID:     input.TenantID,
		UploadedBy:   input.UploadedBy,
		FileName:     attachmentID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  contentType,
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("attachmentService.Upload: S3 upload failed for invoice %s: %v", input.InvoiceID, err)
		return nil, domain.ErrUploadFailed
	}

	if err := s.attachmentRepo.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("creating attachment metadata: %w", err)
	}
	return att, nil
}

func (s *attachmentService) ListByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.InvoiceAttachment, error) {
	return s.attachmentRepo.ListByInvoice(ctx, tenantID, invoiceID)
}

func (s *attachmentService) GetDownloadURL(ctx context.Context, tenantID, attachmentID uuid.UUID) (string, error) {
	att, err := s.attachmentRepo.GetByID(ctx, tenantID, attachmentID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, att.S3Bucket, att.S3Key, s.cfg.PresignExpiry)
}

func (s *attachmentService) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	att, err := s.attachmentRepo.GetByID(ctx, tenantID, attachmentID)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, att.S3Bucket, att.S3Key); err != nil {
		log.Printf("attachmentService.Delete: failed to delete from S3: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}
	return s.attachmentRepo.Delete(ctx, tenantID, attachmentID)
}
