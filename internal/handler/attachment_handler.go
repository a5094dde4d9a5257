package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"showroomos/internal/service"
)

// AttachmentHandler handles invoice attachment endpoints.
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// Upload handles POST /api/v1/invoices/:id/attachments
// @Summary Upload an invoice attachment
// @Description Upload a file (PDF, JPG, or PNG) against an invoice
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param file formData file true "File to upload (PDF, JPG, or PNG)"
// @Success 201 {object} Response{data=domain.InvoiceAttachment} "Attachment uploaded"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Security BearerAuth
// @Router /invoices/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	invoiceID, ok := parseIDParam(c, "invoice ID")
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	attachment, err := h.attachmentService.Upload(c.Request.Context(), service.AttachmentUploadInput{
		TenantID:   tenantID,
		InvoiceID:  invoiceID,
		UploadedBy: userID,
		File:       file,
		Header:     header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, attachment)
}

// ListByInvoice handles GET /api/v1/invoices/:id/attachments
// @Summary List invoice attachments
// @Tags attachments
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=[]domain.InvoiceAttachment} "List of attachments"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id}/attachments [get]
func (h *AttachmentHandler) ListByInvoice(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	invoiceID, ok := parseIDParam(c, "invoice ID")
	if !ok {
		return
	}

	attachments, err := h.attachmentService.ListByInvoice(c.Request.Context(), tenantID, invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, attachments)
}

// Download handles GET /api/v1/attachments/:id/download
// @Summary Get attachment download URL
// @Description Get a presigned download URL for an attachment
// @Tags attachments
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} Response{data=AttachmentWithDownloadURL} "Download URL"
// @Failure 404 {object} ErrorResponseBody "Attachment not found"
// @Security BearerAuth
// @Router /attachments/{id}/download [get]
func (h *AttachmentHandler) Download(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	attachmentID, ok := parseIDParam(c, "attachment ID")
	if !ok {
		return
	}

	downloadURL, err := h.attachmentService.GetDownloadURL(c.Request.Context(), tenantID, attachmentID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": downloadURL})
}

// Delete handles DELETE /api/v1/attachments/:id
// @Summary Delete an attachment
// @Description Delete an attachment from storage and the database (admin only)
// @Tags attachments
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Attachment deleted"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 404 {object} ErrorResponseBody "Attachment not found"
// @Security BearerAuth
// @Router /attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	attachmentID, ok := parseIDParam(c, "attachment ID")
	if !ok {
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), tenantID, attachmentID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "attachment deleted"})
}
