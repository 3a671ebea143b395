package billing

import (
	"net/http"
	"strconv"

	"marinahub/internal/domain"
	"marinahub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inv, err := h.service.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid invoice data")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create invoice")
		}
		return
	}

	response.Success(c, http.StatusCreated, inv)
}

func (h *Handler) GetInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	inv, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrInvoiceNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load invoice")
		}
		return
	}

	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) ListInvoices(c *gin.Context) {
	if ownerID := c.Query("owner_id"); ownerID != "" {
		id, err := strconv.ParseInt(ownerID, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid owner ID")
			return
		}
		invoices, err := h.service.ListInvoicesByOwner(c.Request.Context(), id)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list invoices")
			return
		}
		response.Success(c, http.StatusOK, invoices)
		return
	}

	if marinaID := c.Query("marina_id"); marinaID != "" {
		id, err := strconv.ParseInt(marinaID, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid marina ID")
			return
		}
		invoices, err := h.service.ListInvoicesByMarina(c.Request.Context(), id, domain.InvoiceStatus(c.Query("status")))
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list invoices")
			return
		}
		response.Success(c, http.StatusOK, invoices)
		return
	}

	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "marina_id or owner_id query parameter is required")
}

func (h *Handler) UpdateInvoiceStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inv, err := h.service.UpdateInvoiceStatus(c.Request.Context(), id, domain.InvoiceStatus(req.Status))
	if err != nil {
		switch err {
		case ErrInvoiceNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Invoice cannot move to this status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update invoice status")
		}
		return
	}

	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.RecordPayment(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment data")
		case ErrInvoiceNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) GetPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrPaymentNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment")
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}

func (h *Handler) ListPayments(c *gin.Context) {
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "owner_id query parameter is required")
		return
	}

	id, err := strconv.ParseInt(ownerID, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid owner ID")
		return
	}

	payments, err := h.service.ListPaymentsByOwner(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list payments")
		return
	}

	response.Success(c, http.StatusOK, payments)
}

func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdatePaymentStatus(c.Request.Context(), id, domain.PaymentStatus(req.Status))
	if err != nil {
		switch err {
		case ErrPaymentNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Payment cannot move to this status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update payment status")
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}
