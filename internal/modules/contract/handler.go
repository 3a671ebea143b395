package contract

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
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid contract ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	contract, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid contract data")
		case ErrBerthOccupied:
			response.Error(c, http.StatusConflict, "BERTH_OCCUPIED", "Berth already has an active contract")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create contract")
		}
		return
	}

	response.Success(c, http.StatusCreated, contract)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contract, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Contract not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load contract")
		}
		return
	}

	response.Success(c, http.StatusOK, contract)
}

func (h *Handler) List(c *gin.Context) {
	if marinaID := c.Query("marina_id"); marinaID != "" {
		id, err := strconv.ParseInt(marinaID, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid marina ID")
			return
		}
		contracts, err := h.service.GetByMarina(c.Request.Context(), id)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list contracts")
			return
		}
		response.Success(c, http.StatusOK, contracts)
		return
	}

	if ownerID := c.Query("owner_id"); ownerID != "" {
		id, err := strconv.ParseInt(ownerID, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid owner ID")
			return
		}
		contracts, err := h.service.GetByOwner(c.Request.Context(), id)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list contracts")
			return
		}
		response.Success(c, http.StatusOK, contracts)
		return
	}

	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "marina_id or owner_id query parameter is required")
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	contract, err := h.service.UpdateStatus(c.Request.Context(), id, domain.ContractStatus(req.Status))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Contract not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Contract cannot move to this status")
		case ErrBerthOccupied:
			response.Error(c, http.StatusConflict, "BERTH_OCCUPIED", "Berth already has an active contract")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update contract status")
		}
		return
	}

	response.Success(c, http.StatusOK, contract)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Contract not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Active contracts cannot be deleted")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete contract")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Summary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	summary, err := h.service.GetSummary(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Contract not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build contract summary")
		}
		return
	}

	response.Success(c, http.StatusOK, summary)
}
