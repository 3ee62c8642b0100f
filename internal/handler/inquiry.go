package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"vehicle-lookup-api/internal/model"
	"vehicle-lookup-api/internal/notify"
	"vehicle-lookup-api/internal/service"
)

type InquiryHandler struct {
	inquiries *service.InquiryService
}

func NewInquiryHandler(inquiries *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// Create records an inquiry and e-mails it to the sales team
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.Inquiry == nil || req.Vehicle == nil {
		writeError(w, http.StatusBadRequest, "Missing inquiry or vehicle", nil)
		return
	}

	id, err := h.inquiries.Submit(r.Context(), *req.Inquiry, *req.Vehicle)
	if err != nil {
		var sendErr *notify.SendError
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, "Invalid inquiry", err.Error())
		case errors.As(err, &sendErr):
			writeError(w, http.StatusInternalServerError, "Failed to send email", sendErr.Details)
		default:
			writeError(w, http.StatusInternalServerError, "Failed to send email notification", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, model.InquiryResponse{
		Success: true,
		Message: "Email notification sent",
		EmailID: id,
	})
}
