package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	identifier, ok := h.identifier(w, r)
	if !ok {
		return
	}

	var req models.CreateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.services.WalletService.Create(r.Context(), identifier, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) open(w http.ResponseWriter, r *http.Request) {
	identifier, ok := h.identifier(w, r)
	if !ok {
		return
	}

	var req models.OpenRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.services.WalletService.Open(r.Context(), identifier, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	identifier, ok := h.identifier(w, r)
	if !ok {
		return
	}

	var req models.RestoreRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.services.WalletService.Restore(r.Context(), identifier, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	identifier, ok := h.identifier(w, r)
	if !ok {
		return
	}

	resp, err := h.services.WalletService.Close(r.Context(), identifier)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// destroy answers an aborted destroy with 200 and destroyed=false: the
// command ran, the caller declined.
func (h *Handler) destroy(w http.ResponseWriter, r *http.Request) {
	identifier, ok := h.identifier(w, r)
	if !ok {
		return
	}

	var req models.DestroyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.services.WalletService.Destroy(r.Context(), identifier, req)
	if errors.Is(err, service.ErrAbortedByUser) {
		utils.WriteJSON(w, models.DestroyResponse{
			Code:    app.CodeAbortedByUser,
			Message: app.MsgAbortedByUser,
		}, http.StatusOK)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	identifier, ok := h.identifier(w, r)
	if !ok {
		return
	}

	var req models.SendRequest
	if !decodeBody(w, r, &req) {
		return
	}

	log := logger.FromRequest(r)
	progress := func(p models.SendProgress) {
		log.Info().Str("stage", string(p.Stage)).Str("tx_id", p.TxID).Msg("send progress")
	}

	resp, err := h.services.WalletService.Send(r.Context(), identifier, req, progress)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	identifier, ok := h.identifier(w, r)
	if !ok {
		return
	}

	resp, err := h.services.WalletService.Status(r.Context(), identifier)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) accounts(w http.ResponseWriter, r *http.Request) {
	identifier, ok := h.identifier(w, r)
	if !ok {
		return
	}

	resp, err := h.services.WalletService.Accounts(r.Context(), identifier)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) identifier(w http.ResponseWriter, r *http.Request) (string, bool) {
	identifier, ok := utils.GetIdentifierFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoIdentifier).Send()
		utils.WriteJSON(w, models.ErrorResponse{
			Code:    app.CodeUnauthorized,
			Message: app.MsgNoIdentifierProvided,
		}, http.StatusUnauthorized)
		return "", false
	}
	return identifier, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{
			Code:    app.CodeInvalidData,
			Message: app.MsgInvalidDataProvided,
		}, http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("code", body.Code).Msg("command failed")
	} else {
		log.Info().Err(err).Str("code", body.Code).Msg("command rejected")
	}

	utils.WriteJSON(w, body, status)
}
