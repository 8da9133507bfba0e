package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/service"
	"github.com/legacykeep/legacy-vault/internal/store"
	"github.com/legacykeep/legacy-vault/internal/utils"
	"github.com/legacykeep/legacy-vault/models"
)

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	record, err := h.services.VaultService.GetVault(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrVaultNotFound):
			log.Err(err).Msg("vault not found")
			http.Error(w, "vault not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during vault lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, log, record)
}

func (h *Handler) putVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var record models.VaultRecord
	if err = json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	// ownership comes from the verified token, never from the body
	record.UserID = userID

	saved, err := h.services.VaultService.PutVault(ctx, record)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid vault record provided")
			http.Error(w, "invalid vault record provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during vault save")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, log, saved)
}

func (h *Handler) rotateVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var record models.VaultRecord
	if err = json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	record.UserID = userID

	result, err := h.services.VaultService.RotateVault(ctx, record)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid vault record provided for rotation")
			http.Error(w, "invalid vault record provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during vault rotation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, log, result)
}

func writeJSON(w http.ResponseWriter, log *logger.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Err(err).Msg("encoding response failed")
	}
}
