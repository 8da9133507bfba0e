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

func (h *Handler) listShareGrants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tokens, err := h.services.ShareTokenService.ListActiveGrants(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing share grants failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if tokens == nil {
		tokens = []models.ShareToken{}
	}

	writeJSON(w, log, tokens)
}

func (h *Handler) affectedShareTokens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	count, err := h.services.ShareTokenService.CountAffectedShareTokens(ctx, userID)
	if err != nil {
		log.Err(err).Msg("counting affected share tokens failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, models.AffectedTokensPreview{AffectedCount: count})
}

// invalidateShareTokens always answers 200: the body's Success flag carries
// the outcome, so the caller reads one shape in every case.
func (h *Handler) invalidateShareTokens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	result := h.services.ShareTokenService.InvalidateShareTokenEncryption(ctx, userID)

	writeJSON(w, log, result)
}

func (h *Handler) createShareGrant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var token models.ShareToken
	if err = json.NewDecoder(r.Body).Decode(&token); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	token.UserID = userID

	created, err := h.services.ShareTokenService.CreateGrant(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid share token provided")
			http.Error(w, "invalid share token provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrGrantAlreadyExists):
			log.Err(err).Msg("share token already exists")
			http.Error(w, "share token already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during share grant creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(created); err != nil {
		log.Err(err).Msg("encoding response failed")
	}
}
