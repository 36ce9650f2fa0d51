package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"currencymon/internal/domain"

	"github.com/sirupsen/logrus"
)

// ListSubscriptions godoc
// @Summary Map of user ids to subscribed currency ids
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} map[string][]int64
// @Router /subscriptions [get]
func (h *Handler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	m, err := h.users.SubscriptionsMap(r.Context())
	if err != nil {
		msg := "couldn't list subscriptions this time"
		logrus.WithError(err).WithField("handler", "ListSubscriptions").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type ToggleSubscriptionRequest struct {
	UserID     int64 `json:"user_id"`
	CurrencyID int64 `json:"currency_id"`
}

type ToggleSubscriptionResponse struct {
	Action domain.ToggleAction `json:"action" example:"subscribed"`
}

// ToggleSubscription godoc
// @Summary Subscribe or unsubscribe a user
// @Description Removes the edge when present, creates it when absent
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body ToggleSubscriptionRequest true "the pair to toggle"
// @Success 200 {object} ToggleSubscriptionResponse
// @Failure 404 {object} errorResponse
// @Router /subscriptions/toggle [post]
func (h *Handler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req ToggleSubscriptionRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	action, err := h.users.ToggleSubscription(r.Context(), req.UserID, req.CurrencyID)
	if err != nil {
		var refErr *domain.ReferentialError
		if errors.As(err, &refErr) {
			writeError(w, http.StatusNotFound, refErr.Error())
			return
		}
		msg := "couldn't toggle subscription this time"
		logrus.WithError(err).WithFields(logrus.Fields{
			"handler":     "ToggleSubscription",
			"user_id":     req.UserID,
			"currency_id": req.CurrencyID,
		}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, ToggleSubscriptionResponse{Action: action})
}
