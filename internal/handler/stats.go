package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type StatsResponse struct {
	TotalCurrencies    int `json:"total_currencies"`
	TotalUsers         int `json:"total_users"`
	TotalSubscriptions int `json:"total_subscriptions"`
}

// GetStats godoc
// @Summary Totals of tracked currencies, users and subscriptions
// @Tags Stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fail := func(err error) {
		msg := "couldn't collect stats this time"
		logrus.WithError(err).WithField("handler", "GetStats").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}

	currencies, err := h.currencies.List(ctx, "")
	if err != nil {
		fail(err)
		return
	}
	users, err := h.users.ListUsers(ctx)
	if err != nil {
		fail(err)
		return
	}
	subscriptions, err := h.users.CountSubscriptions(ctx)
	if err != nil {
		fail(err)
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		TotalCurrencies:    len(currencies),
		TotalUsers:         len(users),
		TotalSubscriptions: subscriptions,
	})
}
