package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type RefreshResponse struct {
	Changed int `json:"changed"`
}

// RefreshRates godoc
// @Summary Reconcile rates with the external feed now
// @Description Fetches a snapshot and merges it in, creating unseen currencies.
// @Description A dead feed degrades to cached or built-in data instead of failing.
// @Tags Rates
// @Produce json
// @Success 200 {object} RefreshResponse
// @Router /rates/refresh [post]
func (h *Handler) RefreshRates(w http.ResponseWriter, r *http.Request) {
	changed, err := h.reconciler.Refresh(r.Context())
	if err != nil {
		// only a store-side merge failure lands here, feed failures are
		// absorbed by the fallback chain
		msg := "couldn't refresh rates this time"
		logrus.WithError(err).WithField("handler", "RefreshRates").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, RefreshResponse{Changed: changed})
}
