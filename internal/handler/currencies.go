package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"currencymon/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type CurrencyResponse struct {
	ID       int64   `json:"id"`
	NumCode  string  `json:"num_code" example:"840"`
	CharCode string  `json:"char_code" example:"USD"`
	Name     string  `json:"name" example:"US Dollar"`
	Value    float64 `json:"value" example:"90.5"`
	Nominal  int     `json:"nominal" example:"1"`
}

func toCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:       c.ID,
		NumCode:  c.NumCode,
		CharCode: c.CharCode,
		Name:     c.Name,
		Value:    c.Value,
		Nominal:  c.Nominal,
	}
}

// ListCurrencies godoc
// @Summary List tracked currencies
// @Description All currencies ordered by char code, optionally filtered by code
// @Tags Currencies
// @Produce json
// @Param code query string false "char code filter"
// @Success 200 {array} CurrencyResponse
// @Router /currencies [get]
func (h *Handler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	list, err := h.currencies.List(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		msg := "couldn't list currencies this time"
		logrus.WithError(err).WithField("handler", "ListCurrencies").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := make([]CurrencyResponse, 0, len(list))
	for _, c := range list {
		res = append(res, toCurrencyResponse(c))
	}
	writeJSON(w, http.StatusOK, res)
}

// GetCurrency godoc
// @Summary Get a currency by id
// @Tags Currencies
// @Produce json
// @Param id path int true "currency id"
// @Success 200 {object} CurrencyResponse
// @Failure 404 {object} errorResponse
// @Router /currencies/{id} [get]
func (h *Handler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid currency id")
		return
	}

	c, err := h.currencies.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCurrencyNotFound) {
			writeError(w, http.StatusNotFound, "currency not found")
			return
		}
		msg := "couldn't get currency this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetCurrency", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, toCurrencyResponse(c))
}

type CreateCurrencyRequest struct {
	NumCode  string  `json:"num_code"`
	CharCode string  `json:"char_code"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Nominal  int     `json:"nominal"`
}

type CreateCurrencyResponse struct {
	ID int64 `json:"id"`
}

// CreateCurrency godoc
// @Summary Create a currency
// @Tags Currencies
// @Accept json
// @Produce json
// @Param request body CreateCurrencyRequest true "currency fields"
// @Success 201 {object} CreateCurrencyResponse
// @Failure 400 {object} errorResponse
// @Router /currencies [post]
func (h *Handler) CreateCurrency(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreateCurrencyRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.currencies.Create(r.Context(), req.NumCode, req.CharCode, req.Name, req.Value, req.Nominal)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		if errors.Is(err, domain.ErrDuplicateCurrency) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		msg := "couldn't create currency this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateCurrency", "char_code": req.CharCode}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusCreated, CreateCurrencyResponse{ID: id})
}

type UpdateRatesResponse struct {
	Changed int `json:"changed"`
}

// UpdateRates godoc
// @Summary Bulk update currency rates
// @Description Sets new values by char code. Unknown codes are skipped, rows are never created.
// @Tags Currencies
// @Accept json
// @Produce json
// @Param request body map[string]float64 true "char code to value"
// @Success 200 {object} UpdateRatesResponse
// @Failure 400 {object} errorResponse
// @Router /currencies/rates [put]
func (h *Handler) UpdateRates(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)

	var updates map[string]float64
	if err := dec.Decode(&updates); err != nil || len(updates) == 0 {
		writeError(w, http.StatusBadRequest, "request body must map char codes to values")
		return
	}

	snap := make(domain.RateSnapshot, len(updates))
	for code, value := range updates {
		snap[domain.NormalizeCode(code)] = domain.SnapshotEntry{Value: value}
	}

	changed, err := h.reconciler.Merge(r.Context(), snap, false)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		msg := "couldn't update rates this time"
		logrus.WithError(err).WithField("handler", "UpdateRates").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, UpdateRatesResponse{Changed: changed})
}

type DeleteCurrencyResponse struct {
	Deleted int `json:"deleted"`
}

// DeleteCurrency godoc
// @Summary Delete a currency by id
// @Description Removes the currency and any subscriptions pointing at it
// @Tags Currencies
// @Produce json
// @Param id path int true "currency id"
// @Success 200 {object} DeleteCurrencyResponse
// @Failure 404 {object} errorResponse
// @Router /currencies/{id} [delete]
func (h *Handler) DeleteCurrency(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid currency id")
		return
	}

	deleted, err := h.currencies.Delete(r.Context(), id)
	if err != nil {
		msg := "couldn't delete currency this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteCurrency", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	if deleted == 0 {
		writeError(w, http.StatusNotFound, "currency not found")
		return
	}
	writeJSON(w, http.StatusOK, DeleteCurrencyResponse{Deleted: deleted})
}
