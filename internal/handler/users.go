package handler

import (
	"errors"
	"net/http"
	"strconv"

	"currencymon/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name" example:"Alice"`
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} UserResponse
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		msg := "couldn't list users this time"
		logrus.WithError(err).WithField("handler", "ListUsers").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := make([]UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, UserResponse{ID: u.ID, Name: u.Name})
	}
	writeJSON(w, http.StatusOK, res)
}

type UserProfileResponse struct {
	User       UserResponse       `json:"user"`
	Subscribed []CurrencyResponse `json:"subscribed"`
	Available  []CurrencyResponse `json:"available"`
}

// GetUserProfile godoc
// @Summary Get a user's profile
// @Description The user plus their subscribed and still-available currencies
// @Tags Users
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} UserProfileResponse
// @Failure 404 {object} errorResponse
// @Router /users/{id} [get]
func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	ctx := r.Context()
	user, err := h.users.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		msg := "couldn't load user this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetUserProfile", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	subscribed, err := h.users.ListSubscribed(ctx, id)
	if err == nil {
		var available []domain.Currency
		if available, err = h.users.ListAvailable(ctx, id); err == nil {
			res := UserProfileResponse{
				User:       UserResponse{ID: user.ID, Name: user.Name},
				Subscribed: make([]CurrencyResponse, 0, len(subscribed)),
				Available:  make([]CurrencyResponse, 0, len(available)),
			}
			for _, c := range subscribed {
				res.Subscribed = append(res.Subscribed, toCurrencyResponse(c))
			}
			for _, c := range available {
				res.Available = append(res.Available, toCurrencyResponse(c))
			}
			writeJSON(w, http.StatusOK, res)
			return
		}
	}

	msg := "couldn't load user profile this time"
	logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetUserProfile", "id": id}).Error(msg)
	writeError(w, http.StatusInternalServerError, msg)
}
