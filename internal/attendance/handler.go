package attendance

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/frahmantamala/hr-management/pkg/logger"
)

type ServiceAPI interface {
	CheckIn(userID int64) (*Record, error)
	CheckOut(userID int64) (*Record, error)
	TodayRecord(userID int64) (*Record, error)
	Monthly(userID int64, year, month int) (*MonthlySummary, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// CheckIn handles POST /attendance/checkin
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rec, err := h.Service.CheckIn(identity.ID)
	if err != nil {
		h.Logger.Error("CheckIn: service error", "error", err, "user_id", identity.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"msg":    "check-in recorded",
		"record": rec,
	})
}

// CheckOut handles POST /attendance/checkout
func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rec, err := h.Service.CheckOut(identity.ID)
	if err != nil {
		h.Logger.Error("CheckOut: service error", "error", err, "user_id", identity.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"msg":    "check-out recorded",
		"record": rec,
	})
}

// Today handles GET /attendance/today. A day without a record is not an
// error; the record is just null.
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rec, err := h.Service.TodayRecord(identity.ID)
	if err != nil {
		h.Logger.Error("Today: service error", "error", err, "user_id", identity.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"record": rec})
}

// Monthly handles GET /attendance/monthly?year=&month=
func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	year := 0
	month := 0
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if y, err := strconv.Atoi(yearStr); err == nil && y > 0 {
			year = y
		}
	}
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		if m, err := strconv.Atoi(monthStr); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}

	summary, err := h.Service.Monthly(identity.ID, year, month)
	if err != nil {
		h.Logger.Error("Monthly: service error", "error", err, "user_id", identity.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}
