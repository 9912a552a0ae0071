package vacation

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/frahmantamala/hr-management/pkg/logger"
)

type ServiceAPI interface {
	GetBalance(userID int64) (*BalanceView, error)
	Request(userID int64, dto RequestVacationDTO) (*Request, error)
	AllRequests() ([]*RequestWithRequester, error)
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

// Balance handles GET /vacations/balance
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	view, err := h.Service.GetBalance(identity.ID)
	if err != nil {
		h.Logger.Error("Balance: service error", "error", err, "user_id", identity.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, view)
}

// RequestVacation handles POST /vacations/request
func (h *Handler) RequestVacation(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto RequestVacationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.Request(identity.ID, dto)
	if err != nil {
		h.Logger.Error("RequestVacation: service error", "error", err, "user_id", identity.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"msg":      "request submitted",
		"vacation": req,
	})
}

// All handles GET /vacations/all. The admin role gate runs at the route.
func (h *Handler) All(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.AllRequests()
	if err != nil {
		h.Logger.Error("All: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, requests)
}
