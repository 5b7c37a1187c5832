package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/bonus"
	"github.com/hrms-labs/payroll-backend-go/internal/handler/http/response"
)

type BonusHandler interface {
	AddBonus(w http.ResponseWriter, r *http.Request)
	ListEmployeeBonuses(w http.ResponseWriter, r *http.Request)
}

type bonusHandlerImpl struct {
	bonusService bonus.BonusService
}

func NewBonusHandler(bonusService bonus.BonusService) BonusHandler {
	return &bonusHandlerImpl{bonusService: bonusService}
}

func (h *bonusHandlerImpl) AddBonus(w http.ResponseWriter, r *http.Request) {
	var req bonus.AddBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	by, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.bonusService.AddBonus(r.Context(), req, by)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus added", result)
}

func (h *bonusHandlerImpl) ListEmployeeBonuses(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.bonusService.ListBonuses(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
