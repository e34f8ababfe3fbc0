package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	respond "github.com/ayushi-devx/Virtual-Assistant/internal/api/respond"
	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/services"
)

type SavedAnswerHandler struct {
	svc *services.SavedAnswerService
}

func NewSavedAnswerHandler(svc *services.SavedAnswerService) *SavedAnswerHandler {
	return &SavedAnswerHandler{svc: svc}
}

// SaveAnswer POST /api/v1/saved-answers
func (h *SavedAnswerHandler) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChatMessage string `json:"chatMessage"`
		BotResponse string `json:"botResponse"`
		Category    string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.SaveAnswer(r.Context(), &model.SavedAnswer{
		OwnerID:     ownerFrom(r),
		ChatMessage: req.ChatMessage,
		BotResponse: req.BotResponse,
		Category:    req.Category,
	})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListAnswers GET /api/v1/saved-answers?page&pageSize
func (h *SavedAnswerHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	out, err := h.svc.ListAnswers(r.Context(), ownerFrom(r), page, pageSize)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GetAnswer GET /api/v1/saved-answers/{answerId}
func (h *SavedAnswerHandler) GetAnswer(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetAnswer(r.Context(), ownerFrom(r), mux.Vars(r)["answerId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// UpdateCategory PUT /api/v1/saved-answers/{answerId}
func (h *SavedAnswerHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.UpdateCategory(r.Context(), ownerFrom(r), mux.Vars(r)["answerId"], req.Category)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// DeleteAnswer DELETE /api/v1/saved-answers/{answerId}
func (h *SavedAnswerHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAnswer(r.Context(), ownerFrom(r), mux.Vars(r)["answerId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
