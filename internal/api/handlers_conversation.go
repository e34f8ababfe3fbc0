package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	respond "github.com/ayushi-devx/Virtual-Assistant/internal/api/respond"
	"github.com/ayushi-devx/Virtual-Assistant/internal/api/validate"
	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/services"
)

// ConversationHandler is a thin HTTP transport over ConversationService.
type ConversationHandler struct {
	svc *services.ConversationService
}

func NewConversationHandler(svc *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

// CreateConversation POST /api/v1/conversations
func (h *ConversationHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Personality string `json:"personality"`
		Provider    string `json:"provider"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Title != "" {
		if err := validate.Title(req.Title); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}
	out, err := h.svc.CreateConversation(r.Context(), &model.Conversation{
		OwnerID:     ownerFrom(r),
		Title:       req.Title,
		Personality: model.Personality(req.Personality),
		Provider:    req.Provider,
	})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListConversations GET /api/v1/conversations?page&pageSize
func (h *ConversationHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	out, err := h.svc.ListConversations(r.Context(), ownerFrom(r), page, pageSize)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GetConversation GET /api/v1/conversations/{conversationId}
func (h *ConversationHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetConversation(r.Context(), ownerFrom(r), mux.Vars(r)["conversationId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// SendMessage POST /api/v1/conversations/{conversationId}/messages
func (h *ConversationHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.MessageText(req.Text); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.SendMessage(r.Context(), ownerFrom(r), mux.Vars(r)["conversationId"], req.Text)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// SetPersonality PUT /api/v1/conversations/{conversationId}/personality
func (h *ConversationHandler) SetPersonality(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Personality string `json:"personality"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.SetPersonality(r.Context(), ownerFrom(r), mux.Vars(r)["conversationId"], model.Personality(req.Personality))
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// SetProvider PUT /api/v1/conversations/{conversationId}/provider
func (h *ConversationHandler) SetProvider(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Provider string `json:"provider"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.SetProvider(r.Context(), ownerFrom(r), mux.Vars(r)["conversationId"], req.Provider)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// RenameConversation PUT /api/v1/conversations/{conversationId}/title
func (h *ConversationHandler) RenameConversation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Title(req.Title); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.RenameConversation(r.Context(), ownerFrom(r), mux.Vars(r)["conversationId"], req.Title)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ArchiveConversation POST /api/v1/conversations/{conversationId}/archive
func (h *ConversationHandler) ArchiveConversation(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ArchiveConversation(r.Context(), ownerFrom(r), mux.Vars(r)["conversationId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
