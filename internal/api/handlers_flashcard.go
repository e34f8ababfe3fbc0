package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/ayushi-devx/Virtual-Assistant/internal/api/respond"
	"github.com/ayushi-devx/Virtual-Assistant/internal/api/validate"
	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/services"
)

type FlashcardHandler struct {
	svc *services.FlashcardService
}

func NewFlashcardHandler(svc *services.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{svc: svc}
}

type deckRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsPublic    bool   `json:"isPublic"`
}

// CreateDeck POST /api/v1/decks
func (h *FlashcardHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Title(req.Title); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.CreateDeck(r.Context(), &model.FlashcardDeck{
		OwnerID:     ownerFrom(r),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListDecks GET /api/v1/decks
func (h *FlashcardHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.svc.ListDecks(r.Context(), ownerFrom(r))
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"decks": decks, "count": len(decks)})
}

// GetDeck GET /api/v1/decks/{deckId}
func (h *FlashcardHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetDeck(r.Context(), ownerFrom(r), mux.Vars(r)["deckId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// UpdateDeck PUT /api/v1/decks/{deckId}
func (h *FlashcardHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Title(req.Title); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.UpdateDeck(r.Context(), &model.FlashcardDeck{
		DeckID:      mux.Vars(r)["deckId"],
		OwnerID:     ownerFrom(r),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// DeleteDeck DELETE /api/v1/decks/{deckId}
func (h *FlashcardHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteDeck(r.Context(), ownerFrom(r), mux.Vars(r)["deckId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddCard POST /api/v1/decks/{deckId}/cards
func (h *FlashcardHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.AddCard(r.Context(), ownerFrom(r), &model.Flashcard{
		DeckID:   mux.Vars(r)["deckId"],
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// RemoveCard DELETE /api/v1/decks/{deckId}/cards/{cardId}
func (h *FlashcardHandler) RemoveCard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.RemoveCard(r.Context(), ownerFrom(r), vars["deckId"], vars["cardId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
