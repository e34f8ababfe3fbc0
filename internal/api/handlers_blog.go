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

type BlogHandler struct {
	svc *services.BlogService
}

func NewBlogHandler(svc *services.BlogService) *BlogHandler { return &BlogHandler{svc: svc} }

type blogRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
	CoverImage  string   `json:"coverImage"`
}

// CreateBlog POST /api/v1/blogs
func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req blogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Title(req.Title); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.CreateBlog(r.Context(), &model.Blog{
		AuthorID:    ownerFrom(r),
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Category:    req.Category,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListBlogs GET /api/v1/blogs?category&page&pageSize
func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	out, err := h.svc.ListPublished(r.Context(), q.Get("category"), page, pageSize)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ListMyBlogs GET /api/v1/blogs/mine
func (h *BlogHandler) ListMyBlogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	out, err := h.svc.ListMine(r.Context(), ownerFrom(r), page, pageSize)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GetBlog GET /api/v1/blogs/{blogId}
func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetBlog(r.Context(), mux.Vars(r)["blogId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// UpdateBlog PUT /api/v1/blogs/{blogId}
func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	var req blogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Title(req.Title); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.UpdateBlog(r.Context(), &model.Blog{
		BlogID:      mux.Vars(r)["blogId"],
		AuthorID:    ownerFrom(r),
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Category:    req.Category,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// DeleteBlog DELETE /api/v1/blogs/{blogId}
func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteBlog(r.Context(), ownerFrom(r), mux.Vars(r)["blogId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
