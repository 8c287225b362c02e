package post

import (
	"net/http"

	"social-platform/internal/shared/httpx"
	"social-platform/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	body, err := httpx.Decode[CreateReq](r)
	if err != nil {
		return err
	}
	if err = validate.Struct(body); err != nil {
		return err
	}
	p, err := h.svc.Create(r.Context(), uid, body.Content, body.ImageURL)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{
		"message": "Post created successfully",
		"post":    p,
	}, http.StatusCreated)
	return nil
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	httpx.WriteJSON(w, map[string]any{"posts": h.svc.GetAll()}, http.StatusOK)
	return nil
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) error {
	pid, err := httpx.PathID(r, "post_id")
	if err != nil {
		return err
	}
	p, err := h.svc.GetByID(pid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusOK)
	return nil
}
