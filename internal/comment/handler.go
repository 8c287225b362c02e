package comment

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
	pid, err := httpx.PathID(r, "post_id")
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
	c, err := h.svc.Create(pid, uid, body.Content)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{
		"message": "Comment added successfully",
		"comment": c,
	}, http.StatusCreated)
	return nil
}

func (h *Handler) ListByPost(w http.ResponseWriter, r *http.Request) error {
	pid, err := httpx.PathID(r, "post_id")
	if err != nil {
		return err
	}
	limit := httpx.QueryInt(r, "limit", 50)
	offset := httpx.QueryInt(r, "offset", 0)
	items, err := h.svc.ListByPost(pid, limit, offset)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{
		"items": items, "limit": limit, "offset": offset,
	}, http.StatusOK)
	return nil
}
