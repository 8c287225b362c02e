package like

import (
	"net/http"

	"social-platform/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	pid, err := httpx.PathID(r, "post_id")
	if err != nil {
		return err
	}
	count, already, err := h.svc.Like(pid, uid)
	if err != nil {
		return err
	}
	msg := "Post liked successfully"
	if already {
		msg = "Already liked"
	}
	httpx.WriteJSON(w, map[string]any{
		"message": msg, "post_id": pid, "like_count": count, "liked_by_me": true,
	}, http.StatusOK)
	return nil
}

func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	pid, err := httpx.PathID(r, "post_id")
	if err != nil {
		return err
	}
	count, missing, err := h.svc.Unlike(pid, uid)
	if err != nil {
		return err
	}
	msg := "Post unliked successfully"
	if missing {
		msg = "You have not liked this post"
	}
	httpx.WriteJSON(w, map[string]any{
		"message": msg, "post_id": pid, "like_count": count, "liked_by_me": false,
	}, http.StatusOK)
	return nil
}

func (h *Handler) GetCount(w http.ResponseWriter, r *http.Request) error {
	pid, err := httpx.PathID(r, "post_id")
	if err != nil {
		return err
	}
	count, err := h.svc.Count(pid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"post_id": pid, "like_count": count}, http.StatusOK)
	return nil
}
