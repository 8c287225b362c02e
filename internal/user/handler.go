package user

import (
	"fmt"
	"net/http"

	"social-platform/internal/shared/httpx"
	"social-platform/internal/shared/jwt"
	"social-platform/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.Decode[SignupReq](r)
	if err != nil {
		return err
	}
	if err = validate.Struct(body); err != nil {
		return err
	}
	u, err := h.svc.Signup(body.Username, body.Password, body.Role)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{
		"message": fmt.Sprintf("User %s created successfully", u.Username),
		"user":    u,
	}, http.StatusCreated)
	return nil
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.Decode[LoginReq](r)
	if err != nil {
		return err
	}
	if err = validate.Struct(body); err != nil {
		return err
	}
	u, err := h.svc.Login(body.Username, body.Password)
	if err != nil {
		return err
	}
	token, _ := jwt.Make(u.ID, u.Role)
	httpx.WriteJSON(w, map[string]any{
		"message":      "Login successful",
		"username":     u.Username,
		"access_token": token,
	}, http.StatusOK)
	return nil
}

// Me resolves the bearer token to the caller's user row.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	u, err := h.svc.GetByID(uid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}
