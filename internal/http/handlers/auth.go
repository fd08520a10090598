package handlers

import (
	"net/http"

	"github.com/manoj8056887579/careerhq-sub001/internal/app"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/admin"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/middleware"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/response"
)

type AuthHandler struct {
	auth    *app.AuthService
	session *middleware.SessionMiddleware
}

func NewAuthHandler(auth *app.AuthService, session *middleware.SessionMiddleware) *AuthHandler {
	return &AuthHandler{auth: auth, session: session}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.session.SetCookie(w, result.Token, result.ExpiresAt)
	response.JSON(w, http.StatusOK, result.Account)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.ClearCookie(w)
	response.JSON(w, http.StatusOK, messageResponse{Message: "logged out"})
}

// Session returns the authenticated account, used by the admin panel to
// restore state after a reload.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	account, err := h.auth.Account(r.Context(), accountID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, account)
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.auth.ForgotPassword(r.Context(), req.Email); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Message: "if the account exists, a reset link has been sent"})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.auth.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Message: "password updated"})
}

type profileRequest struct {
	Name          string             `json:"name"`
	ContactEmails []string           `json:"contact_emails"`
	ContactPhones []string           `json:"contact_phones"`
	Address       string             `json:"address"`
	MapLink       string             `json:"map_link"`
	SocialLinks   []admin.SocialLink `json:"social_links"`
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	h.Session(w, r)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	account, err := h.auth.UpdateProfile(r.Context(), accountID, admin.Profile{
		Name:          req.Name,
		ContactEmails: req.ContactEmails,
		ContactPhones: req.ContactPhones,
		Address:       req.Address,
		MapLink:       req.MapLink,
		SocialLinks:   req.SocialLinks,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, account)
}
