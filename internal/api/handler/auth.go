package handler

import (
	"encoding/json"
	"net/http"

	"github.com/priyanshupaikra/Inter-AI/internal/api/middleware"
	"github.com/priyanshupaikra/Inter-AI/internal/api/response"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles interviewer registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.InterviewerCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	interviewer, err := h.authService.Register(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Created(w, interviewer)
}

// Login handles interviewer login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.InterviewerLogin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	interviewer, tokens, err := h.authService.Login(r.Context(), input)
	if err != nil {
		response.Unauthorized(w, "invalid email or password")
		return
	}

	response.OK(w, map[string]any{
		"interviewer": interviewer,
		"tokens":      tokens,
	})
}

// Refresh handles token refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var input struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), input.RefreshToken)
	if err != nil {
		response.Unauthorized(w, "invalid refresh token")
		return
	}

	response.OK(w, tokens)
}

// Me returns the authenticated interviewer's account
func (h *AuthHandler) Me(interviewerService *service.InterviewerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetInterviewerID(r.Context())
		if !ok {
			response.Unauthorized(w, "unauthorized")
			return
		}

		interviewer, err := interviewerService.Get(r.Context(), id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		response.OK(w, interviewer)
	}
}
