package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/priyanshupaikra/Inter-AI/internal/api/response"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/service"
)

// SessionHandler handles interview session endpoints
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.SessionCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	session, err := h.sessionService.Create(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.Created(w, session)
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	sessions, err := h.sessionService.List(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, sessions)
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid session ID")
		return
	}

	session, err := h.sessionService.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, session)
}

// GetByToken looks up a session by its opaque token
func (h *SessionHandler) GetByToken(w http.ResponseWriter, r *http.Request) {
	token, err := uuid.Parse(chi.URLParam(r, "token"))
	if err != nil {
		response.BadRequest(w, "invalid session token")
		return
	}

	session, err := h.sessionService.GetByToken(r.Context(), token)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, session)
}

func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid session ID")
		return
	}

	var input domain.SessionUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	session, err := h.sessionService.Update(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, session)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid session ID")
		return
	}

	if err := h.sessionService.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	response.NoContent(w)
}

// Start moves a scheduled session into progress
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.sessionService.Start)
}

// End completes an in-progress session
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.sessionService.End)
}

// Cancel cancels a session
func (h *SessionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.sessionService.Cancel)
}

func (h *SessionHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id int64) (*domain.Session, error),
) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid session ID")
		return
	}

	session, err := fn(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, session)
}
