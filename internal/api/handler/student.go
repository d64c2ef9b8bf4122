package handler

import (
	"encoding/json"
	"net/http"

	"github.com/priyanshupaikra/Inter-AI/internal/api/response"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/service"
)

// StudentHandler handles student record endpoints
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.StudentCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	student, err := h.studentService.Create(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.Created(w, student)
}

func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	students, err := h.studentService.List(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, students)
}

func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid student ID")
		return
	}

	student, err := h.studentService.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, student)
}

func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid student ID")
		return
	}

	var input domain.StudentUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	student, err := h.studentService.Update(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, student)
}

func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid student ID")
		return
	}

	if err := h.studentService.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	response.NoContent(w)
}
