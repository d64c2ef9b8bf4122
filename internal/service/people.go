package service

import (
	"context"

	"github.com/priyanshupaikra/Inter-AI/internal/domain"
)

// InterviewerService handles interviewer account management
type InterviewerService struct {
	interviewers domain.InterviewerRepository
}

// NewInterviewerService creates a new interviewer service
func NewInterviewerService(interviewers domain.InterviewerRepository) *InterviewerService {
	return &InterviewerService{interviewers: interviewers}
}

func (s *InterviewerService) Get(ctx context.Context, id int64) (*domain.Interviewer, error) {
	return s.interviewers.Get(ctx, id)
}

func (s *InterviewerService) List(ctx context.Context, limit, offset int) ([]domain.Interviewer, error) {
	return s.interviewers.List(ctx, normalizeLimit(limit), offset)
}

func (s *InterviewerService) Update(ctx context.Context, id int64, req domain.InterviewerUpdate) (*domain.Interviewer, error) {
	interviewer, err := s.interviewers.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		interviewer.Name = *req.Name
	}
	if req.Email != nil {
		interviewer.Email = *req.Email
	}

	if err := s.interviewers.Update(ctx, interviewer); err != nil {
		return nil, err
	}
	return interviewer, nil
}

func (s *InterviewerService) Delete(ctx context.Context, id int64) error {
	return s.interviewers.Delete(ctx, id)
}

// StudentService handles student record management
type StudentService struct {
	students domain.StudentRepository
}

// NewStudentService creates a new student service
func NewStudentService(students domain.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

func (s *StudentService) Create(ctx context.Context, req domain.StudentCreate) (*domain.Student, error) {
	student := &domain.Student{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Get(ctx context.Context, id int64) (*domain.Student, error) {
	return s.students.Get(ctx, id)
}

func (s *StudentService) List(ctx context.Context, limit, offset int) ([]domain.Student, error) {
	return s.students.List(ctx, normalizeLimit(limit), offset)
}

func (s *StudentService) Update(ctx context.Context, id int64, req domain.StudentUpdate) (*domain.Student, error) {
	student, err := s.students.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Email != nil {
		student.Email = *req.Email
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.students.Delete(ctx, id)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 200 {
		return 200
	}
	return limit
}
