package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/llm"
)

// In-memory repository fakes. The conductor derives its position from the
// transcript, so the fakes implement the same cursor semantics as the SQL.

type fakeSessionRepo struct {
	mu     sync.Mutex
	byID   map[int64]*domain.Session
	nextID int64
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[int64]*domain.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	s.ID = r.nextID
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) Get(ctx context.Context, id int64) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("session %d: %w", id, domain.ErrNotFound)
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) GetByToken(ctx context.Context, token uuid.UUID) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byID {
		if s.Token == token {
			cp := *s
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("session %s: %w", token, domain.ErrNotFound)
}

func (r *fakeSessionRepo) List(ctx context.Context, limit, offset int) ([]domain.SessionSummary, error) {
	return nil, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID]; !ok {
		return fmt.Errorf("session %d: %w", s.ID, domain.ErrNotFound)
	}
	s.UpdatedAt = time.Now()
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("session %d: %w", id, domain.ErrNotFound)
	}
	delete(r.byID, id)
	return nil
}

type fakeTranscriptRepo struct {
	mu      sync.Mutex
	entries []domain.TranscriptEntry
	nextID  int64
}

func newFakeTranscriptRepo() *fakeTranscriptRepo {
	return &fakeTranscriptRepo{}
}

func (r *fakeTranscriptRepo) Append(ctx context.Context, e *domain.TranscriptEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	e.ID = r.nextID
	e.CreatedAt = time.Now()
	r.entries = append(r.entries, *e)
	return nil
}

func (r *fakeTranscriptRepo) ListBySession(ctx context.Context, sessionID int64) ([]domain.TranscriptEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.TranscriptEntry
	for _, e := range r.entries {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeTranscriptRepo) Tail(ctx context.Context, sessionID int64, limit int) ([]domain.TranscriptEntry, error) {
	all, _ := r.ListBySession(ctx, sessionID)
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

func (r *fakeTranscriptRepo) CountBySpeaker(ctx context.Context, sessionID int64, speaker domain.Speaker) (int, error) {
	all, _ := r.ListBySession(ctx, sessionID)
	count := 0
	for _, e := range all {
		if e.Speaker == speaker {
			count++
		}
	}
	return count, nil
}

type fakeQuestionRepo struct {
	mu          sync.Mutex
	questions   []domain.Question
	transcripts *fakeTranscriptRepo
	nextID      int64
}

func newFakeQuestionRepo(transcripts *fakeTranscriptRepo) *fakeQuestionRepo {
	return &fakeQuestionRepo{transcripts: transcripts}
}

func (r *fakeQuestionRepo) Create(ctx context.Context, q *domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.questions {
		if existing.SessionID == q.SessionID && existing.Ord == q.Ord {
			return fmt.Errorf("order %d already used: %w", q.Ord, domain.ErrConflict)
		}
	}
	r.nextID++
	q.ID = r.nextID
	q.CreatedAt = time.Now()
	r.questions = append(r.questions, *q)
	return nil
}

// CreateBulk checks the whole batch against the stored script before
// writing anything, like the transactional SQL version.
func (r *fakeQuestionRepo) CreateBulk(ctx context.Context, qs []*domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range qs {
		for _, existing := range r.questions {
			if existing.SessionID == q.SessionID && existing.Ord == q.Ord {
				return fmt.Errorf("order %d already used: %w", q.Ord, domain.ErrConflict)
			}
		}
	}
	for _, q := range qs {
		r.nextID++
		q.ID = r.nextID
		q.CreatedAt = time.Now()
		r.questions = append(r.questions, *q)
	}
	return nil
}

func (r *fakeQuestionRepo) Get(ctx context.Context, id int64) (*domain.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.questions {
		if q.ID == id {
			cp := q
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("question %d: %w", id, domain.ErrNotFound)
}

func (r *fakeQuestionRepo) ListBySession(ctx context.Context, sessionID int64) ([]domain.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Question
	for _, q := range r.questions {
		if q.SessionID == sessionID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ord < out[j].Ord })
	return out, nil
}

// NextUnanswered mirrors the storage query: the lowest ordinal above the
// highest ordinal already referenced by an ai transcript entry.
func (r *fakeQuestionRepo) NextUnanswered(ctx context.Context, sessionID int64) (*domain.Question, error) {
	script, _ := r.ListBySession(ctx, sessionID)
	entries, _ := r.transcripts.ListBySession(ctx, sessionID)

	maxOrd := -1
	for _, e := range entries {
		if e.Speaker != domain.SpeakerAI || e.QuestionID == nil {
			continue
		}
		for _, q := range script {
			if q.ID == *e.QuestionID && q.Ord > maxOrd {
				maxOrd = q.Ord
			}
		}
	}

	for _, q := range script {
		if q.Ord > maxOrd {
			cp := q
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeQuestionRepo) Update(ctx context.Context, q *domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.questions {
		if existing.ID == q.ID {
			r.questions[i] = *q
			return nil
		}
	}
	return fmt.Errorf("question %d: %w", q.ID, domain.ErrNotFound)
}

func (r *fakeQuestionRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.questions {
		if existing.ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("question %d: %w", id, domain.ErrNotFound)
}

type fakeStudentRepo struct {
	mu     sync.Mutex
	byID   map[int64]*domain.Student
	nextID int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{byID: make(map[int64]*domain.Student)}
}

func (r *fakeStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	s.ID = r.nextID
	s.CreatedAt = time.Now()
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *fakeStudentRepo) Get(ctx context.Context, id int64) (*domain.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("student %d: %w", id, domain.ErrNotFound)
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStudentRepo) List(ctx context.Context, limit, offset int) ([]domain.Student, error) {
	return nil, nil
}

func (r *fakeStudentRepo) Update(ctx context.Context, s *domain.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID]; !ok {
		return fmt.Errorf("student %d: %w", s.ID, domain.ErrNotFound)
	}
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *fakeStudentRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

type fakeInterviewerRepo struct {
	mu      sync.Mutex
	byID    map[int64]*domain.Interviewer
	byEmail map[string]*domain.Interviewer
	nextID  int64
}

func newFakeInterviewerRepo() *fakeInterviewerRepo {
	return &fakeInterviewerRepo{
		byID:    make(map[int64]*domain.Interviewer),
		byEmail: make(map[string]*domain.Interviewer),
	}
}

func (r *fakeInterviewerRepo) Create(ctx context.Context, i *domain.Interviewer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[i.Email]; exists {
		return fmt.Errorf("email taken: %w", domain.ErrConflict)
	}
	r.nextID++
	i.ID = r.nextID
	i.CreatedAt = time.Now()
	cp := *i
	r.byID[i.ID] = &cp
	r.byEmail[i.Email] = &cp
	return nil
}

func (r *fakeInterviewerRepo) Get(ctx context.Context, id int64) (*domain.Interviewer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("interviewer %d: %w", id, domain.ErrNotFound)
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInterviewerRepo) GetByEmail(ctx context.Context, email string) (*domain.Interviewer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInterviewerRepo) List(ctx context.Context, limit, offset int) ([]domain.Interviewer, error) {
	return nil, nil
}

func (r *fakeInterviewerRepo) Update(ctx context.Context, i *domain.Interviewer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[i.ID]; !ok {
		return fmt.Errorf("interviewer %d: %w", i.ID, domain.ErrNotFound)
	}
	cp := *i
	r.byID[i.ID] = &cp
	r.byEmail[i.Email] = &cp
	return nil
}

func (r *fakeInterviewerRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("interviewer %d: %w", id, domain.ErrNotFound)
	}
	delete(r.byEmail, i.Email)
	delete(r.byID, id)
	return nil
}

type fakeReportRepo struct {
	mu        sync.Mutex
	bySession map[int64]*domain.Report
	nextID    int64
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{bySession: make(map[int64]*domain.Report)}
}

func (r *fakeReportRepo) Upsert(ctx context.Context, rep *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.bySession[rep.SessionID]; ok {
		rep.ID = existing.ID
	} else {
		r.nextID++
		rep.ID = r.nextID
	}
	cp := *rep
	r.bySession[rep.SessionID] = &cp
	return nil
}

func (r *fakeReportRepo) Get(ctx context.Context, id int64) (*domain.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rep := range r.bySession {
		if rep.ID == id {
			cp := *rep
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("report %d: %w", id, domain.ErrNotFound)
}

func (r *fakeReportRepo) GetBySession(ctx context.Context, sessionID int64) (*domain.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.bySession[sessionID]
	if !ok {
		return nil, fmt.Errorf("report for session %d: %w", sessionID, domain.ErrNotFound)
	}
	cp := *rep
	return &cp, nil
}

func (r *fakeReportRepo) List(ctx context.Context, limit, offset int) ([]domain.Report, error) {
	return nil, nil
}

func (r *fakeReportRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for sessionID, rep := range r.bySession {
		if rep.ID == id {
			delete(r.bySession, sessionID)
			return nil
		}
	}
	return fmt.Errorf("report %d: %w", id, domain.ErrNotFound)
}

// failingProvider always errors, to exercise the fallback path
type failingProvider struct{}

func (failingProvider) Name() string         { return "failing" }
func (failingProvider) DefaultModel() string { return "failing" }
func (failingProvider) IsConfigured() bool   { return true }
func (failingProvider) Generate(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	return nil, errors.New("model backend is down")
}
