// Package testutil holds in-memory stand-ins for the catalog stores and the
// completion provider, shared by package tests.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/stemsi/studyplanner-backend/internal/llm"
	"github.com/stemsi/studyplanner-backend/internal/model"
	"github.com/stemsi/studyplanner-backend/internal/repository"
)

// ── Provider ──

// Provider records every exchange it receives and answers with Reply or Err.
type Provider struct {
	mu        sync.Mutex
	Reply     string
	Err       error
	Exchanges [][]llm.Message
}

func (p *Provider) Complete(_ context.Context, exchange *llm.Exchange) (*llm.Completion, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	msgs := exchange.Messages()
	p.Exchanges = append(p.Exchanges, msgs)
	if p.Err != nil {
		return nil, p.Err
	}
	return &llm.Completion{Text: p.Reply, Exchange: msgs}, nil
}

func (p *Provider) Info() llm.Info {
	return llm.Info{Vendor: "fake", Model: "fake-model", Endpoint: "http://fake.local"}
}

// Calls reports how many completions were requested.
func (p *Provider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Exchanges)
}

// LastPrompt returns the content of the final message of the latest exchange.
func (p *Provider) LastPrompt() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Exchanges) == 0 {
		return ""
	}
	last := p.Exchanges[len(p.Exchanges)-1]
	return last[len(last)-1].Content
}

// ── Courses ──

type CourseRepo struct {
	mu      sync.Mutex
	courses map[int]model.Course
	nextID  int
}

func NewCourseRepo(courses ...model.Course) *CourseRepo {
	r := &CourseRepo{courses: make(map[int]model.Course), nextID: 1}
	for _, c := range courses {
		r.courses[c.ID] = c
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *CourseRepo) GetByID(_ context.Context, id int) (*model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *CourseRepo) GetByIDs(_ context.Context, ids []int) ([]model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Course
	seen := map[int]bool{}
	for _, id := range ids {
		if c, ok := r.courses[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CourseRepo) List(_ context.Context) ([]model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CourseRepo) Create(_ context.Context, c *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	r.courses[c.ID] = *c
	return nil
}

func (r *CourseRepo) Update(_ context.Context, c *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.courses[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	c.CreatedAt = old.CreatedAt
	r.courses[c.ID] = *c
	return nil
}

func (r *CourseRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.courses, id)
	return nil
}

// ── Subjects ──

type SubjectRepo struct {
	mu       sync.Mutex
	subjects map[int]model.Subject
	nextID   int
}

func NewSubjectRepo(subjects ...model.Subject) *SubjectRepo {
	r := &SubjectRepo{subjects: make(map[int]model.Subject), nextID: 1}
	for _, s := range subjects {
		r.subjects[s.ID] = s
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *SubjectRepo) GetByID(_ context.Context, id int) (*model.Subject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subjects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *SubjectRepo) GetByIDs(_ context.Context, ids []int) ([]model.Subject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Subject
	for _, id := range ids {
		if s, ok := r.subjects[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SubjectRepo) GetAll(_ context.Context) ([]model.Subject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Subject, 0, len(r.subjects))
	for _, s := range r.subjects {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *SubjectRepo) Create(_ context.Context, s *model.Subject) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.nextID
	r.nextID++
	r.subjects[s.ID] = *s
	return nil
}

func (r *SubjectRepo) Update(_ context.Context, s *model.Subject) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subjects[s.ID]; !ok {
		return repository.ErrNotFound
	}
	r.subjects[s.ID] = *s
	return nil
}

func (r *SubjectRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subjects[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.subjects, id)
	return nil
}

// ── Schools ──

type SchoolRepo struct {
	mu      sync.Mutex
	schools map[int]model.School
	nextID  int
}

func NewSchoolRepo(schools ...model.School) *SchoolRepo {
	r := &SchoolRepo{schools: make(map[int]model.School), nextID: 1}
	for _, s := range schools {
		r.schools[s.ID] = s
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *SchoolRepo) GetByID(_ context.Context, id int) (*model.School, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schools[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *SchoolRepo) List(_ context.Context) ([]model.School, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.School, 0, len(r.schools))
	for _, s := range r.schools {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SchoolRepo) Create(_ context.Context, s *model.School) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.nextID
	r.nextID++
	r.schools[s.ID] = *s
	return nil
}

func (r *SchoolRepo) Update(_ context.Context, s *model.School) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schools[s.ID]; !ok {
		return repository.ErrNotFound
	}
	r.schools[s.ID] = *s
	return nil
}

func (r *SchoolRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schools[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.schools, id)
	return nil
}
