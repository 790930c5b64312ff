package memory

import (
	"sync"

	"github.com/spszl/teacher-reviews/internal/domain/entity"
	"github.com/spszl/teacher-reviews/internal/domain/repository"
)

// Storage is the in-memory backend: two keyed maps guarded by one mutex,
// with per-type monotonic id counters. The counter increment and the map
// write for a single create/update/approve happen under the same lock, so
// readers never observe a partially applied mutation.
type Storage struct {
	mu            sync.RWMutex
	teachers      map[int]entity.Teacher
	reviews       map[int]entity.Review
	nextTeacherID int
	nextReviewID  int
}

func New() *Storage {
	return &Storage{
		teachers:      make(map[int]entity.Teacher),
		reviews:       make(map[int]entity.Review),
		nextTeacherID: 1,
		nextReviewID:  1,
	}
}

// NewSeeded returns a storage pre-populated with the default teacher
// profiles, the way the process starts in the in-memory configuration.
func NewSeeded() *Storage {
	s := New()
	for _, f := range SeedTeachers() {
		_, _ = s.CreateTeacher(f)
	}
	return s
}

// SeedTeachers returns the initial teacher profiles loaded at startup.
func SeedTeachers() []repository.TeacherFields {
	return []repository.TeacherFields{
		{
			Name:        "Jaromír Mazal",
			Subject:     "odborné předměty elektro",
			ImageURL:    "https://www.spszl.cz/wp-content/uploads/2020/08/MJ.jpg",
			Description: "Konzultace: Čtvrtek 8. vyučovací hodina",
		},
		{
			Name:        "Prof. Michael Chen",
			Subject:     "Physics",
			ImageURL:    "https://images.unsplash.com/photo-1580894732444-8ecded7900cd",
			Description: "Specializes in theoretical physics with 15 years of teaching experience.",
		},
		{
			Name:        "Ms. Emily Parker",
			Subject:     "English Literature",
			ImageURL:    "https://images.unsplash.com/photo-1485217988980-11786ced9454",
			Description: "Dedicated to fostering creativity and critical thinking through literature.",
		},
		{
			Name:        "Mr. David Wilson",
			Subject:     "History",
			ImageURL:    "https://images.unsplash.com/photo-1522202176988-66273c2fd55f",
			Description: "Makes history come alive through engaging storytelling and discussions.",
		},
	}
}

func (s *Storage) ListTeachers() ([]entity.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Teacher, 0, len(s.teachers))
	// Insertion order == id order for this backend.
	for id := 1; id < s.nextTeacherID; id++ {
		if t, ok := s.teachers[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Storage) GetTeacher(id int) (*entity.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teachers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (s *Storage) CreateTeacher(f repository.TeacherFields) (*entity.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := entity.Teacher{
		ID:          s.nextTeacherID,
		Name:        f.Name,
		Subject:     f.Subject,
		ImageURL:    f.ImageURL,
		Description: f.Description,
	}
	s.nextTeacherID++
	s.teachers[t.ID] = t
	return &t, nil
}

func (s *Storage) UpdateTeacher(id int, f repository.TeacherFields) (*entity.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teachers[id]; !ok {
		return nil, repository.ErrNotFound
	}
	t := entity.Teacher{
		ID:          id,
		Name:        f.Name,
		Subject:     f.Subject,
		ImageURL:    f.ImageURL,
		Description: f.Description,
	}
	s.teachers[id] = t
	return &t, nil
}

func (s *Storage) CreateReview(f repository.ReviewFields) (*entity.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := entity.Review{
		ID:        s.nextReviewID,
		TeacherID: f.TeacherID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		Approved:  false,
	}
	s.nextReviewID++
	s.reviews[r.ID] = r
	return &r, nil
}

func (s *Storage) ReviewsForTeacher(teacherID int) ([]entity.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Review, 0)
	for id := 1; id < s.nextReviewID; id++ {
		r, ok := s.reviews[id]
		if ok && r.TeacherID == teacherID && r.Approved {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Storage) PendingReviews() ([]entity.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Review, 0)
	for id := 1; id < s.nextReviewID; id++ {
		r, ok := s.reviews[id]
		if ok && !r.Approved {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Storage) ApproveReview(id int) (*entity.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.Approved = true
	s.reviews[id] = r
	return &r, nil
}

var _ repository.Storage = (*Storage)(nil)
