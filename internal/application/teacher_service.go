package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/spszl/teacher-reviews/internal/domain/entity"
	repo "github.com/spszl/teacher-reviews/internal/domain/repository"
)

var (
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrReviewNotFound  = errors.New("review not found")
)

// TeacherService exposes the teacher profile operations. Profiles are never
// deleted; updates replace all mutable fields while preserving the id.
type TeacherService struct {
	Repo   repo.TeacherRepository
	Logger *logrus.Logger
}

func NewTeacherService(r repo.TeacherRepository, logger *logrus.Logger) *TeacherService {
	return &TeacherService{Repo: r, Logger: logger}
}

func (s *TeacherService) List() ([]entity.Teacher, error) {
	return s.Repo.ListTeachers()
}

func (s *TeacherService) Get(id int) (*entity.Teacher, error) {
	t, err := s.Repo.GetTeacher(id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrTeacherNotFound
	}
	return t, err
}

func (s *TeacherService) Create(f repo.TeacherFields) (*entity.Teacher, error) {
	t, err := s.Repo.CreateTeacher(f)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"teacher_id": t.ID, "name": t.Name}).Info("teacher created")
	}
	return t, nil
}

func (s *TeacherService) Update(id int, f repo.TeacherFields) (*entity.Teacher, error) {
	t, err := s.Repo.UpdateTeacher(id, f)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrTeacherNotFound
	}
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("teacher_id", id).Info("teacher updated")
	}
	return t, nil
}
