package repository

import (
	"errors"

	"github.com/spszl/teacher-reviews/internal/domain/entity"
)

// ErrNotFound is returned by any repository operation that references an
// entity id not present in the store. Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")

// TeacherFields carries the mutable fields of a teacher profile; the id is
// owned by the repository.
type TeacherFields struct {
	Name        string
	Subject     string
	ImageURL    string
	Description string
}

// TeacherRepository defines storage operations for teacher profiles.
// Implementations must assign ids from a strictly increasing counter and
// apply each mutation atomically.
type TeacherRepository interface {
	ListTeachers() ([]entity.Teacher, error)
	GetTeacher(id int) (*entity.Teacher, error)
	CreateTeacher(f TeacherFields) (*entity.Teacher, error)
	// UpdateTeacher replaces all mutable fields of an existing teacher,
	// preserving the id. Returns ErrNotFound if the id does not exist.
	UpdateTeacher(id int, f TeacherFields) (*entity.Teacher, error)
}
