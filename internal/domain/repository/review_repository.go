package repository

import "github.com/spszl/teacher-reviews/internal/domain/entity"

// ReviewFields carries the client-supplied fields of a review submission.
// The approved flag is deliberately absent: reviews are always created
// pending, whatever the client sends.
type ReviewFields struct {
	TeacherID int
	Rating    int
	Comment   string
}

// ReviewRepository defines storage operations for reviews and the
// moderation state they carry.
type ReviewRepository interface {
	// CreateReview stores a new review with Approved forced to false.
	CreateReview(f ReviewFields) (*entity.Review, error)
	// ReviewsForTeacher returns only approved reviews for the teacher;
	// pending reviews never appear here.
	ReviewsForTeacher(teacherID int) ([]entity.Review, error)
	// PendingReviews returns all pending reviews across teachers; approved
	// reviews never appear here.
	PendingReviews() ([]entity.Review, error)
	// ApproveReview flips a review to approved and returns the updated
	// record. Approving an already-approved review is a no-op returning the
	// record. Returns ErrNotFound if the id does not exist.
	ApproveReview(id int) (*entity.Review, error)
}

// Storage is the full capability surface of a backing store. Both the
// in-memory and the postgres backends satisfy it.
type Storage interface {
	TeacherRepository
	ReviewRepository
}
