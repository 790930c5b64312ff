package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/spszl/teacher-reviews/internal/domain/entity"
	repo "github.com/spszl/teacher-reviews/internal/domain/repository"
)

// ReviewService enforces the moderation rules over the review store:
// submissions always enter pending, pending reviews stay out of public
// reads, and only the approve transition makes them visible. There is no
// reject or delete path.
type ReviewService struct {
	Teachers repo.TeacherRepository
	Reviews  repo.ReviewRepository
	Logger   *logrus.Logger
}

func NewReviewService(teachers repo.TeacherRepository, reviews repo.ReviewRepository, logger *logrus.Logger) *ReviewService {
	return &ReviewService{Teachers: teachers, Reviews: reviews, Logger: logger}
}

// Submit stores a new pending review. The referenced teacher must exist;
// submissions against unknown teachers fail with ErrTeacherNotFound.
func (s *ReviewService) Submit(f repo.ReviewFields) (*entity.Review, error) {
	if _, err := s.Teachers.GetTeacher(f.TeacherID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	r, err := s.Reviews.CreateReview(f)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"review_id": r.ID, "teacher_id": r.TeacherID}).Info("review submitted")
	}
	return r, nil
}

// ApprovedForTeacher returns the publicly visible reviews for a teacher.
func (s *ReviewService) ApprovedForTeacher(teacherID int) ([]entity.Review, error) {
	return s.Reviews.ReviewsForTeacher(teacherID)
}

// Pending returns every review awaiting moderation, across all teachers.
func (s *ReviewService) Pending() ([]entity.Review, error) {
	return s.Reviews.PendingReviews()
}

// Approve makes a review publicly visible. Approving an already-approved
// review returns the record unchanged; an unknown id is ErrReviewNotFound.
func (s *ReviewService) Approve(id int) (*entity.Review, error) {
	r, err := s.Reviews.ApproveReview(id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("review_id", id).Info("review approved")
	}
	return r, nil
}
