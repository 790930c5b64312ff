package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spszl/teacher-reviews/internal/domain/repository"
)

func TestTeacherIDsAreMonotonic(t *testing.T) {
	s := New()
	a, err := s.CreateTeacher(repository.TeacherFields{Name: "A", Subject: "Math", ImageURL: "u", Description: "d"})
	require.NoError(t, err)
	b, err := s.CreateTeacher(repository.TeacherFields{Name: "B", Subject: "Physics", ImageURL: "u", Description: "d"})
	require.NoError(t, err)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	s := New()
	created, err := s.CreateTeacher(repository.TeacherFields{Name: "A", Subject: "Math", ImageURL: "u", Description: "d"})
	require.NoError(t, err)

	got, err := s.GetTeacher(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetTeacherNotFound(t *testing.T) {
	s := New()
	_, err := s.GetTeacher(42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateTeacherPreservesID(t *testing.T) {
	s := New()
	created, err := s.CreateTeacher(repository.TeacherFields{Name: "A", Subject: "Math", ImageURL: "u", Description: "d"})
	require.NoError(t, err)

	updated, err := s.UpdateTeacher(created.ID, repository.TeacherFields{Name: "B", Subject: "Physics", ImageURL: "v", Description: "e"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "B", updated.Name)

	got, err := s.GetTeacher(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateTeacherNotFoundLeavesSetUnchanged(t *testing.T) {
	s := NewSeeded()
	before, err := s.ListTeachers()
	require.NoError(t, err)

	_, err = s.UpdateTeacher(999, repository.TeacherFields{Name: "X", Subject: "Y", ImageURL: "u", Description: "d"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	after, err := s.ListTeachers()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSeededStorageHasDefaultTeachers(t *testing.T) {
	s := NewSeeded()
	teachers, err := s.ListTeachers()
	require.NoError(t, err)
	require.Len(t, teachers, 4)
	assert.Equal(t, 1, teachers[0].ID)
	assert.Equal(t, "Jaromír Mazal", teachers[0].Name)
}

func TestCreateReviewStartsPending(t *testing.T) {
	s := New()
	r, err := s.CreateReview(repository.ReviewFields{TeacherID: 1, Rating: 4, Comment: "Great teacher, very helpful."})
	require.NoError(t, err)
	assert.Equal(t, 1, r.ID)
	assert.False(t, r.Approved)
}

func TestReviewQueriesPartitionByApproval(t *testing.T) {
	s := New()
	r1, err := s.CreateReview(repository.ReviewFields{TeacherID: 1, Rating: 4, Comment: "Great teacher, very helpful."})
	require.NoError(t, err)
	r2, err := s.CreateReview(repository.ReviewFields{TeacherID: 1, Rating: 5, Comment: "Explains everything clearly."})
	require.NoError(t, err)
	_, err = s.CreateReview(repository.ReviewFields{TeacherID: 2, Rating: 3, Comment: "Homework load is heavy."})
	require.NoError(t, err)

	_, err = s.ApproveReview(r1.ID)
	require.NoError(t, err)

	approved, err := s.ReviewsForTeacher(1)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, r1.ID, approved[0].ID)
	for _, r := range approved {
		assert.True(t, r.Approved)
	}

	pending, err := s.PendingReviews()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, r := range pending {
		assert.False(t, r.Approved)
	}
	assert.Equal(t, r2.ID, pending[0].ID)
}

func TestApproveReviewNotFoundLeavesPendingUnchanged(t *testing.T) {
	s := New()
	_, err := s.CreateReview(repository.ReviewFields{TeacherID: 1, Rating: 4, Comment: "Great teacher, very helpful."})
	require.NoError(t, err)

	_, err = s.ApproveReview(999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	pending, err := s.PendingReviews()
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestApproveReviewIsIdempotent(t *testing.T) {
	s := New()
	r, err := s.CreateReview(repository.ReviewFields{TeacherID: 1, Rating: 4, Comment: "Great teacher, very helpful."})
	require.NoError(t, err)

	first, err := s.ApproveReview(r.ID)
	require.NoError(t, err)
	second, err := s.ApproveReview(r.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	approved, err := s.ReviewsForTeacher(1)
	require.NoError(t, err)
	assert.Len(t, approved, 1)
	pending, err := s.PendingReviews()
	require.NoError(t, err)
	assert.Empty(t, pending)
}
