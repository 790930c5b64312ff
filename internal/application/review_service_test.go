package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/spszl/teacher-reviews/internal/domain/repository"
	"github.com/spszl/teacher-reviews/internal/infrastructure/memory"
)

func newReviewService(t *testing.T) (*ReviewService, *memory.Storage) {
	t.Helper()
	store := memory.New()
	return NewReviewService(store, store, nil), store
}

func TestSubmitForcesPending(t *testing.T) {
	svc, store := newReviewService(t)
	teacher, err := store.CreateTeacher(repo.TeacherFields{Name: "A", Subject: "Math", ImageURL: "u", Description: "d"})
	require.NoError(t, err)

	r, err := svc.Submit(repo.ReviewFields{TeacherID: teacher.ID, Rating: 4, Comment: "Great teacher, very helpful."})
	require.NoError(t, err)
	assert.False(t, r.Approved)
}

func TestSubmitRejectsUnknownTeacher(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.Submit(repo.ReviewFields{TeacherID: 42, Rating: 4, Comment: "Great teacher, very helpful."})
	assert.ErrorIs(t, err, ErrTeacherNotFound)

	pending, err := svc.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestPendingReviewsAreNotPubliclyVisible(t *testing.T) {
	svc, store := newReviewService(t)
	teacher, err := store.CreateTeacher(repo.TeacherFields{Name: "A", Subject: "Math", ImageURL: "u", Description: "d"})
	require.NoError(t, err)

	r, err := svc.Submit(repo.ReviewFields{TeacherID: teacher.ID, Rating: 4, Comment: "Great teacher, very helpful."})
	require.NoError(t, err)

	visible, err := svc.ApprovedForTeacher(teacher.ID)
	require.NoError(t, err)
	assert.Empty(t, visible)

	_, err = svc.Approve(r.ID)
	require.NoError(t, err)

	visible, err = svc.ApprovedForTeacher(teacher.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, r.ID, visible[0].ID)
	assert.True(t, visible[0].Approved)
}

func TestApproveUnknownReview(t *testing.T) {
	svc, _ := newReviewService(t)
	_, err := svc.Approve(7)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestApproveTwiceKeepsClassification(t *testing.T) {
	svc, store := newReviewService(t)
	teacher, err := store.CreateTeacher(repo.TeacherFields{Name: "A", Subject: "Math", ImageURL: "u", Description: "d"})
	require.NoError(t, err)
	r, err := svc.Submit(repo.ReviewFields{TeacherID: teacher.ID, Rating: 4, Comment: "Great teacher, very helpful."})
	require.NoError(t, err)

	_, err = svc.Approve(r.ID)
	require.NoError(t, err)
	again, err := svc.Approve(r.ID)
	require.NoError(t, err)
	assert.True(t, again.Approved)

	visible, err := svc.ApprovedForTeacher(teacher.ID)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
	pending, err := svc.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)
}
