package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spszl/teacher-reviews/internal/domain/entity"
	"github.com/spszl/teacher-reviews/internal/domain/repository"
)

// Storage backs the store contract with postgres. Ids come from serial
// columns, so the strictly-increasing assignment holds across restarts.
type Storage struct {
	pool *pgxpool.Pool
}

func NewStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func (s *Storage) ListTeachers() ([]entity.Teacher, error) {
	ctx := context.Background()
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, subject, image_url, description
		FROM teachers
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Teacher, 0)
	for rows.Next() {
		var t entity.Teacher
		if err := rows.Scan(&t.ID, &t.Name, &t.Subject, &t.ImageURL, &t.Description); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Storage) GetTeacher(id int) (*entity.Teacher, error) {
	ctx := context.Background()
	t := &entity.Teacher{}

	row := s.pool.QueryRow(ctx, `
		SELECT id, name, subject, image_url, description
		FROM teachers
		WHERE id = $1
	`, id)

	if err := row.Scan(&t.ID, &t.Name, &t.Subject, &t.ImageURL, &t.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Storage) CreateTeacher(f repository.TeacherFields) (*entity.Teacher, error) {
	ctx := context.Background()
	t := &entity.Teacher{
		Name:        f.Name,
		Subject:     f.Subject,
		ImageURL:    f.ImageURL,
		Description: f.Description,
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO teachers (name, subject, image_url, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, f.Name, f.Subject, f.ImageURL, f.Description)

	if err := row.Scan(&t.ID); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Storage) UpdateTeacher(id int, f repository.TeacherFields) (*entity.Teacher, error) {
	ctx := context.Background()

	res, err := s.pool.Exec(ctx, `
		UPDATE teachers
		SET name = $1, subject = $2, image_url = $3, description = $4
		WHERE id = $5
	`, f.Name, f.Subject, f.ImageURL, f.Description, id)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}

	return &entity.Teacher{
		ID:          id,
		Name:        f.Name,
		Subject:     f.Subject,
		ImageURL:    f.ImageURL,
		Description: f.Description,
	}, nil
}

func (s *Storage) CreateReview(f repository.ReviewFields) (*entity.Review, error) {
	ctx := context.Background()
	r := &entity.Review{
		TeacherID: f.TeacherID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		Approved:  false,
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO reviews (teacher_id, rating, comment, approved)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id
	`, f.TeacherID, f.Rating, f.Comment)

	if err := row.Scan(&r.ID); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Storage) ReviewsForTeacher(teacherID int) ([]entity.Review, error) {
	return s.listReviews(`
		SELECT id, teacher_id, rating, comment, approved
		FROM reviews
		WHERE teacher_id = $1 AND approved
		ORDER BY id
	`, teacherID)
}

func (s *Storage) PendingReviews() ([]entity.Review, error) {
	return s.listReviews(`
		SELECT id, teacher_id, rating, comment, approved
		FROM reviews
		WHERE NOT approved
		ORDER BY id
	`)
}

func (s *Storage) listReviews(query string, args ...any) ([]entity.Review, error) {
	ctx := context.Background()
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Review, 0)
	for rows.Next() {
		var r entity.Review
		if err := rows.Scan(&r.ID, &r.TeacherID, &r.Rating, &r.Comment, &r.Approved); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Storage) ApproveReview(id int) (*entity.Review, error) {
	ctx := context.Background()
	r := &entity.Review{}

	row := s.pool.QueryRow(ctx, `
		UPDATE reviews
		SET approved = TRUE
		WHERE id = $1
		RETURNING id, teacher_id, rating, comment, approved
	`, id)

	if err := row.Scan(&r.ID, &r.TeacherID, &r.Rating, &r.Comment, &r.Approved); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

var _ repository.Storage = (*Storage)(nil)
