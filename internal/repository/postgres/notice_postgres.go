package postgres

import (
	"context"
	"database/sql"

	"cybercorner/internal/model"
	"cybercorner/internal/repository"
)

// NoticePostgres is the PostgreSQL implementation of repository.NoticeRepository.
type NoticePostgres struct {
	db *sql.DB
}

func NewNoticePostgres(db *sql.DB) *NoticePostgres {
	return &NoticePostgres{db: db}
}

var _ repository.NoticeRepository = (*NoticePostgres)(nil)

const noticeColumns = "id, title, message, created_at"

func (r *NoticePostgres) List(ctx context.Context) ([]model.Notice, error) {
	const q = `
		SELECT ` + noticeColumns + `
		FROM notices
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Notice, 0)
	for rows.Next() {
		var n model.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *NoticePostgres) Create(ctx context.Context, title, message string) (*model.Notice, error) {
	const q = `
		INSERT INTO notices (title, message)
		VALUES ($1, $2)
		RETURNING ` + noticeColumns
	var n model.Notice
	if err := r.db.QueryRowContext(ctx, q, title, message).Scan(&n.ID, &n.Title, &n.Message, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NoticePostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM notices WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
