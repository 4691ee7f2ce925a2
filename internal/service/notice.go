package service

import (
	"context"

	"cybercorner/internal/model"
	"cybercorner/internal/repository"
)

// NoticeService implements the public announcement use cases. Notices are
// write-once: created, listed, deleted, never edited.
type NoticeService interface {
	List(ctx context.Context) ([]model.Notice, error)
	Create(ctx context.Context, title, message string) (*model.Notice, error)
	Delete(ctx context.Context, id int64) error
}

type noticeService struct {
	repo repository.NoticeRepository
}

func NewNoticeService(repo repository.NoticeRepository) NoticeService {
	return &noticeService{repo: repo}
}

func (s *noticeService) List(ctx context.Context) ([]model.Notice, error) {
	return s.repo.List(ctx)
}

func (s *noticeService) Create(ctx context.Context, title, message string) (*model.Notice, error) {
	return s.repo.Create(ctx, title, message)
}

func (s *noticeService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
