package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cybercorner/internal/model"
	repoMocks "cybercorner/internal/repository/mocks"
)

func TestNoticeService(t *testing.T) {
	ctx := context.Background()

	t.Run("list passes through newest first", func(t *testing.T) {
		repo := new(repoMocks.MockNoticeRepository)
		svc := NewNoticeService(repo)

		now := time.Now()
		repo.On("List", mock.Anything).Return([]model.Notice{
			{ID: 2, Title: "b", CreatedAt: now},
			{ID: 1, Title: "a", CreatedAt: now.Add(-time.Hour)},
		}, nil).Once()

		items, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(2), items[0].ID)
	})

	t.Run("create", func(t *testing.T) {
		repo := new(repoMocks.MockNoticeRepository)
		svc := NewNoticeService(repo)

		repo.On("Create", mock.Anything, "Title", "Body").
			Return(&model.Notice{ID: 1, Title: "Title", Message: "Body"}, nil).Once()

		n, err := svc.Create(ctx, "Title", "Body")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n.ID)
		repo.AssertExpectations(t)
	})

	t.Run("delete", func(t *testing.T) {
		repo := new(repoMocks.MockNoticeRepository)
		svc := NewNoticeService(repo)

		repo.On("Delete", mock.Anything, int64(9)).Return(nil).Once()
		assert.NoError(t, svc.Delete(ctx, 9))
	})
}
