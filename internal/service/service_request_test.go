package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"mime/multipart"
	"net/textproto"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cybercorner/internal/model"
	"cybercorner/internal/repository"
	repoMocks "cybercorner/internal/repository/mocks"
	"cybercorner/internal/storage"
	"cybercorner/internal/upload"
)

func pdfFileHeader(t *testing.T, size int) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="documentFile"; filename="doc.pdf"`)
	h.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(int64(size) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["documentFile"][0]
}

func newRequestService(t *testing.T, repo repository.ServiceRequestRepository) (ServiceRequestService, storage.Storage) {
	t.Helper()
	store, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)
	return NewServiceRequestService(repo, upload.NewPipeline(store)), store
}

func TestServiceRequestCreate(t *testing.T) {
	ctx := context.Background()
	filePattern := regexp.MustCompile(`^documentFile-\d+-\d{1,10}\.pdf$`)

	t.Run("without document", func(t *testing.T) {
		repo := new(repoMocks.MockServiceRequestRepository)
		svc, _ := newRequestService(t, repo)

		expected := &model.ServiceRequest{ID: 1, Name: "Asha", Status: model.StatusPending, CreatedAt: time.Now()}
		repo.On("Create", mock.Anything, mock.MatchedBy(func(in repository.NewServiceRequest) bool {
			return in.Name == "Asha" && in.DocumentFile == nil
		})).Return(expected, nil).Once()

		got, err := svc.Create(ctx, CreateServiceRequestInput{Name: "Asha", Phone: "9999999999", ServiceType: "PAN Card"})

		require.NoError(t, err)
		assert.Equal(t, expected.ID, got.ID)
		repo.AssertExpectations(t)
	})

	t.Run("with document the file is stored first", func(t *testing.T) {
		repo := new(repoMocks.MockServiceRequestRepository)
		svc, store := newRequestService(t, repo)

		var storedName string
		repo.On("Create", mock.Anything, mock.MatchedBy(func(in repository.NewServiceRequest) bool {
			if in.DocumentFile == nil || !filePattern.MatchString(*in.DocumentFile) {
				return false
			}
			storedName = *in.DocumentFile
			// The file must already exist when the row is inserted.
			rc, err := store.Open(context.Background(), *in.DocumentFile)
			if err != nil {
				return false
			}
			rc.Close()
			return true
		})).Return(&model.ServiceRequest{ID: 2, Status: model.StatusPending}, nil).Once()

		_, err := svc.Create(ctx, CreateServiceRequestInput{
			Name: "Asha", Phone: "9999999999", ServiceType: "PAN Card",
			Document: pdfFileHeader(t, 100<<10),
		})

		require.NoError(t, err)
		assert.NotEmpty(t, storedName)
		repo.AssertExpectations(t)
	})

	t.Run("oversized document rejected before any insert", func(t *testing.T) {
		repo := new(repoMocks.MockServiceRequestRepository)
		svc, _ := newRequestService(t, repo)

		_, err := svc.Create(ctx, CreateServiceRequestInput{
			Name: "Asha", Phone: "9", ServiceType: "PAN Card",
			Document: pdfFileHeader(t, upload.MaxFileSize+1),
		})

		assert.ErrorIs(t, err, upload.ErrTooLarge)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("db failure rolls the stored file back", func(t *testing.T) {
		repo := new(repoMocks.MockServiceRequestRepository)
		svc, store := newRequestService(t, repo)

		var storedName string
		repo.On("Create", mock.Anything, mock.MatchedBy(func(in repository.NewServiceRequest) bool {
			if in.DocumentFile != nil {
				storedName = *in.DocumentFile
			}
			return true
		})).Return(nil, errors.New("insert failed")).Once()

		_, err := svc.Create(ctx, CreateServiceRequestInput{
			Name: "Asha", Phone: "9", ServiceType: "PAN Card",
			Document: pdfFileHeader(t, 10),
		})

		require.Error(t, err)
		require.NotEmpty(t, storedName)
		_, openErr := store.Open(ctx, storedName)
		assert.ErrorIs(t, openErr, storage.ErrNotFound)
	})
}

func TestServiceRequestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("valid transition", func(t *testing.T) {
		repo := new(repoMocks.MockServiceRequestRepository)
		svc, _ := newRequestService(t, repo)

		updated := &model.ServiceRequest{ID: 1, Status: model.StatusCompleted}
		repo.On("UpdateStatus", mock.Anything, int64(1), model.StatusCompleted).Return(updated, nil).Once()

		got, err := svc.UpdateStatus(ctx, 1, model.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, got.Status)
	})

	t.Run("invalid status never reaches the repository", func(t *testing.T) {
		repo := new(repoMocks.MockServiceRequestRepository)
		svc, _ := newRequestService(t, repo)

		_, err := svc.UpdateStatus(ctx, 1, model.Status("Banana"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(repoMocks.MockServiceRequestRepository)
		svc, _ := newRequestService(t, repo)

		repo.On("UpdateStatus", mock.Anything, int64(99), model.StatusPending).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.UpdateStatus(ctx, 99, model.StatusPending)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceRequestDelete(t *testing.T) {
	repo := new(repoMocks.MockServiceRequestRepository)
	svc, _ := newRequestService(t, repo)

	repo.On("Delete", mock.Anything, int64(4)).Return(nil).Once()
	assert.NoError(t, svc.Delete(context.Background(), 4))
	repo.AssertExpectations(t)
}
