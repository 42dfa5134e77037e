package service

import (
	"context"
	"testing"

	"github.com/ekozlova/shareit/internal/models"
	"github.com/ekozlova/shareit/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRequestSvc(requestRepo *mockRequestRepo, itemRepo *mockItemRepo, userRepo *mockUserRepo) RequestService {
	return NewRequestService(requestRepo, itemRepo, userRepo)
}

func TestCreateRequest_SetsRequestorAndCreated(t *testing.T) {
	var created *models.ItemRequest
	requestRepo := &mockRequestRepo{
		createFn: func(ctx context.Context, request *models.ItemRequest) error {
			request.ID = 1
			created = request
			return nil
		},
	}
	svc := newRequestSvc(requestRepo, &mockItemRepo{}, &mockUserRepo{})

	request, err := svc.Create(context.Background(), 2, "need a drill")

	require.NoError(t, err)
	assert.Equal(t, uint(1), request.ID)
	assert.Equal(t, uint(2), created.RequestorID)
	assert.False(t, created.Created.IsZero())
}

func TestCreateRequest_UnknownUser(t *testing.T) {
	userRepo := &mockUserRepo{
		existsByIDFn: func(ctx context.Context, id uint) (bool, error) { return false, nil },
	}
	svc := newRequestSvc(&mockRequestRepo{}, &mockItemRepo{}, userRepo)

	_, err := svc.Create(context.Background(), 99, "need a drill")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestReadRequests_JoinsAnsweringItems(t *testing.T) {
	reqID := uint(1)
	otherID := uint(2)
	requestRepo := &mockRequestRepo{
		findByRequestorFn: func(ctx context.Context, requestorID uint) ([]models.ItemRequest, error) {
			return []models.ItemRequest{{ID: reqID, Description: "need a drill", RequestorID: requestorID}}, nil
		},
	}
	itemRepo := &mockItemRepo{
		findByRequestIDsFn: func(ctx context.Context, requestIDs []uint) ([]models.Item, error) {
			assert.Equal(t, []uint{reqID}, requestIDs)
			available := true
			return []models.Item{
				{ID: 5, Name: "drill", Available: &available, OwnerID: 10, RequestID: &reqID},
				{ID: 6, Name: "other", Available: &available, OwnerID: 10, RequestID: &otherID},
			}, nil
		},
	}
	svc := newRequestSvc(requestRepo, itemRepo, &mockUserRepo{})

	details, err := svc.Read(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Len(t, details[0].Items, 1)
	assert.Equal(t, uint(5), details[0].Items[0].ID)
}

func TestReadOneRequest_NotFound(t *testing.T) {
	requestRepo := &mockRequestRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.ItemRequest, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newRequestSvc(requestRepo, &mockItemRepo{}, &mockUserRepo{})

	_, err := svc.ReadOne(context.Background(), 2, 99)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestReadAllRequests_ExcludesActor(t *testing.T) {
	requestRepo := &mockRequestRepo{
		findAllExceptFn: func(ctx context.Context, requestorID uint, page repository.Page) ([]models.ItemRequest, error) {
			assert.Equal(t, uint(2), requestorID)
			assert.Equal(t, repository.Page{Limit: 10, Offset: 0}, page)
			return []models.ItemRequest{{ID: 3, Description: "need a ladder", RequestorID: 7}}, nil
		},
	}
	svc := newRequestSvc(requestRepo, &mockItemRepo{}, &mockUserRepo{})

	details, err := svc.ReadAll(context.Background(), 2, 0, 10)

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, uint(7), details[0].Request.RequestorID)
}
