package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/femwell/femwell-backend/internal/models"
)

func TestForumService_CreatePost_ForcesCountersToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockForumPostWriter(ctrl)
	writer.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.ForumPost) (*models.ForumPost, error) {
			assert.Equal(t, 0, p.Likes)
			assert.Equal(t, 0, p.Replies)
			p.ID = 5
			return &p, nil
		})

	svc := NewForumService(NewMockForumPostReader(ctrl), writer)

	// The caller tries to smuggle in nonzero counters.
	created, err := svc.CreatePost(context.Background(), models.ForumPost{
		Title:    "Test",
		Content:  "Body",
		Category: "General Discussion",
		Likes:    100,
		Replies:  50,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, 0, created.Likes)
	assert.Equal(t, 0, created.Replies)
}

func TestForumService_CreatePost_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockForumPostWriter(ctrl)
	writer.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("insert failed"))

	svc := NewForumService(NewMockForumPostReader(ctrl), writer)

	created, err := svc.CreatePost(context.Background(), models.ForumPost{Title: "Test"})
	assert.Nil(t, created)
	assert.EqualError(t, err, "insert failed")
}

func TestForumService_ListPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockForumPostReader(ctrl)
	reader.EXPECT().
		List(gomock.Any(), "Mental Health").
		Return([]models.ForumPost{{ID: 4, Category: "Mental Health"}}, nil)

	svc := NewForumService(reader, NewMockForumPostWriter(ctrl))

	posts, err := svc.ListPosts(context.Background(), "Mental Health")
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, int64(4), posts[0].ID)
}

func TestForumService_GetPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		mockSetup   func(reader *MockForumPostReader)
		expectedErr error
	}{
		{
			name: "success",
			mockSetup: func(reader *MockForumPostReader) {
				reader.EXPECT().
					GetByID(gomock.Any(), int64(3)).
					Return(&models.ForumPost{ID: 3}, nil)
			},
		},
		{
			name: "miss maps to not found",
			mockSetup: func(reader *MockForumPostReader) {
				reader.EXPECT().
					GetByID(gomock.Any(), int64(3)).
					Return(nil, nil)
			},
			expectedErr: ErrForumPostNotFound,
		},
		{
			name: "lookup failure is propagated",
			mockSetup: func(reader *MockForumPostReader) {
				reader.EXPECT().
					GetByID(gomock.Any(), int64(3)).
					Return(nil, errors.New("database failure"))
			},
			expectedErr: errors.New("database failure"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockForumPostReader(ctrl)
			tt.mockSetup(reader)

			svc := NewForumService(reader, NewMockForumPostWriter(ctrl))
			post, err := svc.GetPost(context.Background(), 3)

			if tt.expectedErr != nil {
				assert.Nil(t, post)
				assert.EqualError(t, err, tt.expectedErr.Error())
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(3), post.ID)
		})
	}
}
