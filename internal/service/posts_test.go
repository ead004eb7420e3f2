package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"newswire/internal/adapter/out/storage"
	"newswire/internal/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validCreateRequest() CreatePostRequest {
	return CreatePostRequest{
		Title:    "Storm Warning",
		Summary:  "Heavy rain expected",
		Content:  "Rain forecast for the coast.\nStay indoors.",
		Category: "Weather",
		ImageURL: "https://x/y.jpg",
	}
}

func TestPostService_CreatePost_ValidationNamesEachField(t *testing.T) {
	t.Parallel()

	// wire names in declaration order
	fields := []string{"title", "summary", "content", "category", "imageUrl"}

	for _, field := range fields {
		field := field
		t.Run(field, func(t *testing.T) {
			t.Parallel()

			req := validCreateRequest()
			switch field {
			case "title":
				req.Title = ""
			case "summary":
				req.Summary = ""
			case "content":
				req.Content = ""
			case "category":
				req.Category = ""
			case "imageUrl":
				req.ImageURL = ""
			}

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := NewMockPostStorage(ctrl)

			svc := NewPostService(m)
			_, err := svc.CreatePost(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidRequest)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, field, vErr.Field)
			require.NotEmpty(t, vErr.Message)
		})
	}
}

func TestPostService_CreatePost_FirstViolatedFieldWins(t *testing.T) {
	t.Parallel()

	req := validCreateRequest()
	req.Title = ""
	req.Category = ""

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := NewMockPostStorage(ctrl)

	svc := NewPostService(m)
	_, err := svc.CreatePost(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "title", vErr.Field)
}

func TestPostService_CreatePost(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name    string
		req     CreatePostRequest
		setup   func(m *MockPostStorage)
		wantErr error
	}{
		{
			name:    "validation error",
			req:     CreatePostRequest{},
			setup:   func(_ *MockPostStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "storage error",
			req:  validCreateRequest(),
			setup: func(m *MockPostStorage) {
				m.EXPECT().
					CreatePost(gomock.Any(), model.Post{
						Title:    "Storm Warning",
						Summary:  "Heavy rain expected",
						Content:  "Rain forecast for the coast.\nStay indoors.",
						Category: "Weather",
						ImageURL: "https://x/y.jpg",
					}).
					Return(model.Post{}, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
		{
			name: "success",
			req:  validCreateRequest(),
			setup: func(m *MockPostStorage) {
				m.EXPECT().
					CreatePost(gomock.Any(), model.Post{
						Title:    "Storm Warning",
						Summary:  "Heavy rain expected",
						Content:  "Rain forecast for the coast.\nStay indoors.",
						Category: "Weather",
						ImageURL: "https://x/y.jpg",
					}).
					Return(model.Post{
						ID:        1,
						Title:     "Storm Warning",
						Summary:   "Heavy rain expected",
						Content:   "Rain forecast for the coast.\nStay indoors.",
						Category:  "Weather",
						ImageURL:  "https://x/y.jpg",
						CreatedAt: now,
					}, nil)
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := NewMockPostStorage(ctrl)
			tt.setup(m)

			svc := NewPostService(m)
			got, err := svc.CreatePost(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidRequest) {
					require.ErrorIs(t, err, ErrInvalidRequest)
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, int64(1), got.ID)
			require.WithinDuration(t, now, got.CreatedAt, time.Second)
		})
	}
}

func TestPostService_GetPostByID(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name    string
		postID  int64
		setup   func(m *MockPostStorage)
		wantErr error
	}{
		{
			name:    "non-positive id is not found",
			postID:  0,
			setup:   func(_ *MockPostStorage) {},
			wantErr: ErrNotFound,
		},
		{
			name:   "absent row",
			postID: 9999,
			setup: func(m *MockPostStorage) {
				m.EXPECT().
					GetPostByID(gomock.Any(), int64(9999)).
					Return(model.Post{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name:   "success",
			postID: 5,
			setup: func(m *MockPostStorage) {
				m.EXPECT().
					GetPostByID(gomock.Any(), int64(5)).
					Return(model.Post{ID: 5, Title: "a", Content: "b", CreatedAt: now}, nil)
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := NewMockPostStorage(ctrl)
			tt.setup(m)

			svc := NewPostService(m)
			got, err := svc.GetPostByID(context.Background(), tt.postID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.postID, got.ID)
			require.WithinDuration(t, now, got.CreatedAt, time.Second)
		})
	}
}

func TestPostService_ListPosts(t *testing.T) {
	t.Parallel()

	filter := storage.ListPostsFilter{Category: "Weather", Search: "storm"}
	posts := []model.Post{
		{ID: 1, Title: "Storm Warning", Category: "Weather"},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := NewMockPostStorage(ctrl)
	m.EXPECT().
		ListPosts(gomock.Any(), filter).
		Return(posts, nil)

	svc := NewPostService(m)
	got, err := svc.ListPosts(context.Background(), filter)
	require.NoError(t, err)
	require.Equal(t, posts, got)
}

func TestPostService_ListPosts_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := NewMockPostStorage(ctrl)
	m.EXPECT().
		ListPosts(gomock.Any(), storage.ListPostsFilter{}).
		Return(nil, errors.New("db fail"))

	svc := NewPostService(m)
	_, err := svc.ListPosts(context.Background(), storage.ListPostsFilter{})
	require.Error(t, err)
}
