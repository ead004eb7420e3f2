package service

import (
	"context"

	"newswire/internal/adapter/out/storage"
	"newswire/internal/model"
)

//go:generate mockgen -source=posts.go -destination=./post_storage_mock.go -package=service newswire/internal/service PostStorage
type PostStorage interface {
	CreatePost(ctx context.Context, post model.Post) (model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	ListPosts(ctx context.Context, filter storage.ListPostsFilter) ([]model.Post, error)
}

type PostService struct {
	postStorage PostStorage
}

func NewPostService(postStorage PostStorage) *PostService {
	return &PostService{
		postStorage: postStorage,
	}
}

// CreatePost validates the input and persists a new post. The returned post
// carries the storage-assigned ID and CreatedAt.
func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (model.Post, error) {
	if err := validateCreateInput(req); err != nil {
		return model.Post{}, err
	}
	return s.postStorage.CreatePost(ctx, model.Post{
		Title:    req.Title,
		Summary:  req.Summary,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	})
}

func (s *PostService) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	if postID <= 0 {
		// ids start at 1, nothing to look up
		return model.Post{}, ErrNotFound
	}
	return s.postStorage.GetPostByID(ctx, postID)
}

func (s *PostService) ListPosts(ctx context.Context, filter storage.ListPostsFilter) ([]model.Post, error) {
	return s.postStorage.ListPosts(ctx, filter)
}
