package rest

import (
	"context"
	"strings"

	"newswire/internal/adapter/out/storage"
	"newswire/internal/model"
	"newswire/internal/service"
	"newswire/pkg/api"

	"github.com/gin-gonic/gin"
)

// PostService is the slice of the service layer the HTTP adapter needs.
type PostService interface {
	CreatePost(ctx context.Context, req service.CreatePostRequest) (model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	ListPosts(ctx context.Context, filter storage.ListPostsFilter) ([]model.Post, error)
}

type Handler struct {
	posts PostService
}

func NewHandler(posts PostService) *Handler {
	return &Handler{posts: posts}
}

// Register binds every contract endpoint to its handler. Routes come from the
// shared table, never from string literals.
func (h *Handler) Register(r gin.IRouter) {
	r.Handle(api.PostsList.Method, ginPattern(api.PostsList.Path), h.ListPosts)
	r.Handle(api.PostsGet.Method, ginPattern(api.PostsGet.Path), h.GetPost)
	r.Handle(api.PostsCreate.Method, ginPattern(api.PostsCreate.Path), h.CreatePost)
}

// ginPattern rewrites contract templates ("/api/posts/{id}") into gin route
// patterns ("/api/posts/:id").
func ginPattern(path string) string {
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			segs[i] = ":" + seg[1:len(seg)-1]
		}
	}
	return strings.Join(segs, "/")
}

func toAPIPost(p model.Post) api.Post {
	return api.Post{
		ID:        p.ID,
		Title:     p.Title,
		Summary:   p.Summary,
		Content:   p.Content,
		Category:  p.Category,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
	}
}

// toAPIPosts never returns nil so an empty listing serializes as [].
func toAPIPosts(posts []model.Post) []api.Post {
	out := make([]api.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, toAPIPost(p))
	}
	return out
}
