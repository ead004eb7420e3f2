package rest

import (
	"errors"
	"net/http"
	"strconv"

	"newswire/internal/adapter/out/storage"
	"newswire/internal/service"
	"newswire/pkg/api"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context(), storage.ListPostsFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPIPosts(posts))
}

func (h *Handler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// an unparseable id cannot match any row
		respondNotFound(c)
		return
	}

	post, err := h.posts.GetPostByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondNotFound(c)
			return
		}
		respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPIPost(post))
}

func (h *Handler) CreatePost(c *gin.Context) {
	var in api.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid request body"})
		return
	}

	post, err := h.posts.CreatePost(c.Request.Context(), service.CreatePostRequest{
		Title:    in.Title,
		Summary:  in.Summary,
		Content:  in.Content,
		Category: in.Category,
		ImageURL: in.ImageURL,
	})
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: vErr.Message, Field: vErr.Field})
		case errors.Is(err, service.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		default:
			respondInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, toAPIPost(post))
}
