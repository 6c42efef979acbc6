// Forum HTTP handlers.
//
//   - GET    /forum/posts                           (list, newest first, paginated)
//   - POST   /forum/posts                           (create)
//   - GET    /forum/posts/{id}                      (post with comments)
//   - DELETE /forum/posts/{id}                      (author or admin)
//   - POST   /forum/posts/{id}/comments             (comment)
//   - DELETE /forum/posts/{id}/comments/{commentId} (author or admin)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreatePostRequest is the payload for a new forum post.
type CreatePostRequest struct {
	Title   string `json:"title" example:"Tips for sleeping better?"`
	Content string `json:"content" example:"I keep waking up at 3am."`
}

// CommentRequest is the payload for a new comment.
type CommentRequest struct {
	Content string `json:"content" example:"Try a fixed bedtime."`
}

// PostSummary is a list row: the post without its comments.
type PostSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	AuthorEmail  string `json:"authorEmail"`
	CreatedAt    string `json:"createdAt"`
	CommentCount int    `json:"commentCount"`
}

// ListPosts godoc
// @ID          listPosts
// @Summary     List forum posts (newest first, paginated)
// @Tags        Forum
// @Produce     json
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.Page[handlers.PostSummary]
// @Router      /forum/posts [get]
func (h *Handlers) ListPosts(c *gin.Context) {
	posts := h.Forum.List(c.Request.Context())
	rows := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, PostSummary{
			ID:           p.ID,
			Title:        p.Title,
			Content:      p.Content,
			AuthorEmail:  p.AuthorEmail,
			CreatedAt:    p.CreatedAt,
			CommentCount: p.CommentCount(),
		})
	}
	ok(c, http.StatusOK, paginate(c, rows))
}

// GetPost godoc
// @ID          getPost
// @Summary     A post with its comments
// @Tags        Forum
// @Produce     json
// @Param       id   path      string  true  "Post ID"
// @Success     200  {object}  domain.ForumPost
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /forum/posts/{id} [get]
func (h *Handlers) GetPost(c *gin.Context) {
	p, err := h.Forum.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// CreatePost godoc
// @ID          createPost
// @Summary     Create a forum post
// @Tags        Forum
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body      handlers.CreatePostRequest  true  "Post"
// @Success     201   {object}  domain.ForumPost
// @Failure     400   {object}  handlers.ErrorResponse
// @Failure     401   {object}  handlers.ErrorResponse
// @Router      /forum/posts [post]
func (h *Handlers) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	p, err := h.Forum.CreatePost(c.Request.Context(), actor(c), req.Title, req.Content)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, p)
}

// AddComment godoc
// @ID          addComment
// @Summary     Comment on a post
// @Tags        Forum
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id    path      string                   true  "Post ID"
// @Param       body  body      handlers.CommentRequest  true  "Comment"
// @Success     201   {object}  domain.ForumComment
// @Failure     400   {object}  handlers.ErrorResponse
// @Failure     404   {object}  handlers.ErrorResponse
// @Router      /forum/posts/{id}/comments [post]
func (h *Handlers) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	cm, err := h.Forum.AddComment(c.Request.Context(), actor(c), c.Param("id"), req.Content)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, cm)
}

// DeletePost godoc
// @ID          deletePost
// @Summary     Delete a post and its comments
// @Tags        Forum
// @Security    BearerAuth
// @Param       id  path  string  true  "Post ID"
// @Success     204
// @Failure     403  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /forum/posts/{id} [delete]
func (h *Handlers) DeletePost(c *gin.Context) {
	if err := h.Forum.DeletePost(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Tags        Forum
// @Security    BearerAuth
// @Param       id         path  string  true  "Post ID"
// @Param       commentId  path  string  true  "Comment ID"
// @Success     204
// @Failure     403  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /forum/posts/{id}/comments/{commentId} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	if err := h.Forum.DeleteComment(c.Request.Context(), actor(c), c.Param("id"), c.Param("commentId")); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}
