package blogpost

import (
	"time"

	"blogapp-be/internal/entity"
)

type CreateBlogPostRequest struct {
	Title         string `json:"title" validate:"required,min=3,max=256"`
	Category      string `json:"category" validate:"required"`
	Content       string `json:"content" validate:"required"`
	ReadTimeValue int    `json:"readTimeValue" validate:"omitempty,min=1"`
	ReadTimeUnit  string `json:"readTimeUnit" validate:"omitempty"`
}

type UpdateBlogPostRequest struct {
	Title    string `json:"title" validate:"omitempty,min=3,max=256"`
	Category string `json:"category" validate:"omitempty"`
	Content  string `json:"content" validate:"omitempty"`
	Cover    string `json:"cover" validate:"omitempty,url"`
}

type CreateCommentRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=128"`
	Email   string `json:"email" validate:"required,email"`
	Content string `json:"content" validate:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type ReadTimeResponse struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type BlogPostResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Category    string            `json:"category"`
	Cover       string            `json:"cover,omitempty"`
	Content     string            `json:"content"`
	Author      string            `json:"author"`
	AuthorEmail string            `json:"authorEmail"`
	ReadTime    ReadTimeResponse  `json:"readTime"`
	Comments    []CommentResponse `json:"comments"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func NewCommentResponse(comment entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID.Hex(),
		Name:      comment.Name,
		Email:     comment.Email,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

func NewCommentListResponse(comments []entity.Comment) []CommentResponse {
	res := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		res = append(res, NewCommentResponse(c))
	}
	return res
}

func NewBlogPostResponse(post entity.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:          post.ID.Hex(),
		Title:       post.Title,
		Category:    post.Category,
		Cover:       post.Cover,
		Content:     post.Content,
		Author:      post.Author,
		AuthorEmail: post.AuthorEmail,
		ReadTime: ReadTimeResponse{
			Value: post.ReadTime.Value,
			Unit:  post.ReadTime.Unit,
		},
		Comments:  NewCommentListResponse(post.Comments),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func NewBlogPostListResponse(posts []entity.BlogPost) []BlogPostResponse {
	res := make([]BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		res = append(res, NewBlogPostResponse(p))
	}
	return res
}
