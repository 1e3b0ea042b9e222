package blogpost

import "blogapp-be/pkg/response"

var (
	ErrPostNotFound    = response.NewError(404, "blog post not found")
	ErrCommentNotFound = response.NewError(404, "comment not found")
	ErrNoFileUploaded  = response.NewError(400, "no file uploaded")
	ErrInvalidFileType = response.NewError(400, "invalid file type")
	ErrInvalidPostData = response.NewError(400, "invalid blog post data")
	ErrCreatePost      = response.NewError(500, "failed to create blog post")
	ErrUpdatePost      = response.NewError(500, "failed to update blog post")
	ErrDeletePost      = response.NewError(500, "failed to delete blog post")
	ErrFailedToUpload  = response.NewError(500, "failed to upload file")
)
