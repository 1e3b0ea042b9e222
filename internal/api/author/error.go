package author

import "blogapp-be/pkg/response"

var (
	ErrAuthorNotFound    = response.NewError(404, "author not found")
	ErrEmailAlreadyInUse = response.NewError(409, "email already in use")
	ErrNoFileUploaded    = response.NewError(400, "no file uploaded")
	ErrInvalidFileType   = response.NewError(400, "invalid file type")
	ErrCreateAuthor      = response.NewError(500, "failed to create author")
	ErrUpdateAuthor      = response.NewError(500, "failed to update author")
	ErrDeleteAuthor      = response.NewError(500, "failed to delete author")
	ErrFailedToUpload    = response.NewError(500, "failed to upload file")
)
