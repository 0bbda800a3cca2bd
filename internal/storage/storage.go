package storage

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrProtectedCategory  = errors.New("category is protected")
	ErrLastSuperadmin     = errors.New("at least one superadmin must remain")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrCommentNotApproved = errors.New("comment is awaiting moderation")
)

var (
	ErrFileTooLarge   = errors.New("file size exceeds limit")
	ErrBucketNotFound = errors.New("bucket not found")
	ErrObjectNotFound = errors.New("object not found")
)
