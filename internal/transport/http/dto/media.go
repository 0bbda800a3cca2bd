package dto

type ListMediaQuery struct {
	// Bucket selects one configured bucket, or "all" for every bucket.
	Bucket string `query:"bucket" validate:"required"`
	Prefix string `query:"prefix"`
	Search string `query:"search"`
}

type UploadMediaRequest struct {
	Bucket string `form:"bucket" validate:"required"`
	Prefix string `form:"prefix"`
}

type DeleteMediaRequest struct {
	Bucket string `json:"bucket" validate:"required"`
	Key    string `json:"key" validate:"required"`
}

type CreateFolderRequest struct {
	Bucket string `json:"bucket" validate:"required"`
	Folder string `json:"folder" validate:"required"`
}
