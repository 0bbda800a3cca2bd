package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrAuthenticationFailed = ErrorResponse{
		Status: "error",
		Error:  "authentication_failed",
	}

	ErrNotFound = ErrorResponse{
		Status:  "error",
		Error:   "not_found",
		Details: "Record not found",
	}

	ErrSlugTaken = ErrorResponse{
		Status:  "error",
		Error:   "slug_taken",
		Details: "Slug already in use",
	}

	ErrProtectedCategory = ErrorResponse{
		Status:  "error",
		Error:   "protected_category",
		Details: "The uncategorized category cannot be renamed or deleted",
	}

	ErrLastSuperadmin = ErrorResponse{
		Status:  "error",
		Error:   "last_superadmin",
		Details: "At least one superadmin must remain",
	}

	ErrUserAlreadyExists = ErrorResponse{
		Status:  "error",
		Error:   "user_already_exists",
		Details: "User with this email already exists",
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: "Internal server error",
	}
)
