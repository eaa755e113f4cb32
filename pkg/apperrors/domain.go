package apperrors

import (
	"net/http"
)

// --- Auth ---

var ErrTokenMissing = New(
	CodeTokenMissing,
	"auth",
	"Unauthorized: Token missing",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Unauthorized: Invalid token",
	http.StatusUnauthorized,
)

// ErrInvalidCredentials - одинаковый ответ для неизвестного email и неверного пароля
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusConflict,
)

var ErrMissingRegistrationFields = New(
	CodeBadRequest,
	"auth",
	"All fields are required",
	http.StatusBadRequest,
)

var ErrPasswordMismatch = New(
	CodeBadRequest,
	"auth",
	"Password and confirm password do not match",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"auth",
	"Account type must be employer or jobSeeker",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// --- Profile ---

var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

var ErrProfileUpdateForbidden = New(
	CodeForbidden,
	"profile",
	"Not authorized to update this profile",
	http.StatusForbidden,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrInvalidJobID = New(
	CodeBadRequest,
	"job",
	"Invalid job ID format",
	http.StatusBadRequest,
)

var ErrMissingJobFields = New(
	CodeBadRequest,
	"job",
	"Please fill all required fields",
	http.StatusBadRequest,
)

var ErrJobCreateForbidden = New(
	CodeForbidden,
	"job",
	"Not authorized to create jobs",
	http.StatusForbidden,
)

var ErrNotJobOwnerUpdate = New(
	CodeForbidden,
	"job",
	"Not authorized to update this job",
	http.StatusForbidden,
)

var ErrNotJobOwnerDelete = New(
	CodeForbidden,
	"job",
	"Not authorized to delete this job",
	http.StatusForbidden,
)

var ErrNotJobOwnerView = New(
	CodeForbidden,
	"job",
	"Not authorized to view applicants for this job",
	http.StatusForbidden,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrInvalidApplicationID = New(
	CodeBadRequest,
	"application",
	"Invalid application ID format",
	http.StatusBadRequest,
)

var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"Already applied to this job",
	http.StatusConflict,
)

var ErrResumeRequired = New(
	CodeBadRequest,
	"application",
	"Resume is required",
	http.StatusBadRequest,
)

var ErrResumeFileNotFound = New(
	CodeNotFound,
	"application",
	"Resume file not found",
	http.StatusNotFound,
)

var ErrApplyForbidden = New(
	CodeForbidden,
	"application",
	"Not authorized to apply for jobs",
	http.StatusForbidden,
)

var ErrResumeDownloadForbidden = New(
	CodeForbidden,
	"application",
	"Unauthorized to download this resume",
	http.StatusForbidden,
)

var ErrStatusUpdateForbidden = New(
	CodeForbidden,
	"application",
	"Not authorized to update this application",
	http.StatusForbidden,
)

var ErrInvalidApplicationStatus = New(
	CodeValidationFailed,
	"application",
	"Invalid application status",
	http.StatusBadRequest,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusBadRequest,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusBadRequest,
)
