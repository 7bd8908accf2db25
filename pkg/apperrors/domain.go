package apperrors

import (
	"net/http"
)

// =========================================================================
// Фабрики
// =========================================================================

func ErrNotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

func ErrAlreadyExists(domain, message string) *AppError {
	return New(CodeAlreadyExists, domain, message, http.StatusConflict)
}

func ErrForbidden(domain, message string) *AppError {
	return New(CodeForbidden, domain, message, http.StatusForbidden)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Auth ---

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserNotFound = ErrNotFound("user", "User not found")

// --- Bounty ---

var ErrBountyNotFound = ErrNotFound("bounty", "Bounty not found")

// ErrBountyNotAcceptingSubmissions - баунти не в стадии Active.
var ErrBountyNotAcceptingSubmissions = ErrInvalidStatus("bounty", "Bounty is not accepting submissions")

var ErrNotBountyOwner = ErrForbidden("bounty", "Only the bounty owner can perform this action")

var ErrOwnerCannotSubmit = ErrInvalidOperation("bounty", "Bounty owner cannot submit a fulfillment to their own bounty")

// --- Fulfillment ---

var ErrFulfillmentNotFound = ErrNotFound("fulfillment", "Submission not found")

// ErrFulfillmentNotAcceptable - стадия баунти не Active и не Expired.
var ErrFulfillmentNotAcceptable = ErrInvalidStatus("fulfillment", "Submissions can only be accepted while the bounty is active or expired")

var ErrAlreadyAccepted = ErrConflict(nil, "fulfillment", "Submission is already accepted")

// --- Review ---

var ErrNotAccepted = ErrInvalidStatus("review", "Only accepted submissions can be rated")

var ErrNotReviewParticipant = ErrForbidden("review", "Only the bounty owner or the submitter can rate this submission")

var ErrAlreadyReviewed = ErrAlreadyExists("review", "A rating has already been left for this submission")

// --- Notification ---

var ErrNotificationNotFound = ErrNotFound("notification", "Notification not found")
