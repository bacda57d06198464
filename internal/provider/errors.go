package provider

import "errors"

// Each provider fails with one of its own closed set of error kinds. Adapters
// wrap these sentinels with context; callers match them with errors.Is.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileTimeout  = errors.New("profile timeout")

	ErrPostsNetwork         = errors.New("posts network error")
	ErrPostsInvalidResponse = errors.New("posts invalid response")

	ErrNotificationsNoConnection = errors.New("notifications no connection")
	ErrNotificationsUnauthorized = errors.New("notifications unauthorized")
)
