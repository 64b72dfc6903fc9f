package models

// ErrorType identifies the category of a failed revision check.
type ErrorType string

const (
	// The repository reference is not in owner/repo form
	ErrRepositoryInvalid ErrorType = "repository_invalid"

	// GitHub does not know the branch or commit
	ErrRevisionNotFound ErrorType = "revision_not_found"

	// Any other API failure (auth, rate limit, 5xx)
	ErrGitHubRequestFailed ErrorType = "github_request_failed"
)
