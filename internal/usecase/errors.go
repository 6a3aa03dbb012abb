package usecase

import "fmt"

// NotFoundError marks a lookup miss, including ownership mismatches that are
// deliberately reported as absence rather than as a permission failure.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// PreconditionError marks a request that is well formed but not valid in the
// session's current state, such as starting twice or answering question 7.
type PreconditionError struct {
	Reason string
}

func (e PreconditionError) Error() string {
	return e.Reason
}

// ConflictError marks a uniqueness violation on registration.
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	return e.Reason
}

// UnauthorizedError marks failed credential or token checks.
type UnauthorizedError struct {
	Reason string
}

func (e UnauthorizedError) Error() string {
	return e.Reason
}
