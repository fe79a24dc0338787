package domain

import "errors"

var (
	// ErrInvalidToken covers every token verification failure: bad
	// signature, unexpected algorithm, malformed payload, missing or
	// elapsed expiry. Verification is all-or-nothing.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthorized is a policy denial: the principal is authenticated
	// but is neither the entity's owner nor (for void) an admin.
	ErrUnauthorized = errors.New("unauthorized")

	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrCommentNotFound = errors.New("comment not found")

	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrBadRequest marks missing required input for a lifecycle
	// transition, e.g. an empty void reason.
	ErrBadRequest = errors.New("bad request")

	// ErrImmutable marks a mutation attempt against an already-voided
	// entity. The visibility filter makes voided entities unreachable
	// through normal reads, so at the HTTP boundary this surfaces as the
	// entity's not-found error rather than a distinct status.
	ErrImmutable = errors.New("entity already voided")
)
