package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	// ErrNotFound: the referenced post, comment or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidParent: parent comment missing, on another post, or itself
	// a reply (threads are one level deep).
	ErrInvalidParent = errors.New("invalid parent comment")
	// ErrInvalidReaction: kind outside the fixed enumerated set.
	ErrInvalidReaction = errors.New("invalid reaction kind")
	// ErrDuplicate: unique index violation (username, email, slug).
	ErrDuplicate = errors.New("duplicate")
	// ErrConflict: optimistic retries exhausted on a contended write.
	ErrConflict = errors.New("concurrent update conflict")
)

// isDupKey reports whether err is a unique-index violation (code 11000).
func isDupKey(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return true
	}
	return mongo.IsDuplicateKeyError(err)
}
