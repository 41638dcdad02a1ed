// Package blog holds the blog service's domain types. Posts carry no
// invariants beyond existence; the service is a pure CRUD demo.
package blog

import "errors"

// ErrPostNotFound is returned when no post exists for the given id.
var ErrPostNotFound = errors.New("post not found")

// Post is a blog entry.
type Post struct {
	ID      uint
	Title   string
	Content string
}
