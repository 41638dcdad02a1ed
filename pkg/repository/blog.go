package repository

import (
	"context"

	"github.com/archlab/patterns/pkg/domain/blog"
)

// PostRepository is the storage gateway for blog posts. Get and Update
// return (nil, nil) when the post does not exist; Delete reports whether a
// row was removed.
type PostRepository interface {
	Create(ctx context.Context, title, content string) (*blog.Post, error)
	Get(ctx context.Context, id uint) (*blog.Post, error)
	List(ctx context.Context) ([]*blog.Post, error)
	Update(ctx context.Context, id uint, title, content string) (*blog.Post, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
