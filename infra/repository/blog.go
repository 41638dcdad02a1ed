package repository

import (
	"context"
	"errors"

	"github.com/archlab/patterns/pkg/domain/blog"
	"github.com/archlab/patterns/pkg/repository"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates the storage gateway for blog posts.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, title, content string) (*blog.Post, error) {
	row := Post{Title: title, Content: content}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return mapPostToDomain(&row), nil
}

func (r *postRepository) Get(ctx context.Context, id uint) (*blog.Post, error) {
	var row Post
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapPostToDomain(&row), nil
}

func (r *postRepository) List(ctx context.Context) ([]*blog.Post, error) {
	var rows []Post
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	posts := make([]*blog.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, mapPostToDomain(&rows[i]))
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, id uint, title, content string) (*blog.Post, error) {
	res := r.db.WithContext(ctx).
		Model(&Post{}).
		Where("id = ?", id).
		Updates(map[string]any{"title": title, "content": content})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &blog.Post{ID: id, Title: title, Content: content}, nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Post{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func mapPostToDomain(row *Post) *blog.Post {
	return &blog.Post{ID: row.ID, Title: row.Title, Content: row.Content}
}
