package blog

import domain "github.com/archlab/patterns/pkg/domain/blog"

// PostRequest is the create/update payload.
type PostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// PostResponse is the wire shape of a post.
type PostResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func toPostResponse(p *domain.Post) PostResponse {
	return PostResponse{ID: p.ID, Title: p.Title, Content: p.Content}
}
