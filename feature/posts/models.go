package posts

import "blog-api/core/utils"

// Post is the wire representation of a blog post.
type Post struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// postFromRow builds the wire representation from a stored row (or from a
// reconciled field set, which uses the same keys and storage values).
func postFromRow(row map[string]any) Post {
	return Post{
		ID:        utils.ToInt64(row["id"]),
		Title:     utils.ToString(row["title"]),
		Content:   utils.ToString(row["content"]),
		Category:  utils.ToString(row["category"]),
		Tags:      DecodeTags(row["tags"]),
		CreatedAt: utils.ToTimeString(row["createdAt"]),
		UpdatedAt: utils.ToTimeString(row["updatedAt"]),
	}
}
