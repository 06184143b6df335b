package comments

import "blog-api/core/utils"

// Comment is the wire representation of a comment.
type Comment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postID"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func commentFromRow(row map[string]any) Comment {
	return Comment{
		ID:        utils.ToInt64(row["id"]),
		PostID:    utils.ToInt64(row["postID"]),
		Author:    utils.ToString(row["author"]),
		Content:   utils.ToString(row["content"]),
		CreatedAt: utils.ToTimeString(row["createdAt"]),
		UpdatedAt: utils.ToTimeString(row["updatedAt"]),
	}
}
