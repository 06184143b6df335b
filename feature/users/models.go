package users

import "blog-api/core/utils"

// User is the wire representation of an account. The stored password hash is
// deliberately absent.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// userFromRow builds the wire representation from a stored row or a
// reconciled field set. Any password key in the row is ignored.
func userFromRow(row map[string]any) User {
	return User{
		ID:        utils.ToInt64(row["id"]),
		Username:  utils.ToString(row["username"]),
		Email:     utils.ToString(row["email"]),
		CreatedAt: utils.ToTimeString(row["createdAt"]),
		UpdatedAt: utils.ToTimeString(row["updatedAt"]),
	}
}
