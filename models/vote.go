// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Zhurov

package models

// Vote is the junction record between a user and a post. Its identity is
// the (UserID, PostID) pair itself — there is no surrogate id, and the
// composite primary key is what makes a duplicate cast impossible.
type Vote struct {
	UserID int64 `json:"user_id"`
	PostID int64 `json:"post_id"`
}

// TableName returns the name of the database table
// associated with the Vote model.
func (v Vote) TableName() string {
	return "votes"
}
