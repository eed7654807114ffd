package models

import "time"

// Post is the primary content entity. Its ID and CreatedAt are assigned
// by the database on insert and never change afterwards; OwnerID is fixed
// at creation time and survives both full and partial updates.
type Post struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`

	// OwnerID references the user that created the post. Deleting that
	// user removes the post through the schema-level cascade.
	OwnerID int64 `json:"owner_id"`

	// Owner carries the joined owner record on read paths. It is nil on
	// write paths (create/replace/patch responses).
	Owner *User `json:"owner,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostWithVotes pairs a post with the number of votes cast for it.
// Read endpoints (list, get-by-id) return this shape.
type PostWithVotes struct {
	Post  Post  `json:"post"`
	Votes int64 `json:"votes"`
}

// PostDraft is the client-supplied portion of a post, used both for
// creation and for full replacement. Published defaults to true when the
// field is omitted from the request body.
type PostDraft struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

// PublishedOrDefault resolves the optional Published field: omitted means
// the post is published.
func (d PostDraft) PublishedOrDefault() bool {
	if d.Published == nil {
		return true
	}
	return *d.Published
}

// PostPatch carries a partial update. Nil fields keep their prior values;
// only non-nil fields are written.
type PostPatch struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

// IsEmpty reports whether the patch modifies nothing.
func (p PostPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Published == nil
}

// PostFilter narrows and paginates the post listing. Search matches a
// case-insensitive substring of the title; an empty Search matches all.
// Limit is always applied, so Limit == 0 yields an empty page.
type PostFilter struct {
	Search string
	Limit  uint64
	Offset uint64
}
