package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mzhurov/postboard/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING id, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, created_at
    FROM users
    WHERE id = $1;`

	createPost = `INSERT INTO posts (title, content, published, owner_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, content, published, owner_id, created_at;`

	getPost = `SELECT id, title, content, published, owner_id, created_at
    FROM posts
    WHERE id = $1;`

	getPostWithVotes = `SELECT p.id, p.title, p.content, p.published, p.owner_id, p.created_at,
        u.email, u.created_at,
        COUNT(v.post_id) AS votes
    FROM posts p
    JOIN users u ON u.id = p.owner_id
    LEFT JOIN votes v ON v.post_id = p.id
    WHERE p.id = $1
    GROUP BY p.id, u.id;`

	replacePost = `UPDATE posts
    SET title = $1, content = $2, published = $3
    WHERE id = $4
    RETURNING id, title, content, published, owner_id, created_at;`

	deletePost = `DELETE FROM posts WHERE id = $1;`

	castVote = `INSERT INTO votes (user_id, post_id) VALUES ($1, $2);`

	retractVote = `DELETE FROM votes WHERE user_id = $1 AND post_id = $2;`

	countVotes = `SELECT COUNT(*) FROM votes WHERE post_id = $1;`
)

// psql builds parameterised queries with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListPostsQuery assembles the post listing query from the filter.
// Every listing joins the author and aggregates the vote count; the title
// filter is applied only when a search term is present. LIMIT and OFFSET are
// always emitted, so a zero limit yields an empty page by construction.
func buildListPostsQuery(filter models.PostFilter) (string, []any, error) {
	builder := psql.
		Select(
			"p.id", "p.title", "p.content", "p.published", "p.owner_id", "p.created_at",
			"u.email", "u.created_at",
			"COUNT(v.post_id) AS votes",
		).
		From("posts p").
		Join("users u ON u.id = p.owner_id").
		LeftJoin("votes v ON v.post_id = p.id")

	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"p.title": "%" + filter.Search + "%"})
	}

	query, args, err := builder.
		GroupBy("p.id", "u.id").
		OrderBy("p.id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildPatchPostQuery assembles a partial UPDATE that sets only the fields
// present in the patch. The caller must ensure the patch is non-empty:
// an UPDATE without SET clauses is not a valid statement.
func buildPatchPostQuery(id int64, patch models.PostPatch) (string, []any, error) {
	builder := psql.Update("posts")

	// Добавляем только переданные поля
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Content != nil {
		builder = builder.Set("content", *patch.Content)
	}
	if patch.Published != nil {
		builder = builder.Set("published", *patch.Published)
	}

	// Добавляем WHERE условие и RETURNING
	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, content, published, owner_id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
