// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Zhurov

package store

const (
	bootstrapSessionSchema = `
		CREATE TABLE IF NOT EXISTS session (
			id         INTEGER PRIMARY KEY CHECK (id = 1),
			user_id    INTEGER NOT NULL,
			token      TEXT    NOT NULL,
			server_url TEXT    NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`

	saveSession = `
		INSERT OR REPLACE INTO session (
			id,
			user_id,
			token,
			server_url,
			created_at
		) VALUES (1, $1, $2, $3, $4);`

	getSession = `
		SELECT
			user_id,
			token,
			server_url,
			created_at
		FROM session
		WHERE id = 1;`

	clearSession = `DELETE FROM session;`
)
