package storage

import (
	"strconv"
	"strings"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var postgresDialect = dialect{
	name:   "postgres",
	driver: "postgres",
	schema: `
		CREATE TABLE IF NOT EXISTS scores (
			id SERIAL PRIMARY KEY,
			game_id TEXT NOT NULL,
			stage TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
	`,
	rebind: rebindDollar,
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// rebindDollar rewrites ? placeholders as $1, $2, ... for lib/pq.
// Queries in this package never contain a literal question mark.
func rebindDollar(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
