// Package storage owns the database lifecycle: opening a connection with the
// configured driver, creating the schema, and seeding the initial forum
// posts. The default backend is an in-memory SQLite database that lives for
// the process lifetime; Postgres is supported as a durable alternative.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

// Supported sqlx driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Open connects to the database and verifies the connection.
// For SQLite the pool is capped at a single connection so that an in-memory
// database is shared by all queries and writes stay serialized.
func Open(ctx context.Context, driverName, dsn string, maxOpenConns, maxIdleConns int) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if err != nil {
		return nil, err
	}

	if driverName == DriverSQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxIdleConns)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	date_of_birth TEXT,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS symptom_assessments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	symptoms TEXT NOT NULL,
	responses TEXT NOT NULL,
	risk_score INTEGER NOT NULL,
	risk_level TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS period_entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	date TEXT NOT NULL,
	flow TEXT,
	symptoms TEXT NOT NULL,
	notes TEXT,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS forum_posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	category TEXT NOT NULL,
	likes INTEGER NOT NULL DEFAULT 0,
	replies INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	date_of_birth TEXT,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS symptom_assessments (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT,
	symptoms TEXT NOT NULL,
	responses TEXT NOT NULL,
	risk_score INTEGER NOT NULL,
	risk_level TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS period_entries (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT,
	date TEXT NOT NULL,
	flow TEXT,
	symptoms TEXT NOT NULL,
	notes TEXT,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS forum_posts (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	category TEXT NOT NULL,
	likes INTEGER NOT NULL DEFAULT 0,
	replies INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
`

// Bootstrap creates the schema for the connected driver.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	schema := sqliteSchema
	if db.DriverName() == DriverPostgres {
		schema = postgresSchema
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}
	return nil
}

// seedPost is one fixed forum post inserted on first run.
type seedPost struct {
	title    string
	content  string
	category string
	likes    int
	replies  int
	age      time.Duration
}

var seedPosts = []seedPost{
	{
		title:    "Tips for managing PCOS naturally?",
		content:  "Hi everyone! I was recently diagnosed with PCOS and I'm looking for natural ways to manage symptoms. Has anyone had success with specific diets or supplements?",
		category: "PCOS Support",
		likes:    8,
		replies:  12,
		age:      2 * time.Hour,
	},
	{
		title:    "Irregular periods - when to see a doctor?",
		content:  "My periods have been really irregular for the past 6 months. Sometimes I skip entirely, other times they last too long. Should I be concerned?",
		category: "General Discussion",
		likes:    15,
		replies:  18,
		age:      5 * time.Hour,
	},
	{
		title:    "Low carb diet success story!",
		content:  "I wanted to share my success with a low-carb diet for PCOS. After 3 months, my periods are more regular and I've lost 15 pounds!",
		category: "Diet & Nutrition",
		likes:    32,
		replies:  25,
		age:      24 * time.Hour,
	},
	{
		title:    "Dealing with anxiety and mood swings",
		content:  "Does anyone else struggle with severe mood swings? I feel like PCOS is affecting my mental health. Looking for coping strategies.",
		category: "Mental Health",
		likes:    9,
		replies:  14,
		age:      48 * time.Hour,
	},
}

// SeedForumPosts inserts the four initial forum posts so the forum is not
// empty on first run. Seeding happens at most once: a non-empty forum table
// is left untouched.
func SeedForumPosts(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM forum_posts"); err != nil {
		return fmt.Errorf("seed forum posts: %w", err)
	}
	if count > 0 {
		logger.Log.Infow("forum posts already present, skipping seed", "count", count)
		return nil
	}

	now := time.Now()
	insert := db.Rebind(`
		INSERT INTO forum_posts (user_id, title, content, category, likes, replies, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	for _, p := range seedPosts {
		if _, err := db.ExecContext(ctx, insert,
			nil, p.title, p.content, p.category, p.likes, p.replies, now.Add(-p.age),
		); err != nil {
			return fmt.Errorf("seed forum posts: %w", err)
		}
	}

	logger.Log.Infow("seeded forum posts", "count", len(seedPosts))
	return nil
}

// SeededPostCount reports how many fixed posts SeedForumPosts inserts.
func SeededPostCount() int {
	return len(seedPosts)
}

// SeededPosts returns copies of the seed fixtures as models, oldest first by
// insertion order. Intended for tests that assert on seed content.
func SeededPosts() []models.ForumPost {
	out := make([]models.ForumPost, 0, len(seedPosts))
	for _, p := range seedPosts {
		out = append(out, models.ForumPost{
			Title:    p.title,
			Content:  p.content,
			Category: p.category,
			Likes:    p.likes,
			Replies:  p.replies,
		})
	}
	return out
}
