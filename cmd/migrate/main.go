package main

import (
	"database/sql"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"donatehub/internal/infra"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL CHECK (role IN ('organization', 'supporter')),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS campaigns (
	id UUID PRIMARY KEY,
	title VARCHAR(100) NOT NULL,
	description VARCHAR(1000) NOT NULL,
	category TEXT NOT NULL CHECK (category IN ('health', 'education', 'disaster', 'other')),
	goal_amount BIGINT NOT NULL CHECK (goal_amount > 0),
	raised_amount BIGINT NOT NULL DEFAULT 0 CHECK (raised_amount >= 0),
	owner_id UUID NOT NULL REFERENCES users(id),
	status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'closed')),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- No foreign key on campaign_id: donations are retained when their
-- campaign is deleted.
CREATE TABLE IF NOT EXISTS donations (
	id UUID PRIMARY KEY,
	supporter_id UUID NOT NULL REFERENCES users(id),
	campaign_id UUID NOT NULL,
	amount BIGINT NOT NULL CHECK (amount >= 1),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_campaigns_owner ON campaigns(owner_id);
CREATE INDEX IF NOT EXISTS idx_campaigns_created ON campaigns(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_donations_supporter ON donations(supporter_id);
CREATE INDEX IF NOT EXISTS idx_donations_campaign ON donations(campaign_id);
`

func main() {
	_ = godotenv.Load()

	logger := infra.NewLogger(os.Getenv("APP_ENV"))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal().Msg("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("ping database")
	}

	if _, err := db.Exec(schema); err != nil {
		logger.Fatal().Err(err).Msg("apply schema")
	}
	logger.Info().Msg("schema applied")
}
