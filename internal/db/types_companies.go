package db

const companyColumns = `id::text, name, category, original_category, twitter_handle, twitter_url`

const submissionsDDL = `CREATE TABLE IF NOT EXISTS submissions (
	id         UUID PRIMARY KEY,
	kind       TEXT NOT NULL,
	subject    TEXT NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
