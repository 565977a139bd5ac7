package db

const createRunsTable = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    kind TEXT NOT NULL,
    root TEXT,
    started_at TEXT NOT NULL,
    finished_at TEXT,
    discovered INTEGER DEFAULT 0,
    updated INTEGER DEFAULT 0,
    unchanged INTEGER DEFAULT 0,
    skipped INTEGER DEFAULT 0,
    errored INTEGER DEFAULT 0,
    extracted INTEGER DEFAULT 0
);
`

const createOutcomesTable = `
CREATE TABLE IF NOT EXISTS outcomes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL REFERENCES runs(id),
    path TEXT NOT NULL,
    status TEXT NOT NULL,
    detail TEXT,
    recorded_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_outcomes_run ON outcomes(run_id);
`

const insertRun = `
INSERT INTO runs (kind, root, started_at) VALUES (?, ?, ?)
`

const finishRun = `
UPDATE runs SET
    finished_at = ?,
    discovered = ?,
    updated = ?,
    unchanged = ?,
    skipped = ?,
    errored = ?
WHERE id = ?
`

const finishExtractRun = `
UPDATE runs SET finished_at = ?, extracted = ? WHERE id = ?
`

const insertOutcome = `
INSERT INTO outcomes (run_id, path, status, detail, recorded_at) VALUES (?, ?, ?, ?, ?)
`

const selectRun = `
SELECT id, kind, COALESCE(root, ''), started_at, COALESCE(finished_at, ''),
    discovered, updated, unchanged, skipped, errored, extracted
FROM runs WHERE id = ?
`

const selectOutcomes = `
SELECT path, status, COALESCE(detail, '')
FROM outcomes
WHERE run_id = ?
ORDER BY id
`
