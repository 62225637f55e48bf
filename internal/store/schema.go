package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id           TEXT NOT NULL,
    data_file            TEXT NOT NULL,
    saved_at             TEXT NOT NULL,
    budget               REAL NOT NULL,
    total_spent          REAL NOT NULL,
    balance              REAL NOT NULL,
    expense_count        INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_saved ON snapshots(saved_at);
CREATE INDEX IF NOT EXISTS idx_snapshots_session ON snapshots(session_id);
`
