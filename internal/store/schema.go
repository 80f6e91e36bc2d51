package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL,
    hash                 TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);
`

// Fixed keys the plan is persisted under.
const (
	KeyItems        = "pp_items_v1"
	KeySchedule     = "pp_schedule_v1"
	KeyPeanutFilter = "pp_peanutFilter_v1"
)
