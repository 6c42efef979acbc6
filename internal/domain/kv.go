package domain

import "time"

// KVEntry is the row shape used by the SQL-backed storage engine: one row per
// store key holding the JSON document verbatim.
type KVEntry struct {
	Key       string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	Value     []byte    `gorm:"type:BLOB NOT NULL"`
	UpdatedAt time.Time `gorm:"type:DATETIME NOT NULL;autoUpdateTime"`
}

// TableName implements the GORM tabler interface.
func (KVEntry) TableName() string { return "kv_entries" }
