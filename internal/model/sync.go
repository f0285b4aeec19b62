package model

// SyncStatus describes the store's persistence health. It is observable
// state, not an error channel: a transition to SyncError never blocks
// further mutation of the in-memory collection.
type SyncStatus string

const (
	// SyncSaved means the last write reached durable storage with an
	// authenticated remote session present.
	SyncSaved SyncStatus = "saved"
	// SyncSaving means a durable write is in flight.
	SyncSaving SyncStatus = "saving"
	// SyncError means the last durable write failed; the in-memory working
	// set is preserved so the user can retry without re-entering data.
	SyncError SyncStatus = "error"
	// SyncOffline is the steady state when no remote session exists: the
	// collection is durable locally but not cloud-backed.
	SyncOffline SyncStatus = "offline"
)

// Preferences holds user display flags. They are persisted alongside the
// transaction collection and passed explicitly into formatting functions
// rather than read from globals.
type Preferences struct {
	// GhostMode masks amounts in rendered output.
	GhostMode bool `json:"ghostMode"`
	// DarkMode selects the dark style sheet.
	DarkMode bool `json:"darkMode"`
}
