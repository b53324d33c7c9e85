package models

// Status is a point-in-time snapshot of the mail client installation.
// It is computed on every request and never persisted.
type Status struct {
	// Status is always "running" while the control panel answers.
	Status string `json:"status"`

	// ConfigPath is the directory holding the located config.json.
	// It never includes the file name.
	ConfigPath string `json:"configPath"`

	// Configured reports whether config.json existed at request time.
	Configured bool `json:"configured"`

	// Version is the mail client version the panel was built for.
	Version string `json:"version"`
}

// StatusRunning is the only value [Status.Status] takes.
const StatusRunning = "running"
