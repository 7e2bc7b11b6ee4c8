package models

// VersionInfo describes a deployed build. Service and Timestamp are optional.
type VersionInfo struct {
	Version   string `json:"version"`
	Service   string `json:"service,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
