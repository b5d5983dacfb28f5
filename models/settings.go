package models

// Settings represents the session flags consumed by the network simulator
type Settings struct {
	OfflineMode     bool `json:"offlineMode"`
	SimulateLatency bool `json:"simulateLatency"`
	SimulateErrors  bool `json:"simulateErrors"`
}
