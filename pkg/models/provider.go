package models

// Capabilities are the declared capability flags of a provider adapter.
type Capabilities struct {
	FileAccess  bool `json:"file_access"`
	ShellAccess bool `json:"shell_access"`
	ToolUse     bool `json:"tool_use"`
	SubAgents   bool `json:"sub_agents"`
}

// ProviderInfo is the registry's public view of one adapter.
type ProviderInfo struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Available         bool         `json:"available"`
	UnavailableReason string       `json:"unavailable_reason,omitempty"`
	Models            []string     `json:"models"`
	Capabilities      Capabilities `json:"capabilities"`
}
