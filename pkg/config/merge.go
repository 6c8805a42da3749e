package config

// mergeAgents merges built-in and user-defined agent configurations.
// User-defined agents override built-in agents with the same name.
func mergeAgents(builtinAgents map[string]AgentConfig, userAgents map[string]AgentConfig) map[string]*AgentConfig {
	result := make(map[string]*AgentConfig)

	for name, agent := range builtinAgents {
		agentCopy := agent
		result[name] = &agentCopy
	}
	for name, agent := range userAgents {
		agentCopy := agent
		result[name] = &agentCopy
	}

	return result
}

// mergeProviders merges built-in and user-defined provider configurations.
// User-defined providers override built-in providers with the same name.
func mergeProviders(builtinProviders map[string]ProviderConfig, userProviders map[string]ProviderConfig) map[string]*ProviderConfig {
	result := make(map[string]*ProviderConfig)

	for name, p := range builtinProviders {
		pCopy := p
		result[name] = &pCopy
	}
	for name, p := range userProviders {
		pCopy := p
		result[name] = &pCopy
	}

	return result
}
