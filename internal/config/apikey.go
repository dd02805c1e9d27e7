package config

import (
	"os"
	"strings"
)

// placeholderKey is the value shipped in example .env files.
const placeholderKey = "your-api-key-here"

// APIKeyEnv returns the environment variable holding the API key for a provider.
func APIKeyEnv(provider string) string {
	if provider == ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "ANTHROPIC_API_KEY"
}

// LookupAPIKey reads the provider's API key from the environment.
// It is called per request so that a key added to the environment is picked up without a restart.
// The example placeholder counts as unset.
func LookupAPIKey(provider string) (string, bool) {
	key := strings.TrimSpace(os.Getenv(APIKeyEnv(provider)))
	if key == "" || key == placeholderKey {
		return "", false
	}
	return key, true
}
