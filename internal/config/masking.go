package config

import "strings"

// maskSecret keeps the first and last four characters of a secret and
// replaces the rest with asterisks, for display in logs and `config
// show` output.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) < 8 {
		return "***"
	}
	return secret[:4] + strings.Repeat("*", len(secret)-8) + secret[len(secret)-4:]
}

// Masked returns a copy of the configuration safe for display.
func (c *Config) Masked() Config {
	out := *c
	out.API.Token = maskSecret(c.API.Token)
	return out
}
