package cfgpath

// UserConfigPath returns the last candidate, or fallback when there are none.
// Later candidates are more specific scopes and take precedence.
func UserConfigPath(candidates []string, fallback string) string {
	if len(candidates) == 0 {
		return fallback
	}
	return candidates[len(candidates)-1]
}
