package cfgpath

import "github.com/gorewood/omwcfg/internal/debuglog"

// Locator runs the package operations and traces each outcome to Log.
type Locator struct {
	Log *debuglog.Logger
}

// NewLocator creates a Locator tracing to log. A nil log disables tracing.
func NewLocator(log *debuglog.Logger) *Locator {
	return &Locator{Log: log}
}

// Validate is ValidatePath with tracing.
func (l *Locator) Validate(path string) (string, error) {
	validated, err := ValidatePath(path)
	if err != nil {
		l.Log.Logf("validate %q failed: %v", path, err)
		return "", err
	}
	l.Log.Logf("validated %q as %q", path, validated)
	return validated, nil
}

// Resolve is InputConfigPath with tracing.
func (l *Locator) Resolve(path string) (string, error) {
	resolved, err := InputConfigPath(path)
	if err != nil {
		l.Log.Logf("resolve %q failed (%s): %v", path, KindOf(err), err)
		return "", err
	}
	l.Log.Logf("resolved %q to %q", path, resolved)
	return resolved, nil
}

// Writable is IsWritable with tracing.
func (l *Locator) Writable(path string) bool {
	writable := IsWritable(path)
	l.Log.Logf("writable %q: %t", path, writable)
	return writable
}

// Select is UserConfigPath with tracing.
func (l *Locator) Select(candidates []string, fallback string) string {
	selected := UserConfigPath(candidates, fallback)
	l.Log.Logf("selected %q from %d candidates (fallback %q)", selected, len(candidates), fallback)
	return selected
}
