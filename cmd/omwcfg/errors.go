package main

import (
	"github.com/gorewood/omwcfg/internal/cfgpath"
	"github.com/gorewood/omwcfg/internal/output"
)

// configExitError maps a cfgpath error to the CLI exit code for its kind.
// Filesystem failures are system errors; everything else is the user's input.
func configExitError(err error) *output.ExitError {
	if cfgpath.KindOf(err) == cfgpath.KindIO {
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
	return output.NewUserErrorWithCause(err.Error(), err)
}
