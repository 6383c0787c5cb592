// Package cfgpath locates openmw.cfg files and probes configuration
// paths before they are read or written.
//
// # Operations
//
//   - ValidatePath rejects empty paths and canonicalizes relative ones.
//     Absolute paths pass through untouched, even if they do not exist.
//   - InputConfigPath turns a directory or file path into the path of
//     an existing openmw.cfg.
//   - UserConfigPath picks the last of the layered candidate directories.
//   - IsWritable guesses whether a path can be written.
//
// Failures are reported as *ConfigError values classified by Kind:
//
//	_, err := cfgpath.InputConfigPath(dir)
//	if errors.Is(err, cfgpath.ErrCannotFind) {
//		// dir exists but holds no openmw.cfg
//	}
//
// # Writability
//
// IsWritable is a heuristic. Only a permission-denied failure counts as
// "not writable"; any other failure (the path is a directory, an I/O
// error) reports true, so callers must still handle write errors.
//
// Locator wraps the same operations and traces each decision to a
// debuglog.Logger.
package cfgpath
