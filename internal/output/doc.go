// Package output provides structured output and exit-code handling for
// the omwcfg CLI.
//
// Every command prints through a Printer, which switches between styled
// human output and JSON (the --json flag):
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "openmw.cfg found", "path": path})
//	printer.Error(err)
//
// In JSON mode errors are written as {"error": "...", "code": N}.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad arguments, missing path, no openmw.cfg
//	output.ExitSystemError // 2: filesystem failure
//	output.ExitNotWritable // 3: target is not writable
//
// Human styling uses lipgloss and is disabled when output is not a
// terminal or --color=never is given.
package output
