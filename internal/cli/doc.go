// Parses flags and dispatches the foundry commands.
//
// The generator accepts the following flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//
// Flags override build-time defaults set via linker flags and affect only
// the stderr log stream; the specification written to stdout is the same
// bytes regardless. Running with no subcommand emits the specification.
package cli
