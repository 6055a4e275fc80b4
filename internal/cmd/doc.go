// Package cmd runs external commands with logging.
//
// Output is captured so callers can replay it after a failure. In verbose
// mode every command and its duration is traced through the context logger.
//
// # Usage
//
//	out, err := cmd.CombinedContext(ctx, dir, "npm", "install")
//	if err != nil {
//	    os.Stderr.Write(out)
//	}
//
// A cancelled context is reported as ctx.Err() rather than the kill signal.
package cmd
