// Package cli provides the interactive blog command-line client.
//
// It wires configuration, the local session store, the API client for the
// chosen transport and a REPL. A saved session is restored on start, so a
// restarted CLI stays logged in.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or stdin ends. See runREPL for the command set.
package cli
