// Package cli is the interactive terminal frontend of the tracker client.
//
// It wires the transport, account cache, identity provider, session store,
// navigation guard and application services together, and drives them from a
// read-eval-print loop. Every navigation to a protected view goes through the
// guard first; a configuration error blocks the whole surface.
package cli
