// Package cli is the interactive RainyDay terminal client.
//
// App wires the configuration, the local session store and the backend
// client, resumes a saved session and runs a small REPL: sign up or in,
// then create, list, edit, show, complete and delete RainChecks. A
// background watcher pings the server and shows online/offline in the
// prompt.
package cli
