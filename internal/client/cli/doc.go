// Package cli is the interactive terminal front end of the healthchat
// client: a REPL over the session controller and the chat API. It is
// presentation glue; all session and transport invariants live in the
// session, credentials and api packages.
package cli
