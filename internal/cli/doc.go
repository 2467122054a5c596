// Package cli implements the interactive foo-rum client: a REPL that
// plays the role of the original single-page UI, dispatching user
// commands to the session coordinator and the feed service.
package cli
