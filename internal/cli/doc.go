// Package cli provides the interactive board client.
//
// The REPL replaces the login, registration, profile and board pages: it
// reads a command per line, prompts for the fields the command needs and
// prints the localized result message of the board service.
//
// Commands
//
//	register, login, logout, whoami, profile, passwd
//	post, edit <id>, delete <id>, show <id>
//	list, active, mine [all|active|expired|draft], stats
//	help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
