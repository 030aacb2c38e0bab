// Package textparse builds application parsers on top of package parsec:
// ASCII character classes, a date parser and an identity-number parser, and
// a Registry that looks parsers up by name for the batch checker and CLI.
package textparse
