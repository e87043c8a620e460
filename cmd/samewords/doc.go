// Package main hosts the samewords CLI entrypoint and command graph.
//
// Running `samewords <letters>` prints every dictionary word that uses exactly
// those letters. The word list is downloaded and unpacked on first use; the
// `fetch` command does only that step, and `config` scaffolds or checks the
// configuration file. Configuration resolution, logger setup, and the word list
// source are centralized in commandContext so commands stay declarative.
package main
