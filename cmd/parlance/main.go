/*
Parlance starts an interactive command parsing session.

It optionally reads in a world definition file to pre-load vocabulary and
world objects, then reads lines of player input from stdin and prints the
structured parse of each one to stdout until EOF or the "QUIT" command is
input.

Usage:

	parlance [flags]

The flags are:

	-version
		Give the current version of Parlance and then exit.

	-w/-world [FILE]
		Load the provided definition file into the session before reading any
		input. If not given, the session starts with only the built-in
		vocabulary and an empty world.

	-d/-direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input even if launched in
		a tty with stdin and stdout.

Once a session has started, each line of input is run through the parser. New
synonyms can be added during the session with "TEACH ALIAS WORD". To exit the
interpreter, type "QUIT".
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maybell/parlance"
	"github.com/maybell/parlance/internal/version"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitSessionError indicates an unsuccessful program execution due to a
	// problem during the session.
	ExitSessionError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine.
	ExitInitError
)

var (
	returnCode  int   = ExitSuccess
	flagVersion *bool = flag.Bool("version", false, "Gives the version info")
	worldFile   string
	forceDirect bool
)

func init() {
	const (
		worldUsage       = "a definition file with vocabulary and world objects to pre-load"
		forceDirectUsage = "force reading directly from stdin instead of going through GNU readline where possible"
	)
	flag.StringVar(&worldFile, "world", "", worldUsage)
	flag.StringVar(&worldFile, "w", "", worldUsage+" (shorthand)")
	flag.BoolVar(&forceDirect, "direct", false, forceDirectUsage)
	flag.BoolVar(&forceDirect, "d", false, forceDirectUsage+" (shorthand)")
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic("unrecoverable panic occured")
		} else {
			os.Exit(returnCode)
		}
	}()

	flag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	eng, initErr := parlance.NewEngine(os.Stdin, os.Stdout, worldFile, forceDirect)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer eng.Close()

	err := eng.RunUntilQuit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitSessionError
		return
	}
}
