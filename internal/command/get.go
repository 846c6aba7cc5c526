package command

import (
	"bufio"
	"fmt"

	"github.com/maybell/parlance/internal/perrors"
)

// Reader is a type that can be used for getting command input.
type Reader interface {
	// ReadCommand reads a single line of user command input. It will block
	// until one is ready. If there is an error or input is at end (EOF), the
	// returned string will be empty, otherwise it will always be non-empty.
	//
	// When error is io.EOF, string will always be empty. If EOF was
	// encountered on a call but some input was received, the input will be
	// returned and error will be nil, and the next call to ReadCommand will
	// return "", io.EOF.
	ReadCommand() (string, error)

	// Close performs any operations required to clean the resources created
	// by the Reader. It should be called at least once when the Reader is no
	// longer needed.
	Close() error
}

// ParseFunc parses one line of input into a Command. It is how Get is given
// a session's parser without this package needing to know about sessions.
type ParseFunc func(input string) (Command, error)

// Get obtains a single command by reading from the provided Reader. It reads
// a line of input and attempts to parse it with the given parse function,
// returning the Command on success. On a parse failure the failure's game
// message is printed to the ostream and input is read again until a parsable
// command is encountered.
//
// Note that this function does not check whether the command makes sense to
// execute, only that a Command can be parsed from the user input.
func Get(cmdStream Reader, ostream *bufio.Writer, parse ParseFunc) (Command, error) {
	var cmd Command

	for {
		input, err := cmdStream.ReadCommand()
		if err != nil {
			return cmd, fmt.Errorf("could not get input: %w", err)
		}

		cmd, err = parse(input)
		if err == nil {
			return cmd, nil
		}

		errMsg := fmt.Sprintf("%s\nTry HELP for valid commands\n", perrors.GameMessage(err))
		if _, err := ostream.WriteString(errMsg); err != nil {
			return cmd, fmt.Errorf("could not write output: %w", err)
		}
		if err := ostream.Flush(); err != nil {
			return cmd, fmt.Errorf("could not flush output: %w", err)
		}
	}
}
