// Package parlance converts free-form player commands into structured
// actions for a text-adventure engine and maintains the relational world
// model that command resolution queries. It also contains a CLI-driven
// engine for reading commands and echoing their parses continuously until
// the user quits.
package parlance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/maybell/parlance/internal/command"
	"github.com/maybell/parlance/internal/input"
	"github.com/maybell/parlance/internal/perrors"
	"github.com/maybell/parlance/internal/pwf"
	"github.com/maybell/parlance/internal/util"
)

// Engine contains the things needed to run a parsing session from an
// interactive shell attached to an input stream and an output stream.
type Engine struct {
	session     *Session
	in          command.Reader
	out         *bufio.Writer
	forceDirect bool
	running     bool
}

const consoleOutputWidth = 80

// NewEngine creates a new engine ready to operate on the given input and
// output streams. It will immediately open a buffered writer on the output
// stream.
//
// If nil is given for the input stream, it reads from stdin. If nil is given
// for the output stream, it writes to stdout. If worldFilePath is non-empty,
// the PWF file at that path is loaded into the session before any commands
// are read.
func NewEngine(inputStream io.Reader, outputStream io.Writer, worldFilePath string, forceDirectInput bool) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	eng := &Engine{
		session:     NewSession(),
		out:         bufio.NewWriter(outputStream),
		forceDirect: forceDirectInput,
	}

	if worldFilePath != "" {
		def, err := pwf.Load(worldFilePath)
		if err != nil {
			return nil, fmt.Errorf("loading world file: %w", err)
		}
		if err := eng.session.ApplyDefinition(def); err != nil {
			return nil, fmt.Errorf("applying world file: %w", err)
		}
	}

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout

	var err error
	if useReadline {
		eng.in, err = input.NewInteractiveReader()
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// Session returns the engine's parsing session.
func (eng *Engine) Session() *Session {
	return eng.session
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running engine")
	}

	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}

	return nil
}

// RunUntilQuit begins reading commands from the streams, parsing each and
// echoing its structure, until the quit command or end of input is received.
func (eng *Engine) RunUntilQuit() error {
	introMsg := "Parlance command shell\n"
	if eng.forceDirect {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "======================\n"
	introMsg += "Type commands to see their parses; TEACH <alias> <word> to teach; QUIT to leave.\n"

	if err := eng.write(introMsg); err != nil {
		return err
	}

	eng.running = true
	defer func() {
		eng.running = false
	}()

	for eng.running {
		cmd, err := command.Get(eng.in, eng.out, eng.parseLine)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("get user command: %w", err)
		}

		// the parsing core never treats quit specially; only a runner does
		if cmd.Verb == "quit" {
			eng.running = false
			break
		}

		if err := eng.write(describeCommand(cmd)); err != nil {
			return err
		}
	}

	return eng.write("Goodbye\n")
}

// parseLine handles one line of input. The TEACH meta-command is intercepted
// here, before the session's parser ever sees it; everything else goes
// through Session.Parse.
func (eng *Engine) parseLine(line string) (command.Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) > 0 && fields[0] == "teach" {
		if len(fields) != 3 {
			return command.Command{}, perrors.MalformedCommand(len(fields)-1, "TEACH takes an alias and a known word")
		}
		if err := eng.session.Teach(fields[1], fields[2]); err != nil {
			return command.Command{}, err
		}
		return command.Command{
			Verb:           "teach",
			DirectObject:   fields[1],
			IndirectObject: fields[2],
			Pattern:        command.VerbNounNoun,
			RawInput:       line,
		}, nil
	}

	return eng.session.Parse(line)
}

// describeCommand renders the structure of a parsed command for display.
func describeCommand(cmd command.Command) string {
	if cmd.Verb == "teach" {
		return fmt.Sprintf("Understood; %q now means %q\n", cmd.DirectObject, cmd.IndirectObject)
	}

	msg := fmt.Sprintf("%s: verb %q", cmd.Pattern, cmd.Verb)
	if cmd.DirectObject != "" {
		msg += fmt.Sprintf(", object %q", cmd.DirectObject)
	}
	if len(cmd.Adjectives) > 0 {
		msg += " (" + util.MakeTextList(cmd.Adjectives, false) + ")"
	}
	if cmd.Preposition != "" {
		msg += fmt.Sprintf(", %s %q", cmd.Preposition, cmd.IndirectObject)
	} else if cmd.IndirectObject != "" && cmd.DirectObject != "" {
		msg += fmt.Sprintf(", to %q", cmd.IndirectObject)
	}

	return rosed.Edit(msg).Wrap(consoleOutputWidth).String() + "\n"
}

func (eng *Engine) write(msg string) error {
	if _, err := eng.out.WriteString(msg); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
