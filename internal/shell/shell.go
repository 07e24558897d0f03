package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/waitlist/pkg/datastructs/waitlist"
	"github.com/huynhanx03/waitlist/pkg/settings"
)

const (
	msgEmptyName     = "Name cannot be empty."
	msgInvalidOption = "Invalid option. Please choose 1–5."
	msgExit          = "Exiting waitlist manager."
)

// Queue is the set of waitlist operations the shell drives.
type Queue interface {
	AddFront(name string) waitlist.Added
	AddEnd(name string) waitlist.Added
	Remove(name string) waitlist.Removal
	Snapshot() waitlist.Snapshot
}

// command is one menu entry. Commands with a namePrompt read a customer name
// before running; exit commands end the loop after printing their output.
type command struct {
	key        string
	label      string
	namePrompt string
	run        func(name string) string
	exit       bool
}

// Shell is the interactive menu over a Queue.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	banner   string
	prompt   string
	logger   *zap.Logger
	menu     []command
	commands map[string]command
}

// New returns a shell reading selections from in and writing to out.
func New(queue Queue, in io.Reader, out io.Writer, cfg settings.Shell, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Banner == "" {
		cfg.Banner = settings.DefaultBanner
	}
	if cfg.Prompt == "" {
		cfg.Prompt = settings.DefaultPrompt
	}

	s := &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		banner: cfg.Banner,
		prompt: cfg.Prompt,
		logger: logger,
	}

	s.menu = []command{
		{
			key:        "1",
			label:      "Add customer to front",
			namePrompt: "Enter customer name to add to front: ",
			run:        func(name string) string { return queue.AddFront(name).String() },
		},
		{
			key:        "2",
			label:      "Add customer to end",
			namePrompt: "Enter customer name to add to end: ",
			run:        func(name string) string { return queue.AddEnd(name).String() },
		},
		{
			key:        "3",
			label:      "Remove customer by name",
			namePrompt: "Enter customer name to remove: ",
			run:        func(name string) string { return queue.Remove(name).String() },
		},
		{
			key:   "4",
			label: "Print waitlist",
			run:   func(string) string { return queue.Snapshot().String() },
		},
		{
			key:   "5",
			label: "Exit",
			run:   func(string) string { return msgExit },
			exit:  true,
		},
	}

	s.commands = make(map[string]command, len(s.menu))
	for _, c := range s.menu {
		s.commands[c.key] = c
	}
	return s
}

// Run loops until the exit selection, end of input or ctx cancellation.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, ok := s.readLine(s.prompt)
		if !ok {
			return s.inputErr()
		}

		cmd, found := s.commands[choice]
		if !found {
			s.logger.Debug("invalid menu option", zap.String("choice", choice))
			s.println(msgInvalidOption)
			continue
		}

		var name string
		if cmd.namePrompt != "" {
			name, ok = s.readLine(cmd.namePrompt)
			if !ok {
				return s.inputErr()
			}
			if name == "" {
				s.logger.Warn("rejected empty customer name", zap.String("option", cmd.label))
				s.println(msgEmptyName)
				continue
			}
		}

		s.println(cmd.run(name))
		if cmd.exit {
			return nil
		}
	}
}

func (s *Shell) printMenu() {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(s.banner)
	sb.WriteString("\n")
	for _, c := range s.menu {
		fmt.Fprintf(&sb, "%s. %s\n", c.key, c.label)
	}
	io.WriteString(s.out, sb.String())
}

// readLine writes prompt and returns the next trimmed line.
// ok is false when input is exhausted.
func (s *Shell) readLine(prompt string) (string, bool) {
	io.WriteString(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// inputErr treats a clean end of input as a normal exit.
func (s *Shell) inputErr() error {
	if err := s.in.Err(); err != nil {
		return errors.Wrap(err, "failed to read input")
	}
	s.println("")
	return nil
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
