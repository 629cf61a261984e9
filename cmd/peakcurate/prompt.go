package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/peak-curator/peaks"
	"github.com/cwbudde/peak-curator/session"
)

const helpText = `Commands:
  click X Y          toggle the extremum nearest to (X, Y)
  force-min X        insert a minimum at the first sample after time X
  force-max X        insert a maximum at the first sample after time X
  add min|max I      accept sample I
  rm min|max I       drop sample I
  clear              drop all extrema
  prom MIN MAX       set the prominence thresholds
  done               accept the column and open the next
  force              accept the column even if it does not validate
  skip               discard the column and open the next
  prev               reopen the previous column
  dump [DIR]         write plot_data.csv now, to DIR if given
  show               print the column again
  exit               write plot_data.csv and quit
`

var errUsage = errors.New("usage")

// prompt reads commands line by line and applies them to a session.
type prompt struct {
	s   *session.Session
	in  *bufio.Scanner
	out io.Writer
}

func newPrompt(s *session.Session, in io.Reader, out io.Writer) *prompt {
	return &prompt{s: s, in: bufio.NewScanner(in), out: out}
}

// loop runs until the session ends. End of input exits the session. When
// the final report write fails the prompt stays open for dump and exit
// only, and the write error is returned unless a dump succeeds.
func (p *prompt) loop() error {
	for !p.s.Done() {
		fmt.Fprint(p.out, "> ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return err
			}
			if err := p.s.Exit(); err != nil {
				p.report(err)
				return p.rescue(err)
			}
			return nil
		}

		err := p.exec(p.in.Text())
		if err == nil {
			continue
		}
		p.report(err)
		if p.s.Done() {
			return p.rescue(err)
		}
	}
	return nil
}

func (p *prompt) report(err error) {
	var verr *session.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintf(p.out, "not valid: %s (use 'force' to accept anyway)\n", verr.Verdict)
	case errors.Is(err, errUsage):
		fmt.Fprintf(p.out, "%v\n", err)
	default:
		fmt.Fprintf(p.out, "error: %v\n", err)
	}
}

// rescue keeps the in-memory report reachable after the session ended on a
// failed write.
func (p *prompt) rescue(cause error) error {
	fmt.Fprintln(p.out, "report not written: use 'dump DIR' to save it elsewhere or 'exit' to discard it")
	for {
		fmt.Fprint(p.out, "> ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return errors.Join(cause, err)
			}
			return cause
		}

		fields := strings.Fields(p.in.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "dump":
			if err := p.dump(fields[1:]); err != nil {
				p.report(err)
				continue
			}
			return nil
		case "exit", "quit":
			return cause
		case "help", "?":
			fmt.Fprintln(p.out, "session ended: only 'dump [DIR]' and 'exit' are available")
		default:
			fmt.Fprintf(p.out, "session ended: %q is not available, use 'dump DIR' or 'exit'\n", fields[0])
		}
	}
}

// dump writes the report to the session's output, or to the directory in
// args when one is given.
func (p *prompt) dump(args []string) error {
	var (
		path string
		err  error
	)
	switch len(args) {
	case 0:
		path, err = p.s.Dump()
	case 1:
		path, err = p.s.DumpTo(session.DirSink(args[0]))
	default:
		return fmt.Errorf("%w: dump [DIR]", errUsage)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "wrote %s\n", path)
	return nil
}

func (p *prompt) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "click":
		xy, err := floats(args, 2, "click X Y")
		if err != nil {
			return err
		}
		sel, err := p.s.Click(xy[0], xy[1])
		if err == nil {
			fmt.Fprintf(p.out, "toggled %s %d\n", sel.Polarity, sel.Index)
		}
		return err
	case "force-min", "force-max":
		x, err := floats(args, 1, cmd+" X")
		if err != nil {
			return err
		}
		pol := peaks.Minimum
		if cmd == "force-max" {
			pol = peaks.Maximum
		}
		_, err = p.s.ForceClick(x[0], pol)
		return err
	case "add", "rm":
		pol, i, err := polarityIndex(args, cmd+" min|max I")
		if err != nil {
			return err
		}
		if cmd == "add" {
			return p.s.Insert(i, pol)
		}
		return p.s.Remove(i, pol)
	case "clear":
		return p.s.Clear()
	case "prom":
		t, err := floats(args, 2, "prom MIN MAX")
		if err != nil {
			return err
		}
		return p.s.SetThresholds(t[0], t[1])
	case "done":
		return p.s.Finalize()
	case "force":
		return p.s.ForceFinalize()
	case "skip":
		return p.s.Skip()
	case "prev":
		return p.s.Previous()
	case "dump":
		return p.dump(args)
	case "show":
		render(p.out, p.s.View())
		return nil
	case "exit", "quit":
		return p.s.Exit()
	case "help", "?":
		fmt.Fprint(p.out, helpText)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q, type 'help'", errUsage, cmd)
	}
}

func floats(args []string, n int, usage string) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: %s", errUsage, usage)
	}
	out := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errUsage, usage)
		}
		out[i] = v
	}
	return out, nil
}

func polarityIndex(args []string, usage string) (peaks.Polarity, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: %s", errUsage, usage)
	}
	var pol peaks.Polarity
	switch strings.ToLower(args[0]) {
	case "min":
		pol = peaks.Minimum
	case "max":
		pol = peaks.Maximum
	default:
		return 0, 0, fmt.Errorf("%w: %s", errUsage, usage)
	}
	i, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", errUsage, usage)
	}
	return pol, i, nil
}
