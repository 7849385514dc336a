package analyzer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const sessionHelp = `commands:
  insert K   add K keeping the tree balanced
  delete K   remove K
  search K   look K up
  import     replace the tree with the default keys
  show       print the tree summary
  help       print this help
  exit       end the session`

// session owns the tree the user works on; every command replaces the tree
// handle with what the operation returns.
type session struct {
	cfg      *configuration
	strategy Strategy
	log      zerolog.Logger
	out      io.Writer
	tree     *Tree
}

func newSession(cfg *configuration, log zerolog.Logger, out io.Writer) (*session, error) {
	st, err := cfg.strategy()
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, strategy: st, log: log, out: out, tree: st.Build(nil)}, nil
}

// Run reads one command per line until "exit", end of input or ctx is done.
// Cancelling ctx ends the session even while it waits for input.
func (s *session) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, errc := readLines(ctx, in)
	for {
		var line string
		var ok bool
		select {
		case <-ctx.Done():
		case line, ok = <-lines:
		}
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(s.out, "Goodbye!")
			return err
		}
		if !ok {
			if err := <-errc; err != nil {
				return fmt.Errorf("reading commands: %w", err)
			}
			return nil
		}
		if !s.exec(line) {
			return nil
		}
	}
}

// readLines scans in from a goroutine until end of input or ctx is done.
// lines is closed when the goroutine ends, errc then holds the scan error.
// A Read blocked on in keeps the goroutine alive until it returns.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines, errc := make(chan string), make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

func (s *session) warn(format string, a ...any) {
	fmt.Fprintf(s.out, "Warning: "+format+"\n", a...)
}

func (s *session) info(format string, a ...any) {
	fmt.Fprintf(s.out, "Info: "+format+"\n", a...)
}

// exec one command line. Returns false when the session should end.
func (s *session) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd := strings.ToLower(fields[0])
	s.log.Debug().Str("command", cmd).Strs("args", fields[1:]).Msg("session command")

	switch cmd {
	case "exit", "quit":
		fmt.Fprintln(s.out, "Goodbye!")
		return false
	case "show":
		writeSummary(s.out, s.tree)
		return true
	case "help":
		fmt.Fprintln(s.out, sessionHelp)
		return true
	case "import":
		s.tree = s.strategy.Build(s.cfg.DefaultKeys)
		s.log.Info().Str(keyStrategy, string(s.strategy)).Uint32(keySize, s.tree.Size()).Int(keyHeight, s.tree.Height()).Msg("imported default keys")
		writeSummary(s.out, s.tree)
		return true
	case "insert", "delete", "search":
	default:
		s.warn("Illegal input.")
		return true
	}

	if len(fields) != 2 {
		s.warn("Illegal input.")
		return true
	}
	k, err := strconv.Atoi(fields[1])
	if err != nil {
		s.warn("Illegal input.")
		return true
	}
	switch cmd {
	case "insert":
		s.insert(k)
	case "delete":
		s.delete(k)
	case "search":
		s.search(k)
	}
	return true
}

func (s *session) insert(k int) {
	if s.tree.Has(k) {
		s.warn("The node you are trying to insert is already in the tree. The tree risks to become unbalanced.")
		return
	}
	s.tree.SmartInsert(k)
	s.log.Info().Int(keyKey, k).Uint32(keySize, s.tree.Size()).Int(keyHeight, s.tree.Height()).Msg("inserted")
}

func (s *session) delete(k int) {
	var ok bool
	if s.cfg.RebalanceDelete {
		ok = s.tree.SmartDelete(k)
	} else {
		ok = s.tree.Delete(k)
	}
	if !ok {
		s.warn("The node you are trying to delete is not in the tree.")
		return
	}
	s.log.Info().Int(keyKey, k).Uint32(keySize, s.tree.Size()).Int(keyHeight, s.tree.Height()).Bool("balanced", s.tree.Balanced()).Msg("deleted")
}

func (s *session) search(k int) {
	if n, ok := s.tree.Search(k); ok {
		s.info("The node you are looking for is in the tree. Its value is %d.", n.Key())
	} else {
		s.info("The node you are trying to search is NOT in the tree.")
	}
}
