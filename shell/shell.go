// Package shell implements the line-oriented command protocol over a single
// in-memory graph: numeric verbs, whitespace-separated arguments, exact
// deterministic output per operation.
//
// Protocol:
//
//	1  <name>           add vertex
//	2  <u> <v> <weight> add or update edge
//	3  <name>           print degree
//	4  <u> <v>          print 1/0 for edge existence
//	5  <start>          BFS traversal line
//	6  <start>          DFS traversal line
//	7  <src> <dst>      print 1/0 for path existence
//	8                   Prim MST block
//	9  <src> <dst>      Dijkstra shortest-path line
//	10                  print the graph
//	11                  exit
//
// Malformed or failing mutations are ignored silently on stdout (logged at
// debug/warn level instead); queries with bad argument counts emit their
// operation's sentinel output (blank line for traversals, "0" for the
// boolean queries), matching the protocol's minimalist-I/O rule.
//
// One Shell owns one Graph plus one reusable Stack, Queue pair handed to
// every traversal call, exercising the drain-at-entry workspace contract.
// A Shell is not safe for concurrent use.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lexgraph/lexgraph/bfs"
	"github.com/lexgraph/lexgraph/core"
	"github.com/lexgraph/lexgraph/dfs"
	"github.com/lexgraph/lexgraph/dijkstra"
	"github.com/lexgraph/lexgraph/mst"
	"github.com/lexgraph/lexgraph/scratch"
)

// Command verbs of the line protocol.
const (
	cmdAddVertex    = 1
	cmdAddEdge      = 2
	cmdDegree       = 3
	cmdEdgeExists   = 4
	cmdBFS          = 5
	cmdDFS          = 6
	cmdPathCheck    = 7
	cmdMST          = 8
	cmdShortestPath = 9
	cmdPrintGraph   = 10
	cmdExit         = 11
)

// Shell dispatches protocol lines against one graph instance.
type Shell struct {
	graph *core.Graph
	stack *scratch.Stack
	queue *scratch.Queue
	out   io.Writer
	log   *logrus.Logger
}

// Option configures a Shell at construction time.
type Option func(*Shell)

// WithLogger routes diagnostics to the given logger instead of the default
// warn-level stderr logger. Diagnostics never touch the protocol output.
func WithLogger(log *logrus.Logger) Option {
	return func(s *Shell) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Shell writing protocol output to out.
func New(out io.Writer, opts ...Option) *Shell {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	s := &Shell{
		graph: core.New(),
		stack: scratch.NewStack(0),
		queue: scratch.NewQueue(0),
		out:   out,
		log:   log,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Graph exposes the shell's graph, mainly for tests and embedding callers.
func (s *Shell) Graph() *core.Graph { return s.graph }

// Run reads in line by line, dispatching each command until EOF, the exit
// verb, or context cancellation. Scanner errors are returned; protocol-level
// problems are not errors, they follow the minimalist-I/O rule.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if quit, err := s.Dispatch(scanner.Text()); quit || err != nil {
			return err
		}
	}

	return scanner.Err()
}

// Dispatch executes one protocol line. The first result is true when the
// line was the exit verb; the error is non-nil only for output failures.
func (s *Shell) Dispatch(line string) (bool, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false, nil
	}
	verb, err := strconv.Atoi(tokens[0])
	if err != nil {
		s.log.WithField("line", line).Debug("shell: non-numeric verb ignored")

		return false, nil
	}
	args := tokens[1:]

	switch verb {
	case cmdExit:
		return true, nil
	case cmdAddVertex:
		s.addVertex(args)
	case cmdAddEdge:
		s.addEdge(args)
	case cmdDegree:
		return false, s.degree(args)
	case cmdEdgeExists:
		return false, s.edgeExists(args)
	case cmdBFS:
		return false, s.runBFS(args)
	case cmdDFS:
		return false, s.runDFS(args)
	case cmdPathCheck:
		return false, s.pathCheck(args)
	case cmdMST:
		return false, s.runMST()
	case cmdShortestPath:
		return false, s.shortestPath(args)
	case cmdPrintGraph:
		return false, s.printGraph()
	default:
		s.log.WithField("verb", verb).Debug("shell: unknown verb ignored")
	}

	return false, nil
}

// emit writes protocol output, the only place stdout is touched.
func (s *Shell) emit(text string) error {
	_, err := io.WriteString(s.out, text)
	if err != nil {
		return fmt.Errorf("shell: writing output: %w", err)
	}

	return nil
}

func (s *Shell) addVertex(args []string) {
	if len(args) != 1 {
		return
	}
	if err := s.graph.AddVertex(args[0]); err != nil {
		s.log.WithError(err).WithField("name", args[0]).Debug("shell: add vertex rejected")
	}
}

func (s *Shell) addEdge(args []string) {
	if len(args) != 3 {
		return
	}
	weight, err := strconv.Atoi(args[2])
	if err != nil {
		s.log.WithField("weight", args[2]).Debug("shell: non-numeric edge weight")

		return
	}
	if err := s.graph.AddEdge(args[0], args[1], weight); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"u": args[0], "v": args[1], "weight": weight,
		}).Debug("shell: add edge rejected")
	}
}

// degree prints the vertex degree; an unknown vertex prints nothing.
func (s *Shell) degree(args []string) error {
	if len(args) != 1 {
		return nil
	}
	deg, err := s.graph.Degree(args[0])
	if err != nil {
		return nil
	}

	return s.emit(fmt.Sprintf("%d\n", deg))
}

func (s *Shell) edgeExists(args []string) error {
	if len(args) != 2 {
		return s.emit("0\n")
	}

	return s.emit(boolText(s.graph.HasEdge(args[0], args[1])))
}

func (s *Shell) runBFS(args []string) error {
	if len(args) != 1 {
		return s.emit("\n")
	}
	res, err := bfs.BFS(s.graph, args[0], s.queue)
	if err != nil {
		return err
	}

	return s.emit(res.Text())
}

func (s *Shell) runDFS(args []string) error {
	if len(args) != 1 {
		return s.emit("\n")
	}
	res, err := dfs.DFS(s.graph, args[0], s.stack)
	if err != nil {
		return err
	}

	return s.emit(res.Text())
}

func (s *Shell) pathCheck(args []string) error {
	if len(args) != 2 {
		return s.emit("0\n")
	}
	ok, err := dfs.HasPath(s.graph, args[0], args[1], s.stack)
	if err != nil {
		return err
	}

	return s.emit(boolText(ok))
}

// runMST prints the Prim MST block. A disconnected graph prints nothing on
// the protocol stream; the condition is reported through the logger so it
// cannot be mistaken for a complete spanning tree.
func (s *Shell) runMST() error {
	res, err := mst.Prim(s.graph)
	if err != nil {
		s.log.WithError(err).Warn("shell: MST unavailable")

		return nil
	}

	return s.emit(res.Text())
}

func (s *Shell) shortestPath(args []string) error {
	if len(args) != 2 {
		return s.emit("0\n")
	}
	res, err := dijkstra.ShortestPath(s.graph, args[0], args[1])
	if err != nil {
		return err
	}

	return s.emit(res.Text())
}

func (s *Shell) printGraph() error {
	return s.emit(s.graph.Format(""))
}

// boolText renders the protocol's boolean sentinel lines.
func boolText(b bool) string {
	if b {
		return "1\n"
	}

	return "0\n"
}
