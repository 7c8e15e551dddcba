package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read parses a graph in the plain-text edge-list format:
//
//	n m
//	u v   (exactly m lines, 0-indexed endpoints)
//
// Blank lines are skipped. Self-loops and duplicate edges are accepted and
// ignored, so Size() may be smaller than m. Any other inconsistency (bad
// header, non-integer token, endpoint outside [0, n), fewer than m edge
// lines) is reported as ErrMalformedInput wrapped with the line number.
// Trailing content after the m-th edge is ignored.
//
// Complexity: O(n + m·deg) time.
func Read(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		line   int
		header bool
		n, m   int
		edges  int
		g      *Graph
		err    error
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		a, b, perr := parsePair(text)
		if perr != nil {
			return nil, fmt.Errorf("line %d: %v: %w", line, perr, ErrMalformedInput)
		}
		if !header {
			if a < 0 || b < 0 {
				return nil, fmt.Errorf("line %d: negative header %d %d: %w", line, a, b, ErrMalformedInput)
			}
			n, m = a, b
			if g, err = New(n); err != nil {
				return nil, err
			}
			header = true
			if m == 0 {
				break
			}
			continue
		}
		if err = g.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("line %d: edge %d %d out of range [0,%d): %w", line, a, b, n, ErrMalformedInput)
		}
		edges++
		if edges == m {
			break
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %v: %w", err, ErrMalformedInput)
	}
	if !header {
		return nil, fmt.Errorf("missing header: %w", ErrMalformedInput)
	}
	if edges < m {
		return nil, fmt.Errorf("expected %d edges, found %d: %w", m, edges, ErrMalformedInput)
	}

	return g, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Write emits g in the format accepted by Read, listing every edge once as
// "u v" with u < v, in ascending (u, v) order.
func Write(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.Order(), g.Size()); err != nil {
		return err
	}

	var u, v int
	for u = range g.adj {
		for _, v = range g.adj[u] {
			if v <= u {
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d %d\n", u, v); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// parsePair splits a line into exactly two integers.
func parsePair(text string) (int, int, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}
