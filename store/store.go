// Package store keeps the history of solver runs in a bolthold (bbolt) file
// and answers "best known labeling for this graph" queries, which the CLI
// uses to warm-start new runs.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"

	"github.com/katalvlaran/romandom/ga"
	"github.com/katalvlaran/romandom/roman"
)

// ErrNotFound indicates that no run matches the query.
var ErrNotFound = errors.New("store: run not found")

// Run is one persisted solver outcome.
type Run struct {
	ID             string  `json:"id" boltholdKey:"ID"`
	Graph          string  `json:"graph" boltholdIndex:"Graph"`
	Order          int     `json:"order"`
	Size           int     `json:"size"`
	Variant        string  `json:"variant"`
	Fitness        int     `json:"fitness" boltholdIndex:"Fitness"`
	Labels         []int   `json:"labels"`
	Seed           int64   `json:"seed"`
	Generations    int     `json:"generations"`
	Reason         string  `json:"reason"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
	CreatedAt      int64   `json:"createdAt" boltholdIndex:"CreatedAt"`
}

// NewRun captures res for the graph called name with the given order and size.
func NewRun(name string, order, size int, variant roman.Variant, res ga.Result) *Run {
	return &Run{
		Graph:          name,
		Order:          order,
		Size:           size,
		Variant:        variant.String(),
		Fitness:        res.Best.Cost,
		Labels:         res.Best.Labels.Ints(),
		Seed:           res.Seed,
		Generations:    res.Generations,
		Reason:         res.Reason.String(),
		ElapsedSeconds: res.Elapsed.Seconds(),
	}
}

// Labeling converts the stored labels back into a roman.Labeling.
func (r *Run) Labeling() (roman.Labeling, error) {
	return roman.FromInts(r.Labels)
}

// Store wraps an open bolthold database.
type Store struct {
	db *bolthold.Store
}

// Open opens (creating if needed) the run database at path.
func Open(path string) (*Store, error) {
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      5 * time.Second,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts r, assigning a UUID and creation time when they are unset.
func (s *Store) Save(r *Run) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().UnixNano()
	}
	if err := s.db.Insert(r.ID, r); err != nil {
		return fmt.Errorf("store: save %s: %w", r.ID, err)
	}

	return nil
}

// Get returns the run with the given id.
func (s *Store) Get(id string) (*Run, error) {
	r := &Run{}
	if err := s.db.Get(id, r); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return nil, fmt.Errorf("id %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("store: get %s: %w", id, err)
	}

	return r, nil
}

// Best returns the lowest-fitness run recorded for graph; ties go to the
// earliest run.
func (s *Store) Best(graph string) (*Run, error) {
	var runs []Run
	q := bolthold.Where("Graph").Eq(graph).SortBy("Fitness", "CreatedAt").Limit(1)
	if err := s.db.Find(&runs, q); err != nil {
		return nil, fmt.Errorf("store: best %s: %w", graph, err)
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("graph %s: %w", graph, ErrNotFound)
	}

	return &runs[0], nil
}

// List returns the runs of graph (all runs when graph is empty), oldest first.
func (s *Store) List(graph string) ([]Run, error) {
	q := &bolthold.Query{}
	if graph != "" {
		q = bolthold.Where("Graph").Eq(graph)
	}
	var runs []Run
	if err := s.db.Find(&runs, q.SortBy("CreatedAt")); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	return runs, nil
}
