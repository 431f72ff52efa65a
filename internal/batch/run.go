package batch

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gosteel/internal/beam"
	"github.com/alexiusacademia/gosteel/internal/criteria"
)

// Outcome is the check of one member. Exactly one of Result and Err is set.
type Outcome struct {
	Index       int
	Name        string
	Kind        string
	Combination string // governing load combination ID, empty for direct loads
	Result      *beam.Result
	Err         error
}

// Report collects the outcomes of a run in input order
type Report struct {
	RunID    string
	Design   criteria.DesignType
	Started  time.Time
	Duration time.Duration
	Outcomes []Outcome
}

// Failed counts the members that could not be checked
func (r *Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// Inadequate counts the checked members with a ratio of 1 or more
func (r *Report) Inadequate() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err == nil && !o.Result.IsAdequate {
			n++
		}
	}
	return n
}

// Run checks every member with at most workers goroutines (GOMAXPROCS when
// workers < 1). Member failures are recorded in their outcome; the returned
// error is only the context's, and members skipped after cancellation carry
// it too.
func Run(ctx context.Context, members []Member, cfg criteria.Config, workers int) (*Report, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	rep := &Report{
		RunID:    uuid.NewString(),
		Design:   cfg.Design,
		Started:  time.Now(),
		Outcomes: make([]Outcome, len(members)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range members {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				rep.Outcomes[i] = Outcome{Index: i, Name: m.Beam.Name, Err: err}
				return err
			}
			rep.Outcomes[i] = check(i, m, cfg)
			return nil
		})
	}
	err := g.Wait()
	rep.Duration = time.Since(rep.Started)
	return rep, err
}

func check(i int, m Member, cfg criteria.Config) Outcome {
	o := Outcome{Index: i, Name: m.Beam.Name}
	if m.Beam.Section != nil {
		o.Kind = string(m.Beam.Section.Kind())
	}
	o.Result, o.Combination, o.Err = m.Analyze(cfg)
	if o.Err != nil {
		o.Result = nil
	}
	return o
}
