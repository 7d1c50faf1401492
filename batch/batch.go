package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"playparse/play"
)

// Stats counts the outcome of a batch. It is informational; callers read
// individual failures from each description.
type Stats struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Errors  int `json:"errors"`
}

func (s Stats) String() string {
	return fmt.Sprintf("%d total, %d OK, %d errors", s.Total, s.Success, s.Errors)
}

func (s *Stats) add(desc *play.Description) {
	s.Total++
	if desc.IsError {
		s.Errors++
	} else {
		s.Success++
	}
}

// Parser parses a single play description.
type Parser interface {
	Parse(play string) *play.Description
}

// Runner parses batches of play descriptions across a fixed number of
// workers. Results keep the input order.
type Runner struct {
	parser  Parser
	workers int
}

func NewRunner(parser Parser, workers int) *Runner {
	if parser == nil {
		parser = play.Default()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		parser:  parser,
		workers: workers,
	}
}

// Run parses every play. A failing play never stops the batch. Plays not
// yet started when ctx is done are reported as errors.
func (r *Runner) Run(ctx context.Context, plays []string) ([]*play.Description, Stats) {
	results := make([]*play.Description, len(plays))
	jobs := make(chan int)

	wg := sync.WaitGroup{}
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.parser.Parse(plays[i])
			}
		}()
	}

dispatch:
	for i := range plays {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	stats := Stats{}
	for i, desc := range results {
		if desc == nil {
			desc = canceled(ctx.Err())
			results[i] = desc
		}
		stats.add(desc)
	}
	return results, stats
}

func canceled(err error) *play.Description {
	return &play.Description{
		IsError: true,
		Segments: []*play.Segment{{
			Type:  play.TypeError,
			Done:  true,
			Notes: stringPtr(fmt.Sprintf("EXCEPTION: %v", err)),
		}},
	}
}

func stringPtr(s string) *string {
	return &s
}

// Parse runs a batch with the default machine.
func Parse(ctx context.Context, plays []string, workers int) ([]*play.Description, Stats) {
	return NewRunner(nil, workers).Run(ctx, plays)
}
