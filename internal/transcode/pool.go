package transcode

import "context"

type job struct {
	ctx  context.Context
	in   string
	out  string
	done chan error
}

// Pool runs conversions on a fixed set of workers so a burst of voice notes
// cannot spawn an unbounded number of ffmpeg processes. Convert blocks the
// calling handler until its own job finishes; other handlers keep running.
type Pool struct {
	conv Converter
	jobs chan job
}

// NewPool starts workers goroutines over conv. workers < 1 is treated as 1.
func NewPool(conv Converter, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{conv: conv, jobs: make(chan job)}
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for j := range p.jobs {
		j.done <- p.conv.Convert(j.ctx, j.in, j.out)
	}
}

// Available asks the wrapped converter.
func (p *Pool) Available() error { return p.conv.Available() }

// Convert submits the job and waits for its result.
func (p *Pool) Convert(ctx context.Context, in, out string) error {
	j := job{ctx: ctx, in: in, out: out, done: make(chan error, 1)}
	p.jobs <- j
	return <-j.done
}

// Close stops the workers once queued jobs drain.
func (p *Pool) Close() { close(p.jobs) }
