package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/muesli/termenv"
)

// progressBar redraws a single line as games complete. Safe for concurrent
// use.
type progressBar struct {
	mu      sync.Mutex
	w       io.Writer
	bar     progress.Model
	percent int
	drawn   bool
}

func newProgressBar(w io.Writer, noColor bool) *progressBar {
	opts := []progress.Option{progress.WithWidth(40)}
	if noColor {
		opts = append(opts, progress.WithColorProfile(termenv.Ascii), progress.WithFillCharacters('#', '-'))
	} else {
		opts = append(opts, progress.WithDefaultGradient())
	}
	return &progressBar{w: w, bar: progress.New(opts...), percent: -1}
}

// Update is a simulator.Config.Progress callback.
func (p *progressBar) Update(done, total int) {
	if total <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	// only redraw when the whole percentage changes
	pct := done * 100 / total
	if pct == p.percent && done != total {
		return
	}
	p.percent = pct
	p.drawn = true
	fmt.Fprintf(p.w, "\r%s %d/%d", p.bar.ViewAs(float64(done)/float64(total)), done, total)
}

// Finish ends the progress line.
func (p *progressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.drawn {
		fmt.Fprintln(p.w)
	}
}
