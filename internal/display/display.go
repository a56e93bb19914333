// Package display repaints a multi-line frame in place on a plain terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Display redraws the output of a draw func whenever it is invalidated.
// draw is called from the display goroutine and must be safe for that.
type Display struct {
	mu        sync.Mutex
	writer    io.Writer
	draw      func() string
	dirty     chan struct{}
	done      chan struct{}
	wg        sync.WaitGroup // Ensures goroutine exits before Stop() returns
	active    bool
	lastFrame string
	frames    int
}

// New creates a new Display writing to the given writer.
func New(w io.Writer, draw func() string) *Display {
	return &Display{
		writer: w,
		draw:   draw,
		dirty:  make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Start begins the repaint loop and draws the first frame.
func (d *Display) Start() {
	d.mu.Lock()
	if d.active {
		d.mu.Unlock()
		return
	}
	d.active = true
	d.wg.Add(1)
	d.mu.Unlock()

	go d.updateLoop()
}

// Stop halts the repaint loop after drawing a final frame.
// Blocks until the update goroutine has exited.
func (d *Display) Stop() {
	d.mu.Lock()
	if !d.active {
		d.mu.Unlock()
		return
	}
	d.active = false
	d.mu.Unlock()

	close(d.done)
	d.wg.Wait()
	d.render()
}

// Invalidate requests a repaint. It never blocks and coalesces bursts, so it
// can be handed to the progress model as its redraw callback.
func (d *Display) Invalidate() {
	select {
	case d.dirty <- struct{}{}:
	default:
	}
}

// Frames returns how many frames have been written.
func (d *Display) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

func (d *Display) updateLoop() {
	defer d.wg.Done()
	d.render()
	for {
		select {
		case <-d.dirty:
			d.render()
		case <-d.done:
			return
		}
	}
}

// render draws the current frame over the previous one.
func (d *Display) render() {
	frame := d.draw()

	d.mu.Lock()
	defer d.mu.Unlock()

	// Only update if changed (reduces flicker)
	if frame == d.lastFrame && d.frames > 0 {
		return
	}

	var b strings.Builder
	if d.frames > 0 {
		if up := strings.Count(d.lastFrame, "\n"); up > 0 {
			fmt.Fprintf(&b, "\033[%dA", up)
		}
		b.WriteString("\r\033[J")
	}
	b.WriteString(frame)
	b.WriteString("\n")

	// Cursor sits one line below the frame, so the next repaint moves up
	// one line per frame line.
	d.lastFrame = frame + "\n"
	d.frames++
	io.WriteString(d.writer, b.String())
}
