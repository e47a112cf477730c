package progress

import (
	"fmt"
	"io"
	"os"
	"time"
)

// ProgressBar reports how many bytes of an output have been written
type ProgressBar struct {
	total       int64
	current     int64
	startTime   time.Time
	lastUpdate  time.Time
	output      io.Writer
	enabled     bool
	description string
}

// NewProgressBar creates a new progress bar for total bytes
func NewProgressBar(total int64, description string) *ProgressBar {
	return &ProgressBar{
		total:       total,
		startTime:   time.Now(),
		lastUpdate:  time.Now(),
		output:      os.Stderr, // stdout may carry the generated bytes
		enabled:     true,
		description: description,
	}
}

// SetOutput redirects rendering.
func (p *ProgressBar) SetOutput(w io.Writer) {
	p.output = w
}

// Disable disables the progress bar
func (p *ProgressBar) Disable() {
	p.enabled = false
}

// Enable enables the progress bar
func (p *ProgressBar) Enable() {
	p.enabled = true
}

// Update adds n written bytes
func (p *ProgressBar) Update(n int64) {
	p.current += n
	p.render()
}

// Set sets the current progress
func (p *ProgressBar) Set(n int64) {
	p.current = n
	p.render()
}

// Write counts p as written, so the bar can sit behind an io.MultiWriter.
func (p *ProgressBar) Write(b []byte) (int, error) {
	p.Update(int64(len(b)))
	return len(b), nil
}

func (p *ProgressBar) render() {
	if !p.enabled {
		return
	}

	// Throttle updates to avoid too much output
	now := time.Now()
	if now.Sub(p.lastUpdate) < 100*time.Millisecond && p.current < p.total {
		return
	}
	p.lastUpdate = now

	var percent float64
	if p.total > 0 {
		percent = float64(p.current) / float64(p.total) * 100
	}

	elapsed := time.Since(p.startTime)

	var eta time.Duration
	if p.current > 0 && p.total > 0 {
		rate := float64(p.current) / elapsed.Seconds()
		if rate > 0 {
			remaining := float64(p.total-p.current) / rate
			eta = time.Duration(remaining) * time.Second
		}
	}

	barWidth := 40
	filled := int(float64(barWidth) * percent / 100)
	if filled > barWidth {
		filled = barWidth
	}

	bar := make([]byte, barWidth)
	for i := 0; i < filled; i++ {
		bar[i] = '='
	}
	if filled < barWidth {
		bar[filled] = '>'
		for i := filled + 1; i < barWidth; i++ {
			bar[i] = '-'
		}
	}

	output := fmt.Sprintf("[%s] %s/%s (%.1f%%) | Elapsed: %s", string(bar), FormatBytes(p.current), FormatBytes(p.total), percent, formatDuration(elapsed))
	if p.description != "" {
		output = p.description + " " + output
	}
	output = "\r" + output
	if eta > 0 && p.current < p.total {
		output += fmt.Sprintf(" | ETA: %s", formatDuration(eta))
	}

	fmt.Fprint(p.output, output)
}

// Finish marks the bar complete
func (p *ProgressBar) Finish() {
	if !p.enabled {
		return
	}

	p.current = p.total
	p.lastUpdate = time.Time{}
	p.render()
	fmt.Fprint(p.output, "\n")
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
