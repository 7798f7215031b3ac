package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"survey-distance-service/internal/domain"
	"sync"
)

// ConsoleSource collects points interactively, one "(lon, lat)" per line.
// The first accepted point is the reference. An empty line or EOF ends input;
// a line that fails to parse is reported and asked for again.
//
// The source owns in: a single reader goroutine feeds every Points call, so
// lines left after an empty line are kept for the next call. Close stops it.
type ConsoleSource struct {
	in  io.Reader
	out io.Writer

	start   sync.Once
	stop    sync.Once
	done    chan struct{}
	lines   chan string
	readErr chan error
}

func NewConsoleSource(in io.Reader, out io.Writer) *ConsoleSource {
	return &ConsoleSource{
		in:      in,
		out:     out,
		done:    make(chan struct{}),
		lines:   make(chan string),
		readErr: make(chan error, 1),
	}
}

// Close releases the reader goroutine once it next hands over a line.
// A Read already blocked on in returns only when in does.
func (c *ConsoleSource) Close() error {
	c.stop.Do(func() { close(c.done) })
	return nil
}

// Points blocks until input ends or ctx is cancelled. Cancellation returns
// ctx.Err() and discards any points collected so far.
func (c *ConsoleSource) Points(ctx context.Context) ([]domain.GeoPoint, error) {
	c.start.Do(func() { go c.scanLines() })

	fmt.Fprintln(c.out, "Input format: (longitude, latitude)")
	fmt.Fprintln(c.out, "The first point is the reference; distances are reported in millimeters.")
	fmt.Fprintln(c.out, "Enter an empty line to finish.")
	fmt.Fprintln(c.out)

	var points []domain.GeoPoint
	for {
		fmt.Fprintf(c.out, "Point %d: ", len(points)+1)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return nil, ctx.Err()
		case line, ok = <-c.lines:
		}

		if !ok {
			fmt.Fprintln(c.out)
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			select {
			case err := <-c.readErr:
				if err != nil {
					return nil, fmt.Errorf("console source: read input: %w", err)
				}
			default:
			}
			return points, nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return points, nil
		}

		p, err := domain.ParseGeoPoint(line)
		if err != nil {
			slog.DebugContext(ctx, "console input rejected", "line", line, "err", err)
			fmt.Fprintln(c.out, "  could not parse coordinate, please re-enter")
			continue
		}

		points = append(points, p)
		if len(points) == 1 {
			fmt.Fprintf(c.out, "  set as reference: %s\n", p)
		} else {
			fmt.Fprintf(c.out, "  added: %s\n", p)
		}
	}
}

func (c *ConsoleSource) scanLines() {
	defer close(c.lines)

	sc := bufio.NewScanner(c.in)
	for sc.Scan() {
		select {
		case c.lines <- sc.Text():
		case <-c.done:
			return
		}
	}
	c.readErr <- sc.Err()
}
