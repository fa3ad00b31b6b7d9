package field

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// writeBufferSize bounds the memory a run holds regardless of field size.
const writeBufferSize = 64 * 1024

// Source yields uniform floats in [0, 1). *Stream is the production Source.
type Source interface {
	Float64() float64
}

// Stats summarises a finished run.
type Stats struct {
	Cells int64 // cells written, always Width*Height on success
	Alive int64 // cells written as "1"
	Bytes int64 // bytes handed to the sink
}

// AliveRatio returns Alive/Cells, or 0 for an empty run.
func (s Stats) AliveRatio() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.Alive) / float64(s.Cells)
}

// Generate writes the field described by cfg to w using a fresh Stream
// seeded with cfg.Seed.
//
// Example:
//
//	var buf bytes.Buffer
//	_, err := field.Generate(field.Config{Seed: 0, Width: 2, Height: 2}, &buf)
//	// buf.String() == "2 2 0 0 0 0 "
func Generate(cfg Config, w io.Writer) (Stats, error) {
	return GenerateWith(cfg, NewStream(cfg.Seed), w)
}

// GenerateWith writes the field described by cfg to w, drawing exactly
// cfg.Width*cfg.Height values from src in row-major order. cfg.Seed is
// ignored; src is expected to be seeded already.
//
// Nothing is written when cfg is invalid. A write error aborts the run and
// leaves whatever was already flushed in w.
func GenerateWith(cfg Config, src Source, w io.Writer) (Stats, error) {
	var stats Stats
	if err := cfg.Validate(); err != nil {
		return stats, err
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriterSize(cw, writeBufferSize)

	var header []byte
	header = strconv.AppendInt(header, int64(cfg.Width), 10)
	header = append(header, ' ')
	header = strconv.AppendInt(header, int64(cfg.Height), 10)
	header = append(header, ' ')
	if _, err := bw.Write(header); err != nil {
		return stats, fmt.Errorf("%w: write header: %w", ErrIO, err)
	}

	alive := [2]byte{'1', ' '}
	dead := [2]byte{'0', ' '}
	p := cfg.AliveProbability
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			token := dead[:]
			if src.Float64() < p {
				token = alive[:]
				stats.Alive++
			}
			if _, err := bw.Write(token); err != nil {
				stats.Bytes = cw.n
				return stats, fmt.Errorf("%w: write cell (%d,%d): %w", ErrIO, x, y, err)
			}
			stats.Cells++
		}
	}

	err := bw.Flush()
	stats.Bytes = cw.n
	if err != nil {
		return stats, fmt.Errorf("%w: flush: %w", ErrIO, err)
	}
	return stats, nil
}

// countingWriter tracks how many bytes reached the underlying sink.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
