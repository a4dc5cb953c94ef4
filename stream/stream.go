// Package stream runs a registered pattern over an io.Reader in bounded
// memory. Input is read in fixed-size chunks, searched window by window, and
// matches are delivered through a callback with absolute stream offsets.
//
// Windows are cut at line boundaries when more input remains, so a match
// never goes unreported because a read boundary split it mid-line. Matches
// longer than the carried window (MaxLeftover bytes of unterminated line)
// are outside this package's contract.
package stream

import (
	"bytes"
	"io"

	"github.com/recapx/recap/pkg/recap"
)

// Config configures streaming search behavior. The zero value selects the
// defaults.
type Config struct {
	// BufferSize is the chunk size for reads from the io.Reader.
	// Default 64KB.
	BufferSize int

	// MaxLeftover caps the unterminated tail carried between windows, which
	// bounds memory on streams with very long lines. When the cap is hit
	// the oldest carried bytes are dropped. Default 1MB.
	MaxLeftover int
}

const (
	defaultBufferSize  = 64 * 1024
	defaultMaxLeftover = 1 << 20
)

func (c Config) withDefaults() Config {
	if c.BufferSize <= 0 {
		c.BufferSize = defaultBufferSize
	}
	if c.MaxLeftover <= 0 {
		c.MaxLeftover = defaultMaxLeftover
	}
	return c
}

// Match is one streaming match: the Match found in a search window plus the
// window's placement in the stream.
type Match struct {
	// StreamOffset is the absolute byte offset of the match start in the
	// stream.
	StreamOffset int64
	// Result is the underlying match. Its own offsets are relative to the
	// search window it was found in, not the stream.
	Result *recap.Match
}

// Find searches r for matches of p and calls fn for each one, in stream
// order. fn returning false stops the search early. The returned error is
// the reader's, never a match outcome: a stream with no matches is a normal
// completion.
func Find(p *recap.Pattern, r io.Reader, cfg Config, fn func(Match) bool) error {
	cfg = cfg.withDefaults()

	buf := make([]byte, 0, cfg.BufferSize)
	chunk := make([]byte, cfg.BufferSize)
	var base int64 // stream offset of buf[0]

	for {
		n, readErr := r.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		atEOF := readErr == io.EOF
		if readErr != nil && !atEOF {
			return readErr
		}

		// On EOF everything buffered is searchable. Before that, hold back
		// the tail after the last newline: the next read may extend it into
		// a longer match.
		searchable := len(buf)
		if !atEOF {
			if i := bytes.LastIndexByte(buf, '\n'); i >= 0 {
				searchable = i + 1
			} else if len(buf) <= cfg.MaxLeftover {
				searchable = 0
			}
		}

		if searchable > 0 {
			window := string(buf[:searchable])
			for _, m := range p.FindAll(window, -1) {
				if !fn(Match{StreamOffset: base + int64(m.Start()), Result: m}) {
					return nil
				}
			}
			base += int64(searchable)
			buf = buf[:copy(buf, buf[searchable:])]
		}

		if atEOF {
			return nil
		}

		if len(buf) > cfg.MaxLeftover {
			drop := len(buf) - cfg.MaxLeftover
			base += int64(drop)
			buf = buf[:copy(buf, buf[drop:])]
		}
	}
}
