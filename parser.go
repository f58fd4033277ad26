// Package vectors converts NESSIE-style test-vector files into C array
// initializers for the Khazad test harness.
//
// A vector file is a sequence of blank-line separated blocks:
//
//	Set 1, vector#  0:
//	                           key=80000000000000000000000000000000
//	                         plain=0000000000000000
//	                        cipher=49A4CE32AC190E3F
//	                     decrypted=0000000000000000
//	            Iterated 100 times=6DDA8B2E9D0E7FFC
//	           Iterated 1000 times=B7AB1B3C8FE812D6
//
// A Parser turns such a stream into Records, and an Emitter prints each
// Record as byte arrays plus a vector_data_t aggregate, followed by a table
// of pointers to every aggregate.
package vectors

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// maxLineLen bounds a single input line.
const maxLineLen = 1 << 20

type parseState int

const (
	stateSeekingHeader parseState = iota
	stateAccumulating
)

// A Parser reads records from a line-oriented vector file. The sequence it
// produces is forward-only and cannot be restarted.
type Parser struct {
	sc    *bufio.Scanner
	cfg   Config
	log   *Logger
	state parseState
	cur   *Record
	line  int
	skip  int
	err   error
}

var _ RecordSource = (*Parser)(nil)

// NewParser returns a Parser reading from r.
func NewParser(r io.Reader, cfg Config) *Parser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLen)
	return &Parser{
		sc:  sc,
		cfg: cfg,
		log: cfg.logger(),
	}
}

// Next returns the next record in input order. It returns io.EOF once the
// input is exhausted. After any error, Next keeps returning that error.
func (p *Parser) Next() (*Record, error) {
	if p.err != nil {
		return nil, p.err
	}
	for p.sc.Scan() {
		p.line++
		line := strings.TrimSpace(p.sc.Text())

		switch p.state {
		case stateSeekingHeader:
			if !strings.HasPrefix(line, headerPrefix) {
				p.skip++
				p.log.LogSkipped(p.line)
				continue
			}
			rec, err := parseHeader(line)
			if err != nil {
				return nil, p.fail(fmt.Errorf("line %d: %w", p.line, err))
			}
			p.cur = rec
			p.state = stateAccumulating

		case stateAccumulating:
			if line == "" {
				p.log.LogRecord(p.cur, p.line)
				return p.yield(), nil
			}
			if err := p.addField(line); err != nil {
				return nil, p.fail(fmt.Errorf("line %d: %w", p.line, err))
			}
		}
	}
	if err := p.sc.Err(); err != nil {
		return nil, p.fail(fmt.Errorf("vectors: read input: %w", err))
	}

	if p.state == stateAccumulating {
		p.log.LogUnterminated(p.cur, p.cfg.DropUnterminated)
		rec := p.yield()
		if !p.cfg.DropUnterminated {
			return rec, nil
		}
	}
	return nil, p.fail(io.EOF)
}

// All returns the remaining records as a range-over-func sequence. Iteration
// stops after the first error, which is yielded with a nil record.
func (p *Parser) All() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		for {
			rec, err := p.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// Line is the number of input lines consumed so far.
func (p *Parser) Line() int {
	return p.line
}

// Skipped is the number of lines ignored while looking for a header.
func (p *Parser) Skipped() int {
	return p.skip
}

func (p *Parser) yield() *Record {
	rec := p.cur
	p.cur = nil
	p.state = stateSeekingHeader
	return rec
}

func (p *Parser) fail(err error) error {
	p.err = err
	p.cur = nil
	return err
}

// addField decodes one "key=hex" line into the current record.
func (p *Parser) addField(line string) error {
	key, valuestr, ok := strings.Cut(line, "=")
	if !ok {
		return fmt.Errorf("%w: no '=' in %q", ErrMalformedField, line)
	}
	key = strings.TrimSpace(key)

	value, err := hex.DecodeString(strings.TrimSpace(valuestr))
	if err != nil {
		return fmt.Errorf("%w: field %q: %w", ErrInvalidHex, key, err)
	}

	if n, ok := iterationLabels[key]; ok {
		p.cur.Iterated[n] = value
		return nil
	}
	if name, ok := semanticName(key); ok {
		p.cur.Fields[name] = value
		return nil
	}
	p.log.LogPassThrough(p.cur, key, p.line)
	p.cur.Fields[key] = value
	return nil
}

// parseHeader parses "Set <S>, ... #<V>: ..." into an empty record.
func parseHeader(line string) (*Record, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: no ',' in %q", ErrMalformedHeader, line)
	}

	// parts[0] starts with "Set ", so there are always at least two tokens.
	set := strings.Split(parts[0], " ")[1]

	hashed := strings.Split(parts[1], "#")
	if len(hashed) < 2 {
		return nil, fmt.Errorf("%w: no '#' in %q", ErrMalformedHeader, line)
	}
	vectorStr, _, ok := strings.Cut(hashed[1], ":")
	if !ok {
		return nil, fmt.Errorf("%w: no ':' in %q", ErrMalformedHeader, line)
	}
	vector, err := strconv.Atoi(strings.TrimSpace(vectorStr))
	if err != nil {
		return nil, fmt.Errorf("%w: vector number %q: %w", ErrMalformedHeader, vectorStr, err)
	}

	return newRecord(set, vector), nil
}

// semanticName reports the canonical semantic field name matching key,
// ignoring case.
func semanticName(key string) (string, bool) {
	for _, name := range SemanticFields {
		if strings.EqualFold(key, name) {
			return name, true
		}
	}
	return "", false
}
