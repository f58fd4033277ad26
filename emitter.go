package vectors

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const upperHex = "0123456789ABCDEF"

// FormatBytes renders b as a C initializer list: each byte as "0x" followed
// by two upper-case hex digits, separated by ", ".
func FormatBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(b)*6-2)
	for i, c := range b {
		if i > 0 {
			buf = append(buf, ',', ' ')
		}
		buf = append(buf, '0', 'x', upperHex[c>>4], upperHex[c&0x0f])
	}
	return string(buf)
}

// An Emitter writes C declarations for records in the order they are given.
// Output is flushed after every record. Close writes the final table.
type Emitter struct {
	w      *bufio.Writer
	cfg    Config
	names  []string
	arrays int
	digest []byte
	closed bool
}

// NewEmitter returns an Emitter writing to w.
func NewEmitter(w io.Writer, cfg Config) *Emitter {
	return &Emitter{
		w:   bufio.NewWriter(w),
		cfg: cfg,
	}
}

// Emit writes the byte arrays for every present field of r, followed by the
// aggregate declaration referencing them. Absent fields are written as NULL.
func (e *Emitter) Emit(r *Record) error {
	if e.closed {
		return ErrEmitterClosed
	}
	if r.Set == "" {
		return fmt.Errorf("%w: vector %d", ErrMissingSet, r.Vector)
	}
	// set_num is a uint32_t in the harness; anything else would not compile.
	if _, err := strconv.ParseUint(r.Set, 10, 32); err != nil {
		return fmt.Errorf("%w: %q", ErrNonNumericSet, r.Set)
	}

	id := r.Identifier()
	for _, name := range SemanticFields {
		e.writeArray(id+name, r.Field(name))
	}
	for _, n := range IterationCounts {
		e.writeArray(id+n.Name(), r.Iteration(n))
	}

	fmt.Fprintf(e.w, "const %s %s = {\n", e.cfg.recordType(), id)
	fmt.Fprintf(e.w, "    .set_num = %s,\n", r.Set)
	fmt.Fprintf(e.w, "    .vector_num = %d,\n", r.Vector)
	for _, name := range SemanticFields {
		e.writeMember(name, id+name, r.Field(name))
	}
	for _, n := range IterationCounts {
		e.writeMember(n.Name(), id+n.Name(), r.Iteration(n))
	}
	e.w.WriteString("};\n\n")

	e.names = append(e.names, id)
	return e.w.Flush()
}

// SetDigest records a digest of the input to be written as a comment after
// the table.
func (e *Emitter) SetDigest(sum []byte) {
	e.digest = sum
}

// Close writes the table of pointers to every emitted aggregate and flushes
// the output. Calling Close more than once has no effect.
func (e *Emitter) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	fmt.Fprintf(e.w, "const %s * const %s[] = {\n", e.cfg.recordType(), e.cfg.tableName())
	for _, id := range e.names {
		fmt.Fprintf(e.w, "    &%s,\n", id)
	}
	e.w.WriteString("};\n")

	if e.digest != nil {
		source := strings.ReplaceAll(e.cfg.source(), "*/", "* /")
		fmt.Fprintf(e.w, "\n/* blake2b-256 %s: %s */\n", source, hex.EncodeToString(e.digest))
	}
	return e.w.Flush()
}

// Identifiers returns the identifiers emitted so far, in order.
func (e *Emitter) Identifiers() []string {
	return append([]string(nil), e.names...)
}

// Arrays is the number of byte-array declarations written so far.
func (e *Emitter) Arrays() int {
	return e.arrays
}

func (e *Emitter) writeArray(name string, v Value) {
	if !v.Present {
		return
	}
	fmt.Fprintf(e.w, "const %s %s[] = { %s };\n", e.cfg.elementType(), name, FormatBytes(v.Bytes))
	e.arrays++
}

func (e *Emitter) writeMember(member, array string, v Value) {
	if !v.Present {
		array = nullPlaceholder
	}
	fmt.Fprintf(e.w, "    .%s = %s,\n", member, array)
}
