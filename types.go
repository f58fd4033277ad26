package vectors

import (
	"strconv"
)

// Iterations is the repetition count attached to an iteration field.
type Iterations uint32

// Name returns the C member name for the iteration field, e.g. "iter1000".
func (n Iterations) Name() string {
	return "iter" + strconv.FormatUint(uint64(n), 10)
}

// A Value is an optionally present field payload. Absent values are emitted
// as NULL.
type Value struct {
	Bytes   []byte
	Present bool
}

// A Record is one parsed "Set/vector" block and its hex-decoded fields.
type Record struct {
	// Set is the set identifier in its original textual form.
	Set string

	// Vector is the vector number within the set.
	Vector int

	// Fields holds the semantic fields under their lower-case name, and any
	// unrecognised field under its verbatim input name.
	Fields map[string][]byte

	// Iterated holds the "Iterated N times" fields.
	Iterated map[Iterations][]byte
}

func newRecord(set string, vector int) *Record {
	return &Record{
		Set:      set,
		Vector:   vector,
		Fields:   make(map[string][]byte),
		Iterated: make(map[Iterations][]byte),
	}
}

// Identifier returns the symbol prefix "set{S}vector{V}" that namespaces the
// record's declarations.
func (r *Record) Identifier() string {
	return "set" + r.Set + "vector" + strconv.Itoa(r.Vector)
}

// Field returns the named field.
func (r *Record) Field(name string) Value {
	b, ok := r.Fields[name]
	return Value{Bytes: b, Present: ok}
}

// Iteration returns the iteration field for n.
func (r *Record) Iteration(n Iterations) Value {
	b, ok := r.Iterated[n]
	return Value{Bytes: b, Present: ok}
}

// Len is the number of fields in the record, pass-through fields included.
func (r *Record) Len() int {
	return len(r.Fields) + len(r.Iterated)
}

// A RecordSource yields records one at a time, returning io.EOF once the
// sequence is exhausted. *Parser implements it.
type RecordSource interface {
	Next() (*Record, error)
}

// Stats summarises one Transpile run.
type Stats struct {
	// Records is the number of aggregates emitted.
	Records int

	// Arrays is the number of byte-array declarations emitted.
	Arrays int

	// Skipped is the number of input lines ignored outside of records.
	Skipped int
}
