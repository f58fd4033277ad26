package vectors

import "errors"

// Semantic field names, in the order the emitter checks them.
const (
	FieldKey       = "key"
	FieldPlain     = "plain"
	FieldCipher    = "cipher"
	FieldDecrypted = "decrypted"
)

// Iteration counts that tag the "Iterated N times" fields.
const (
	Iter100       Iterations = 100
	Iter1000      Iterations = 1000
	Iter100000000 Iterations = 100000000
)

// headerPrefix marks the first line of every record.
const headerPrefix = "Set "

// Defaults for the generated C declarations. They match the vector_data_t
// definition in khazad-vectors-test.c.
const (
	DefaultElementType = "uint8_t"
	DefaultRecordType  = "vector_data_t"
	DefaultTableName   = "test_vectors"
)

// nullPlaceholder is written for every absent field of an aggregate.
const nullPlaceholder = "NULL"

// SemanticFields lists the byte fields emitted for every record.
var SemanticFields = []string{FieldKey, FieldPlain, FieldCipher, FieldDecrypted}

// IterationCounts lists the iteration fields emitted for every record.
var IterationCounts = []Iterations{Iter100, Iter1000, Iter100000000}

// iterationLabels translates the literal input labels to their iteration tag.
var iterationLabels = map[string]Iterations{
	"Iterated 100 times":  Iter100,
	"Iterated 1000 times": Iter1000,
	"Iterated 10^8 times": Iter100000000,
}

// Parsing errors.
var (
	// ErrMalformedHeader indicates a "Set " line without the
	// "Set <S>, ... #<V>: ..." comma/hash/colon structure.
	ErrMalformedHeader = errors.New("vectors: malformed set header")

	// ErrMalformedField indicates a field line without a '=' separator.
	ErrMalformedField = errors.New("vectors: malformed field line")

	// ErrInvalidHex indicates a field value that is not valid hexadecimal.
	ErrInvalidHex = errors.New("vectors: invalid hex value")
)

// Emission errors.
var (
	// ErrMissingSet indicates a record without a set identifier.
	ErrMissingSet = errors.New("vectors: record has no set identifier")

	// ErrNonNumericSet indicates a set identifier that cannot be written as
	// an unsigned integer initializer.
	ErrNonNumericSet = errors.New("vectors: set identifier is not numeric")

	// ErrEmitterClosed is returned by Emit after Close.
	ErrEmitterClosed = errors.New("vectors: emitter is closed")
)
