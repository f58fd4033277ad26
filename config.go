package vectors

// A Config controls parsing and code generation. It is never modified by
// this package, and the zero value is ready to use.
type Config struct {
	// Logger receives diagnostics. If nil, logging is disabled.
	Logger *Logger

	// DropUnterminated discards a record that is still being accumulated
	// when the input ends without a trailing blank line. By default such a
	// record is emitted and a warning is logged.
	DropUnterminated bool

	// Digest appends a BLAKE2b-256 comment of the raw input after the table.
	Digest bool

	// Source names the input in the digest comment and in log output.
	Source string

	// ElementType is the C element type of the byte arrays. Defaults to
	// DefaultElementType.
	ElementType string

	// RecordType is the C type of each aggregate. Defaults to
	// DefaultRecordType.
	RecordType string

	// TableName is the name of the final pointer table. Defaults to
	// DefaultTableName.
	TableName string
}

func (c Config) logger() *Logger {
	if c.Logger == nil {
		return NoopLogger()
	}
	return c.Logger
}

func (c Config) elementType() string {
	if c.ElementType == "" {
		return DefaultElementType
	}
	return c.ElementType
}

func (c Config) recordType() string {
	if c.RecordType == "" {
		return DefaultRecordType
	}
	return c.RecordType
}

func (c Config) tableName() string {
	if c.TableName == "" {
		return DefaultTableName
	}
	return c.TableName
}

func (c Config) source() string {
	if c.Source == "" {
		return "<stdin>"
	}
	return c.Source
}
