package vectors

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type EmitterSuite struct {
	out *bytes.Buffer
	e   *Emitter
}

var _ = check.Suite(&EmitterSuite{})

func (s *EmitterSuite) SetUpTest(c *check.C) {
	s.out = new(bytes.Buffer)
	s.e = NewEmitter(s.out, Config{})
}

func record(set string, vector int) *Record {
	return newRecord(set, vector)
}

func (s *EmitterSuite) TestFormatBytes(c *check.C) {
	c.Assert(FormatBytes(nil), check.Equals, "")
	c.Assert(FormatBytes([]byte{0x0A}), check.Equals, "0x0A")
	c.Assert(FormatBytes([]byte{0x00, 0x01, 0xFF, 0xab}), check.Equals, "0x00, 0x01, 0xFF, 0xAB")
}

func (s *EmitterSuite) TestFormatBytesRoundTrip(c *check.C) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		in := make([]byte, rng.IntN(64)+1)
		for j := range in {
			in[j] = byte(rng.UintN(256))
		}

		var out []byte
		for _, lit := range strings.Split(FormatBytes(in), ", ") {
			c.Assert(lit, check.HasLen, 4)
			c.Assert(lit[:2], check.Equals, "0x")
			c.Assert(strings.ToUpper(lit[2:]), check.Equals, lit[2:])
			v, err := strconv.ParseUint(lit[2:], 16, 8)
			c.Assert(err, check.IsNil)
			out = append(out, byte(v))
		}
		c.Assert(out, check.DeepEquals, in)
	}
}

func (s *EmitterSuite) TestKeyOnly(c *check.C) {
	r := record("1", 2)
	r.Fields[FieldKey] = []byte{0x00, 0x01, 0x02}

	c.Assert(s.e.Emit(r), check.IsNil)
	c.Assert(s.e.Close(), check.IsNil)

	c.Assert(s.out.String(), check.Equals, `const uint8_t set1vector2key[] = { 0x00, 0x01, 0x02 };
const vector_data_t set1vector2 = {
    .set_num = 1,
    .vector_num = 2,
    .key = set1vector2key,
    .plain = NULL,
    .cipher = NULL,
    .decrypted = NULL,
    .iter100 = NULL,
    .iter1000 = NULL,
    .iter100000000 = NULL,
};

const vector_data_t * const test_vectors[] = {
    &set1vector2,
};
`)
	c.Assert(s.e.Arrays(), check.Equals, 1)
}

func (s *EmitterSuite) TestIterationOnly(c *check.C) {
	r := record("3", 4)
	r.Iterated[Iter1000] = []byte{0xFF}

	c.Assert(s.e.Emit(r), check.IsNil)

	out := s.out.String()
	c.Assert(strings.HasPrefix(out, "const uint8_t set3vector4iter1000[] = { 0xFF };\n"), check.Equals, true)
	c.Assert(strings.Count(out, "const uint8_t"), check.Equals, 1)
	c.Assert(strings.Contains(out, "    .iter1000 = set3vector4iter1000,\n"), check.Equals, true)
	for _, name := range SemanticFields {
		c.Assert(strings.Contains(out, "    ."+name+" = NULL,\n"), check.Equals, true)
	}
}

func (s *EmitterSuite) TestFieldOrder(c *check.C) {
	r := record("1", 0)
	r.Iterated[Iter100000000] = []byte{5}
	r.Iterated[Iter100] = []byte{4}
	r.Fields[FieldDecrypted] = []byte{3}
	r.Fields[FieldCipher] = []byte{2}
	r.Fields[FieldPlain] = []byte{1}
	r.Fields[FieldKey] = []byte{0}
	// Pass-through fields are not emitted.
	r.Fields["tweak"] = []byte{9}

	c.Assert(s.e.Emit(r), check.IsNil)

	var arrays []string
	for _, line := range strings.Split(s.out.String(), "\n") {
		if strings.HasPrefix(line, "const uint8_t ") {
			arrays = append(arrays, strings.Fields(line)[2])
		}
	}
	c.Assert(arrays, check.DeepEquals, []string{
		"set1vector0key[]",
		"set1vector0plain[]",
		"set1vector0cipher[]",
		"set1vector0decrypted[]",
		"set1vector0iter100[]",
		"set1vector0iter100000000[]",
	})
	c.Assert(strings.Contains(s.out.String(), "tweak"), check.Equals, false)
	c.Assert(strings.Contains(s.out.String(), "    .iter1000 = NULL,\n"), check.Equals, true)
}

func (s *EmitterSuite) TestEmptyRecord(c *check.C) {
	c.Assert(s.e.Emit(record("1", 9)), check.IsNil)
	c.Assert(strings.Contains(s.out.String(), "const uint8_t"), check.Equals, false)
	c.Assert(strings.Count(s.out.String(), " = NULL,\n"), check.Equals, 7)
}

func (s *EmitterSuite) TestEmptyTable(c *check.C) {
	c.Assert(s.e.Close(), check.IsNil)
	c.Assert(s.out.String(), check.Equals, "const vector_data_t * const test_vectors[] = {\n};\n")
}

func (s *EmitterSuite) TestTableOrder(c *check.C) {
	for _, v := range []int{5, 1, 3} {
		c.Assert(s.e.Emit(record("2", v)), check.IsNil)
	}
	c.Assert(s.e.Close(), check.IsNil)

	c.Assert(s.e.Identifiers(), check.DeepEquals, []string{"set2vector5", "set2vector1", "set2vector3"})
	c.Assert(strings.HasSuffix(s.out.String(),
		"const vector_data_t * const test_vectors[] = {\n"+
			"    &set2vector5,\n"+
			"    &set2vector1,\n"+
			"    &set2vector3,\n"+
			"};\n"), check.Equals, true)
}

func (s *EmitterSuite) TestInvalidSet(c *check.C) {
	err := s.e.Emit(record("", 1))
	c.Assert(errors.Is(err, ErrMissingSet), check.Equals, true)

	for _, set := range []string{"A", "1a", "-1", "4294967296"} {
		err = s.e.Emit(record(set, 1))
		c.Assert(errors.Is(err, ErrNonNumericSet), check.Equals, true, check.Commentf("set %q", set))
	}
	c.Assert(s.out.Len(), check.Equals, 0)
}

func (s *EmitterSuite) TestEmitAfterClose(c *check.C) {
	c.Assert(s.e.Close(), check.IsNil)
	c.Assert(s.e.Emit(record("1", 1)), check.Equals, ErrEmitterClosed)
	c.Assert(s.e.Close(), check.IsNil)
	c.Assert(strings.Count(s.out.String(), "test_vectors"), check.Equals, 1)
}

func (s *EmitterSuite) TestDigestTrailer(c *check.C) {
	e := NewEmitter(s.out, Config{Source: "vectors.txt"})
	e.SetDigest([]byte{0xde, 0xad, 0xbe, 0xef})
	c.Assert(e.Close(), check.IsNil)
	c.Assert(strings.HasSuffix(s.out.String(), "};\n\n/* blake2b-256 vectors.txt: deadbeef */\n"), check.Equals, true)
}

func (s *EmitterSuite) TestCustomNames(c *check.C) {
	e := NewEmitter(s.out, Config{
		ElementType: "unsigned char",
		RecordType:  "khazad_vector_t",
		TableName:   "khazad_vectors",
	})
	r := record("1", 1)
	r.Fields[FieldPlain] = []byte{0x10}
	c.Assert(e.Emit(r), check.IsNil)
	c.Assert(e.Close(), check.IsNil)

	out := s.out.String()
	c.Assert(strings.Contains(out, "const unsigned char set1vector1plain[] = { 0x10 };\n"), check.Equals, true)
	c.Assert(strings.Contains(out, "const khazad_vector_t set1vector1 = {\n"), check.Equals, true)
	c.Assert(strings.Contains(out, "const khazad_vector_t * const khazad_vectors[] = {\n"), check.Equals, true)
}
