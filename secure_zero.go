package vectors

import "runtime"

// secureZero zeroes the provided byte slice. runtime.KeepAlive stops the
// compiler from optimizing the writes away.
func secureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// discard zeroes and releases the field payloads of an emitted record.
func (r *Record) discard() {
	for k, b := range r.Fields {
		secureZero(b)
		delete(r.Fields, k)
	}
	for n, b := range r.Iterated {
		secureZero(b)
		delete(r.Iterated, n)
	}
}
