package common

// WipeByteArray overwrites b with zeros. Used for bearer tokens read from the
// terminal once they have been copied into the session.
//
// A nil slice is ignored.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
