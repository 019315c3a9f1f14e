package common

// WipeByteArray overwrites the contents of b with zeros. Use it to clear
// passwords and other secrets once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
