package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Fields computes one xxHash64 over several strings, separating them with a
// NUL byte so field boundaries cannot alias ("ab","c" vs "a","bc").
func Fields(fields ...string) uint64 {
	if len(fields) == 1 {
		return ID(fields[0])
	}

	d := xxhash.New()
	for i, f := range fields {
		if i > 0 {
			_, _ = d.Write([]byte{0})
		}
		_, _ = d.WriteString(f)
	}

	return d.Sum64()
}
