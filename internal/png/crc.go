// SPDX-License-Identifier: MPL-2.0

package png

import "hash/crc32"

// checksum computes the PNG chunk CRC: CRC-32/ISO-3309 (reflected polynomial,
// register initialized to all ones) over the type code bytes followed by the
// data bytes. This is the same algorithm the standard library calls IEEE.
func checksum(code [4]byte, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(code[:])
	h.Write(data)
	return h.Sum32()
}
