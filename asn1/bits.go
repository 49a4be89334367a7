// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asn1

import (
	"fmt"
)

// Max number of octets that fit in a uint64
const maxUintOctets = 8

// BitAt returns the bit at the given index, counting from the most significant bit (index 0).
// An index outside 0..7 is a programming error and panics
func BitAt(b byte, index int) uint8 {
	if index < 0 || index > 7 {
		panic(fmt.Sprintf("asn1: bit index %d out of range 0..7", index))
	}
	return (b >> (7 - index)) & 0x01
}

// BitsInRange returns the unsigned value of the inclusive bit range [from, to], counting
// from the most significant bit (index 0)
func BitsInRange(b byte, from int, to int) uint8 {
	if from < 0 || to > 7 || from > to {
		panic(fmt.Sprintf("asn1: bit range [%d, %d] out of range 0..7", from, to))
	}
	width := to - from + 1
	mask := byte((1 << width) - 1)
	return (b >> (7 - to)) & mask
}

// BigEndianUint reconstructs an unsigned integer from a big-endian octet sequence. Empty
// input yields 0
func BigEndianUint(data []byte) (uint64, error) {
	if len(data) > maxUintOctets {
		return 0, NewStructuralError(
			-1,
			"integer of %d octets overflows uint64",
			len(data),
		)
	}
	var ret uint64
	for _, b := range data {
		ret = ret<<8 | uint64(b)
	}
	return ret, nil
}

// BigEndianInt reconstructs a two's complement signed integer from a big-endian octet
// sequence. Empty input yields 0
func BigEndianInt(data []byte) (int64, error) {
	if len(data) > maxUintOctets {
		return 0, NewStructuralError(
			-1,
			"integer of %d octets overflows int64",
			len(data),
		)
	}
	if len(data) == 0 {
		return 0, nil
	}
	// Sign extend from the first octet
	ret := int64(int8(data[0]))
	for _, b := range data[1:] {
		ret = ret<<8 | int64(b)
	}
	return ret, nil
}
