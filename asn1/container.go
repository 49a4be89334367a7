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

const (
	// Only the short tag form is supported, so the identifier is always a single octet
	identifierOctets = 1

	// A unit needs at least an identifier octet and a length octet
	minUnitOctets = 2

	// Receipts nest a handful of levels deep, but hostile input can nest one level every
	// 2 bytes. This keeps recursion bounded regardless of input size
	MaxNestedLevels = 256
)

// Length is the declared payload length of a unit along with the number of octets the
// length field itself occupied
type Length struct {
	Value         int
	EncodedOctets int
}

// Container is one decoded tag-length-value unit
type Container struct {
	Class    Class
	Encoding Encoding
	Tag      Tag
	Length   Length
	// Offset of the identifier octet relative to the start of the decoded input
	Offset  int
	Payload []byte
	// Only populated for constructed units
	Children []Container
}

// TotalBytes returns the number of input bytes consumed by the unit, including the
// identifier and length octets
func (c Container) TotalBytes() int {
	return identifierOctets + c.Length.EncodedOctets + c.Length.Value
}

func (c Container) IsConstructed() bool {
	return c.Encoding == EncodingConstructed
}

// IsUniversal returns true if the unit is of the universal class with the given tag
func (c Container) IsUniversal(tag Tag) bool {
	return c.Class == ClassUniversal && c.Tag == tag
}

// Decode decodes exactly one unit from the start of data. Any trailing data is ignored;
// use TotalBytes() on the result to find where the next unit starts
func Decode(data []byte) (Container, error) {
	return decode(data, 0, 0)
}

// DecodeAll decodes consecutive sibling units until data is exhausted
func DecodeAll(data []byte) ([]Container, error) {
	return decodeAll(data, 0, 0)
}

func decode(data []byte, offset int, depth int) (Container, error) {
	if len(data) < minUnitOctets {
		return Container{}, NewStructuralError(
			offset,
			"need at least %d bytes for identifier and length, have %d",
			minUnitOctets,
			len(data),
		)
	}
	if depth > MaxNestedLevels {
		return Container{}, NewStructuralError(
			offset,
			"exceeded max nesting depth of %d",
			MaxNestedLevels,
		)
	}
	identifier := data[0]
	ret := Container{
		Class:    Class(BitsInRange(identifier, 0, 1)),
		Encoding: Encoding(BitAt(identifier, 2)),
		Tag:      Tag(BitsInRange(identifier, 3, 7)),
		Offset:   offset,
	}
	if ret.Tag == tagHighNumberForm {
		return Container{}, NewStructuralError(
			offset,
			"high tag number form is not supported",
		)
	}
	length, err := decodeLength(data[identifierOctets:], offset+identifierOctets)
	if err != nil {
		return Container{}, err
	}
	ret.Length = length
	start := identifierOctets + length.EncodedOctets
	if length.Value > len(data)-start {
		return Container{}, NewStructuralError(
			offset,
			"declared length %d exceeds remaining %d bytes",
			length.Value,
			len(data)-start,
		)
	}
	end := start + length.Value
	// Limit capacity so that the payload can never be used to reach past our bounds
	ret.Payload = data[start:end:end]
	if ret.IsConstructed() {
		children, err := decodeAll(ret.Payload, offset+start, depth+1)
		if err != nil {
			return Container{}, err
		}
		ret.Children = children
	}
	return ret, nil
}

func decodeAll(data []byte, offset int, depth int) ([]Container, error) {
	var ret []Container
	for len(data) > 0 {
		child, err := decode(data, offset, depth)
		if err != nil {
			return nil, err
		}
		ret = append(ret, child)
		// Every unit is at least 2 bytes, so this always makes progress
		consumed := child.TotalBytes()
		data = data[consumed:]
		offset += consumed
	}
	return ret, nil
}

// decodeLength decodes the length field at the start of data, which must not be empty
func decodeLength(data []byte, offset int) (Length, error) {
	first := data[0]
	if BitAt(first, 0) == 0 {
		// Short form
		return Length{
			Value:         int(first),
			EncodedOctets: 1,
		}, nil
	}
	// Long form, the remaining bits are the number of length octets that follow
	lengthOctets := int(BitsInRange(first, 1, 7))
	if lengthOctets == 0 {
		return Length{}, NewStructuralError(
			offset,
			"indefinite length form is not supported",
		)
	}
	if lengthOctets > maxUintOctets {
		return Length{}, NewStructuralError(
			offset,
			"length field of %d octets is too large",
			lengthOctets,
		)
	}
	remaining := len(data) - 1
	if lengthOctets > remaining {
		return Length{}, NewStructuralError(
			offset,
			"length field needs %d octets, have %d",
			lengthOctets,
			remaining,
		)
	}
	value, err := BigEndianUint(data[1 : 1+lengthOctets])
	if err != nil {
		return Length{}, err
	}
	// Check against what's left before converting so that huge values can't overflow int
	if value > uint64(remaining-lengthOctets) {
		return Length{}, NewStructuralError(
			offset,
			"declared length %d exceeds remaining %d bytes",
			value,
			remaining-lengthOctets,
		)
	}
	return Length{
		Value:         int(value),
		EncodedOctets: 1 + lengthOctets,
	}, nil
}
