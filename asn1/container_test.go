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

package asn1_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/blinklabs-io/goreceipt/asn1"
	"github.com/blinklabs-io/goreceipt/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeLength returns a minimal DER length field for the given value
func encodeLength(length int) []byte {
	if length < 0x80 {
		return []byte{byte(length)}
	}
	var octets []byte
	for v := length; v > 0; v >>= 8 {
		octets = append([]byte{byte(v)}, octets...)
	}
	return append([]byte{0x80 | byte(len(octets))}, octets...)
}

func TestDecodeClass(t *testing.T) {
	testDefs := []struct {
		identifier byte
		expected   asn1.Class
	}{
		{0x00, asn1.ClassUniversal},
		{0x40, asn1.ClassApplication},
		{0x80, asn1.ClassContextSpecific},
		{0xc0, asn1.ClassPrivate},
	}
	for _, testDef := range testDefs {
		c, err := asn1.Decode([]byte{testDef.identifier, 0x01, 0x01, 0x01})
		require.NoError(t, err)
		assert.Equal(t, testDef.expected, c.Class)
		assert.Equal(t, asn1.EncodingPrimitive, c.Encoding)
		assert.Equal(t, []byte{0x01}, c.Payload)
	}
}

func TestDecodeShortFormLength(t *testing.T) {
	for b := 0; b < 0x80; b++ {
		data := append([]byte{0x04, byte(b)}, bytes.Repeat([]byte{0xaa}, b)...)
		c, err := asn1.Decode(data)
		require.NoError(t, err, "length byte %d", b)
		assert.Equal(t, asn1.Length{Value: b, EncodedOctets: 1}, c.Length)
		assert.Equal(t, 2+b, c.TotalBytes())
		assert.Len(t, c.Payload, b)
	}
}

func TestDecodeLongFormLength(t *testing.T) {
	testDefs := []struct {
		lengthOctets []byte
		value        int
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0xc8}, 200},
		{[]byte{0xff}, 255},
		{[]byte{0x01, 0x00}, 256},
		{[]byte{0x03, 0xe8}, 1000},
		{[]byte{0x00, 0x05}, 5},
		{[]byte{0x01, 0x11, 0x70}, 70000},
		{[]byte{0x00, 0x01, 0x11, 0x70}, 70000},
	}
	for _, testDef := range testDefs {
		n := len(testDef.lengthOctets)
		data := []byte{0x04, 0x80 | byte(n)}
		data = append(data, testDef.lengthOctets...)
		data = append(data, make([]byte, testDef.value)...)
		c, err := asn1.Decode(data)
		require.NoError(t, err)
		assert.Equal(
			t,
			asn1.Length{Value: testDef.value, EncodedOctets: n + 1},
			c.Length,
		)
		assert.Equal(t, len(data), c.TotalBytes())
		assert.Len(t, c.Payload, testDef.value)
	}
}

func TestDecodeSiblings(t *testing.T) {
	first := test.UTF8String("com.example.app")
	second := test.Integer(1701)
	third := test.IA5String(string(bytes.Repeat([]byte{'x'}, 300)))
	data := append(append(append([]byte{}, first...), second...), third...)

	c, err := asn1.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, len(first), c.TotalBytes())
	assert.Equal(
		t,
		1+c.Length.EncodedOctets+len(c.Payload),
		c.TotalBytes(),
	)

	// The next unit starts exactly where the previous one ended
	c, err = asn1.Decode(data[len(first):])
	require.NoError(t, err)
	assert.True(t, c.IsUniversal(asn1.TagInteger))
	assert.Equal(t, len(second), c.TotalBytes())

	all, err := asn1.DecodeAll(data)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, asn1.TagUTF8String, all[0].Tag)
	assert.Equal(t, asn1.TagInteger, all[1].Tag)
	assert.Equal(t, asn1.TagIA5String, all[2].Tag)
	assert.Equal(t, 3, all[2].Length.EncodedOctets)
	assert.Equal(t, len(first)+len(second), all[2].Offset)
}

func TestDecodeConstructed(t *testing.T) {
	data := test.AttributeSet(
		test.Attribute{Type: 1702, Version: 1, Value: test.UTF8String("com.app.pro")},
		test.Attribute{Type: 1701, Version: 1, Value: test.Integer(1)},
	)
	c, err := asn1.Decode(data)
	require.NoError(t, err)
	assert.True(t, c.IsUniversal(asn1.TagSet))
	assert.True(t, c.IsConstructed())
	require.Len(t, c.Children, 2)
	for _, attr := range c.Children {
		assert.True(t, attr.IsUniversal(asn1.TagSequence))
		require.Len(t, attr.Children, 3)
		assert.Equal(t, asn1.TagInteger, attr.Children[0].Tag)
		assert.Equal(t, asn1.TagInteger, attr.Children[1].Tag)
		assert.Equal(t, asn1.TagOctetString, attr.Children[2].Tag)
		assert.Empty(t, attr.Children[2].Children)
	}
	typ, err := c.Children[0].Children[0].Int()
	require.NoError(t, err)
	assert.Equal(t, int64(1702), typ)
	// Children's offsets are relative to the start of the outer input
	assert.Equal(t, 2, c.Children[0].Offset)
	assert.Equal(t, data[c.Children[1].Offset], byte(0x30))
}

func TestDecodeContextSpecificConstructed(t *testing.T) {
	data := test.SignedData([]byte{0x31, 0x00})
	c, err := asn1.Decode(data)
	require.NoError(t, err)
	require.Len(t, c.Children, 2)
	content := c.Children[1]
	assert.Equal(t, asn1.ClassContextSpecific, content.Class)
	assert.Equal(t, asn1.EncodingConstructed, content.Encoding)
	assert.Equal(t, asn1.Tag(0), content.Tag)
	require.Len(t, content.Children, 1)
	assert.True(t, content.Children[0].IsUniversal(asn1.TagSequence))
}

func TestDecodeErrors(t *testing.T) {
	testDefs := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"identifier only", []byte{0x30}},
		{"truncated payload", []byte{0x04, 0x05, 0x01, 0x02}},
		{"truncated long length", []byte{0x04, 0x82, 0x01}},
		{"long length exceeds input", []byte{0x04, 0x81, 0x05, 0x01}},
		{"indefinite length", []byte{0x30, 0x80, 0x00, 0x00}},
		{"length of length too large", []byte{0x04, 0x89, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}},
		{"huge length", []byte{0x04, 0x88, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{"high tag number", []byte{0x1f, 0x01, 0x00}},
		{"child overruns parent", []byte{0x30, 0x03, 0x04, 0x05, 0x01, 0x02, 0x03, 0x04, 0x05}},
		{"dangling byte in constructed", []byte{0x30, 0x03, 0x05, 0x00, 0x05}},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := asn1.Decode(testDef.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, asn1.ErrStructural), "unexpected error: %s", err)
			var serr *asn1.StructuralError
			assert.True(t, errors.As(err, &serr))
		})
	}
}

func TestDecodeMaxNestedLevels(t *testing.T) {
	build := func(levels int) []byte {
		data := []byte{0x05, 0x00}
		for range levels {
			inner := data
			data = append([]byte{0x30}, encodeLength(len(inner))...)
			data = append(data, inner...)
		}
		return data
	}
	_, err := asn1.Decode(build(asn1.MaxNestedLevels))
	require.NoError(t, err)
	_, err = asn1.Decode(build(asn1.MaxNestedLevels + 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asn1.ErrStructural))
}

func TestDecodePayloadCapacity(t *testing.T) {
	data := []byte{0x04, 0x02, 0x01, 0x02, 0x04, 0x01, 0x03}
	c, err := asn1.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 2, cap(c.Payload))
}

func TestDecodeHexFixture(t *testing.T) {
	// SEQUENCE { OBJECT IDENTIFIER 1.2.840.113549.1.7.1, [0] { OCTET STRING 'hi' } }
	data := test.DecodeHexString("301106092a864886f70d010701a00404026869")
	c, err := asn1.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), c.TotalBytes())
	require.Len(t, c.Children, 2)
	oid, err := c.Children[0].ObjectIdentifier()
	require.NoError(t, err)
	assert.Equal(t, asn1.OIDPKCS7Data, oid)
	require.Len(t, c.Children[1].Children, 1)
	octets := c.Children[1].Children[0]
	assert.Equal(t, 15, octets.Offset)
	assert.Equal(t, []byte("hi"), octets.Payload)
}
