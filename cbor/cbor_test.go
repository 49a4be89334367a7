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

package cbor_test

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/blinklabs-io/goreceipt/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storedRecord struct {
	cbor.DecodeStoreCbor
	Name    string     `cbor:"name"`
	Count   int64      `cbor:"count"`
	Expires *time.Time `cbor:"expires,omitempty"`
}

func (r *storedRecord) UnmarshalCBOR(data []byte) error {
	return r.UnmarshalCborGeneric(data, r)
}

func (r *storedRecord) MarshalCBOR() ([]byte, error) {
	if r.Cbor() != nil {
		return r.Cbor(), nil
	}
	return cbor.EncodeGeneric(r)
}

func TestEncodeDeterministic(t *testing.T) {
	// Keys are sorted by length first, then bytewise
	data, err := cbor.Encode(map[string]int{"bb": 2, "a": 1, "ccc": 3})
	require.NoError(t, err)
	assert.Equal(t, "a3616101626262026363636303", hex.EncodeToString(data))
}

func TestEncodeTime(t *testing.T) {
	data, err := cbor.Encode(time.Date(2020, time.July, 22, 20, 16, 5, 0, time.UTC))
	require.NoError(t, err)
	// Text string "2020-07-22T20:16:05Z"
	assert.Equal(t, "74323032302d30372d32325432303a31363a30355a", hex.EncodeToString(data))
}

func TestDecode(t *testing.T) {
	var result []uint64
	n, err := cbor.Decode([]byte{0x82, 0x01, 0x19, 0x06, 0xa5, 0xff}, &result)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []uint64{1, 1701}, result)

	var record struct {
		Name string `cbor:"name"`
	}
	// {"name": "a", "other": 1}
	_, err = cbor.Decode(
		[]byte{0xa2, 0x64, 0x6e, 0x61, 0x6d, 0x65, 0x61, 0x61, 0x65, 0x6f, 0x74, 0x68, 0x65, 0x72, 0x01},
		&record,
	)
	assert.Error(t, err, "unknown fields are rejected")
}

func TestDecodeStoreCbor(t *testing.T) {
	expires := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	src := &storedRecord{Name: "com.example.app", Count: 3, Expires: &expires}
	assert.Nil(t, src.Cbor())
	data, err := cbor.Encode(src)
	require.NoError(t, err)

	var decoded storedRecord
	_, err = cbor.Decode(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, "com.example.app", decoded.Name)
	assert.Equal(t, int64(3), decoded.Count)
	require.NotNil(t, decoded.Expires)
	assert.True(t, decoded.Expires.Equal(expires))
	assert.Equal(t, data, decoded.Cbor())

	// Re-encoding returns the stored bytes
	decoded.Count = 4
	reencoded, err := cbor.Encode(&decoded)
	require.NoError(t, err)
	assert.Equal(t, data, reencoded)
}

func TestEncodeGenericRequiresStructPointer(t *testing.T) {
	_, err := cbor.EncodeGeneric(storedRecord{})
	assert.Error(t, err)
	err = cbor.DecodeGeneric([]byte{0xa0}, &[]int{})
	assert.Error(t, err)
}
