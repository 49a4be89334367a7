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

package cbor

import "testing"

func FuzzDecode(f *testing.F) {
	// Seed corpus with valid CBOR samples
	f.Add([]byte{0xa0})                               // empty map
	f.Add([]byte{0x80})                               // empty array
	f.Add([]byte{0x00})                               // integer 0
	f.Add([]byte{0x19, 0x06, 0xa5})                   // integer 1701
	f.Add([]byte{0x44, 0xde, 0xad, 0xbe, 0xef})       // bytestring
	f.Add([]byte{0x65, 0x68, 0x65, 0x6c, 0x6c, 0x6f}) // "hello"
	f.Add([]byte{0xf5})                               // true

	f.Fuzz(func(t *testing.T, data []byte) {
		var result any
		_, _ = Decode(data, &result)
		// Should not panic - that's the test
	})
}

func FuzzDecodeGeneric(f *testing.F) {
	f.Add([]byte{0xa1, 0x66, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x31, 0x01})
	f.Fuzz(func(t *testing.T, data []byte) {
		type TestStruct struct {
			Field1 uint64
			Field2 []byte
			Field3 string
		}
		var result TestStruct
		_ = DecodeGeneric(data, &result)
	})
}
