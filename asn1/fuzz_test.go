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

//go:build go1.18

package asn1_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/goreceipt/asn1"
	"github.com/blinklabs-io/goreceipt/internal/test"
)

func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x30})
	f.Add([]byte{0x30, 0x00})                   // empty sequence
	f.Add([]byte{0x05, 0x00})                   // null
	f.Add([]byte{0x02, 0x02, 0x06, 0xa5})       // integer 1701
	f.Add([]byte{0x30, 0x80, 0x00, 0x00})       // indefinite sequence
	f.Add([]byte{0x04, 0x82, 0x01})             // truncated long length
	f.Add([]byte{0x30, 0x03, 0x04, 0x05, 0x01}) // child overruns parent
	f.Add(test.SignedData(test.AttributeSet(test.MandatoryReceiptAttributes()...)))

	f.Fuzz(func(t *testing.T, data []byte) {
		c, err := asn1.Decode(data)
		if err != nil {
			if !errors.Is(err, asn1.ErrStructural) {
				t.Fatalf("unexpected error kind: %s", err)
			}
			return
		}
		if c.TotalBytes() > len(data) {
			t.Fatalf("consumed %d bytes of %d", c.TotalBytes(), len(data))
		}
		_ = asn1.DumpContainer(c, "")
	})
}

func FuzzDecodeObjectIdentifier(f *testing.F) {
	f.Add([]byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x07, 0x01})
	f.Add([]byte{0x2a, 0x86})
	f.Fuzz(func(t *testing.T, data []byte) {
		// Should not panic - that's the test
		_, _ = asn1.DecodeObjectIdentifier(data)
	})
}
