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

// Package asn1 provides a minimal ASN.1 BER/DER decoder for PKCS#7 wrapped receipts.
//
// # Key Types
//
//   - Container: one decoded tag-length-value unit, with its nested children when constructed
//   - Length: declared payload length plus the octets used to encode it
//   - ObjectIdentifier: dotted-integer OID string
//   - PKCS7ContentType: closed set of PKCS#7 content type OIDs
//
// # Decoding
//
// Decode reads exactly one unit from the start of a byte slice. Callers walk siblings
// by advancing TotalBytes() at a time:
//
//	for len(data) > 0 {
//	    c, err := asn1.Decode(data)
//	    if err != nil {
//	        return err
//	    }
//	    data = data[c.TotalBytes():]
//	}
//
// Payloads are sub-slices of the input and are never copied.
//
// # Limitations
//
// This is not a general purpose ASN.1 library. There is no encoder, indefinite lengths and
// high tag numbers are rejected, and every malformation is reported as ErrStructural.
package asn1
