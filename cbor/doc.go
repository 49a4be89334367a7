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

// Package cbor provides CBOR encoding/decoding for decoded receipts.
//
// This package wraps github.com/fxamacker/cbor/v2 so that receipts can be cached or
// stored in a compact form without keeping (and re-parsing) the PKCS#7 container.
//
// Encoding is deterministic: map keys are sorted using the core deterministic rules and
// times are encoded as RFC 3339 text, which is the format Apple uses inside receipts.
//
// # DecodeStoreCbor
//
// Types that embed DecodeStoreCbor keep the original CBOR bytes when decoded:
//
//	type MyType struct {
//	    cbor.DecodeStoreCbor
//	    Field1 string
//	}
//
//	func (t *MyType) UnmarshalCBOR(data []byte) error {
//	    return t.UnmarshalCborGeneric(data, t)
//	}
//
// Re-encoding such a value returns the stored bytes unchanged, so anything derived from
// them (hashes, cache keys) stays stable.
package cbor
