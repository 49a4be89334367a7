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

// Package receipt interprets decoded ASN.1 receipt attributes as typed App Store receipts.
//
// A receipt payload is a SET of attributes, each a SEQUENCE of { type, version, value }.
// Unknown attribute types are skipped so that new attributes added by Apple don't break
// decoding. Mandatory attributes that never appear fail the build with ErrReceiptIncomplete
// or ErrInAppIncomplete.
package receipt

import (
	"time"

	"github.com/blinklabs-io/goreceipt/cbor"
)

// Receipt is a decoded App Store receipt.
//
// A receipt decoded from CBOR keeps the original CBOR bytes, and re-encoding it returns
// those bytes unchanged
type Receipt struct {
	cbor.DecodeStoreCbor
	BundleId                   string          `json:"bundleId" cbor:"bundleId"`
	ApplicationVersion         string          `json:"applicationVersion" cbor:"applicationVersion"`
	OriginalApplicationVersion string          `json:"originalApplicationVersion" cbor:"originalApplicationVersion"`
	OpaqueValue                []byte          `json:"opaqueValue" cbor:"opaqueValue"`
	Sha1Hash                   []byte          `json:"sha1Hash" cbor:"sha1Hash"`
	CreationDate               time.Time       `json:"creationDate" cbor:"creationDate"`
	ExpirationDate             *time.Time      `json:"expirationDate,omitempty" cbor:"expirationDate,omitempty"`
	InAppPurchases             []InAppPurchase `json:"inAppPurchases" cbor:"inAppPurchases"`
}

func (r *Receipt) UnmarshalCBOR(cborData []byte) error {
	return r.UnmarshalCborGeneric(cborData, r)
}

func (r *Receipt) MarshalCBOR() ([]byte, error) {
	// Return stored CBOR if we have any
	cborData := r.Cbor()
	if cborData != nil {
		return cborData, nil
	}
	return cbor.EncodeGeneric(r)
}
