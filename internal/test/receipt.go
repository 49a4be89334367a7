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

package test

import (
	encoding_asn1 "encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Receipt attribute types used by the fixtures
const (
	AttrBundleId                   = 2
	AttrApplicationVersion         = 3
	AttrOpaqueValue                = 4
	AttrSha1Hash                   = 5
	AttrCreationDate               = 12
	AttrInApp                      = 17
	AttrOriginalApplicationVersion = 19
	AttrExpirationDate             = 21

	AttrQuantity                   = 1701
	AttrProductId                  = 1702
	AttrTransactionId              = 1703
	AttrPurchaseDate               = 1704
	AttrOriginalTransactionId      = 1705
	AttrOriginalPurchaseDate       = 1706
	AttrProductType                = 1707
	AttrExpiresDate                = 1708
	AttrWebOrderLineItemId         = 1711
	AttrCancellationDate           = 1712
	AttrIsInTrialPeriod            = 1713
	AttrIsInIntroOfferPeriod       = 1719
	AttrPromotionalOfferIdentifier = 1721
)

var (
	oidPKCS7Data       = encoding_asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 1}
	oidPKCS7SignedData = encoding_asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 2}
	oidSHA256          = encoding_asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}
)

// Attribute is one receipt attribute triple. Value holds the bytes placed inside the
// attribute's OCTET STRING
type Attribute struct {
	Type    int64
	Version int64
	Value   []byte
}

// UTF8String returns the DER encoding of a UTF8String
func UTF8String(s string) []byte {
	return encodeASN1(cryptobyte_asn1.UTF8String, []byte(s))
}

// IA5String returns the DER encoding of an IA5String, which receipts use for dates
func IA5String(s string) []byte {
	return encodeASN1(cryptobyte_asn1.IA5String, []byte(s))
}

// Integer returns the DER encoding of an INTEGER
func Integer(v int64) []byte {
	var b cryptobyte.Builder
	b.AddASN1Int64(v)
	return b.BytesOrPanic()
}

// AttributeSet returns the DER encoding of a SET of receipt attributes
func AttributeSet(attrs ...Attribute) []byte {
	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.SET, func(b *cryptobyte.Builder) {
		for _, attr := range attrs {
			b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1Int64(attr.Type)
				b.AddASN1Int64(attr.Version)
				b.AddASN1OctetString(attr.Value)
			})
		}
	})
	return b.BytesOrPanic()
}

// SignedData wraps content in a minimal PKCS#7 SignedData ContentInfo with no
// certificates or signers, laid out the way Apple receipts are:
//
//	ContentInfo { signedData, [0] SignedData {
//	    version, digestAlgorithms, ContentInfo { data, [0] OCTET STRING }, signerInfos } }
func SignedData(content []byte) []byte {
	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oidPKCS7SignedData)
		b.AddASN1(cryptobyte_asn1.Tag(0).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
			b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1Int64(1)
				b.AddASN1(cryptobyte_asn1.SET, func(b *cryptobyte.Builder) {
					b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
						b.AddASN1ObjectIdentifier(oidSHA256)
						b.AddASN1NULL()
					})
				})
				b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddASN1ObjectIdentifier(oidPKCS7Data)
					b.AddASN1(cryptobyte_asn1.Tag(0).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
						b.AddASN1OctetString(content)
					})
				})
				b.AddASN1(cryptobyte_asn1.SET, func(b *cryptobyte.Builder) {})
			})
		})
	})
	return b.BytesOrPanic()
}

// MandatoryReceiptAttributes returns the attributes every receipt must carry
func MandatoryReceiptAttributes() []Attribute {
	return []Attribute{
		{Type: AttrBundleId, Version: 1, Value: UTF8String("com.example.app")},
		{Type: AttrApplicationVersion, Version: 1, Value: UTF8String("42")},
		{Type: AttrOriginalApplicationVersion, Version: 1, Value: UTF8String("1.0")},
		{Type: AttrOpaqueValue, Version: 1, Value: []byte{0xde, 0xad, 0xbe, 0xef}},
		{Type: AttrSha1Hash, Version: 1, Value: []byte{0x01, 0x02, 0x03, 0x04, 0x05}},
		{Type: AttrCreationDate, Version: 1, Value: IA5String("2020-07-22T20:16:05Z")},
	}
}

// InApp returns a receipt attribute holding an in-app purchase built from attrs
func InApp(attrs ...Attribute) Attribute {
	return Attribute{
		Type:    AttrInApp,
		Version: 1,
		Value:   AttributeSet(attrs...),
	}
}

func encodeASN1(tag cryptobyte_asn1.Tag, content []byte) []byte {
	var b cryptobyte.Builder
	b.AddASN1(tag, func(b *cryptobyte.Builder) {
		b.AddBytes(content)
	})
	return b.BytesOrPanic()
}
