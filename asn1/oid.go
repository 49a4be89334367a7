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
	"math"
	"strconv"
	"strings"
)

// ObjectIdentifier is an OID in dotted-integer form, such as "1.2.840.113549.1.7.1"
type ObjectIdentifier string

// PKCS#7 content type OIDs (RFC 2315, section 14)
const (
	OIDPKCS7Data                   ObjectIdentifier = "1.2.840.113549.1.7.1"
	OIDPKCS7SignedData             ObjectIdentifier = "1.2.840.113549.1.7.2"
	OIDPKCS7EnvelopedData          ObjectIdentifier = "1.2.840.113549.1.7.3"
	OIDPKCS7SignedAndEnvelopedData ObjectIdentifier = "1.2.840.113549.1.7.4"
	OIDPKCS7DigestedData           ObjectIdentifier = "1.2.840.113549.1.7.5"
	OIDPKCS7EncryptedData          ObjectIdentifier = "1.2.840.113549.1.7.6"
)

// PKCS7ContentType is the closed set of known PKCS#7 content types
type PKCS7ContentType int

const (
	PKCS7ContentTypeData PKCS7ContentType = iota + 1
	PKCS7ContentTypeSignedData
	PKCS7ContentTypeEnvelopedData
	PKCS7ContentTypeSignedAndEnvelopedData
	PKCS7ContentTypeDigestedData
	PKCS7ContentTypeEncryptedData
)

var pkcs7ContentTypes = map[ObjectIdentifier]PKCS7ContentType{
	OIDPKCS7Data:                   PKCS7ContentTypeData,
	OIDPKCS7SignedData:             PKCS7ContentTypeSignedData,
	OIDPKCS7EnvelopedData:          PKCS7ContentTypeEnvelopedData,
	OIDPKCS7SignedAndEnvelopedData: PKCS7ContentTypeSignedAndEnvelopedData,
	OIDPKCS7DigestedData:           PKCS7ContentTypeDigestedData,
	OIDPKCS7EncryptedData:          PKCS7ContentTypeEncryptedData,
}

// LookupPKCS7ContentType matches an OID against the known PKCS#7 content types. Most OIDs
// in a signed receipt aren't content types, so no match is reported with false rather
// than an error
func LookupPKCS7ContentType(oid ObjectIdentifier) (PKCS7ContentType, bool) {
	ret, ok := pkcs7ContentTypes[oid]
	return ret, ok
}

// ObjectIdentifier returns the OID for the content type
func (t PKCS7ContentType) ObjectIdentifier() ObjectIdentifier {
	for oid, contentType := range pkcs7ContentTypes {
		if contentType == t {
			return oid
		}
	}
	return ""
}

func (t PKCS7ContentType) String() string {
	switch t {
	case PKCS7ContentTypeData:
		return "data"
	case PKCS7ContentTypeSignedData:
		return "signedData"
	case PKCS7ContentTypeEnvelopedData:
		return "envelopedData"
	case PKCS7ContentTypeSignedAndEnvelopedData:
		return "signedAndEnvelopedData"
	case PKCS7ContentTypeDigestedData:
		return "digestedData"
	case PKCS7ContentTypeEncryptedData:
		return "encryptedData"
	default:
		return fmt.Sprintf("PKCS7ContentType(%d)", int(t))
	}
}

// DecodeObjectIdentifier decodes the value octets of an OBJECT IDENTIFIER.
//
// The first octet packs the first two components as (c1 * 40 + c2). Each following
// component is base-128 big-endian, with the top bit of every octet but the last set
func DecodeObjectIdentifier(payload []byte) (ObjectIdentifier, error) {
	if len(payload) == 0 {
		return "", NewStructuralError(-1, "empty object identifier")
	}
	components := []uint64{
		uint64(payload[0] / 40),
		uint64(payload[0] % 40),
	}
	var current uint64
	continued := false
	for _, b := range payload[1:] {
		if current > math.MaxUint64>>7 {
			return "", NewStructuralError(
				-1,
				"object identifier component overflows uint64",
			)
		}
		current = current<<7 | uint64(BitsInRange(b, 1, 7))
		if BitAt(b, 0) == 1 {
			continued = true
			continue
		}
		components = append(components, current)
		current = 0
		continued = false
	}
	if continued {
		return "", NewStructuralError(
			-1,
			"object identifier ends in the middle of a component",
		)
	}
	parts := make([]string, len(components))
	for i, component := range components {
		parts[i] = strconv.FormatUint(component, 10)
	}
	return ObjectIdentifier(strings.Join(parts, ".")), nil
}

// ObjectIdentifier decodes the payload of a universal OBJECT IDENTIFIER unit
func (c Container) ObjectIdentifier() (ObjectIdentifier, error) {
	if !c.IsUniversal(TagObjectIdentifier) {
		return "", NewStructuralError(
			c.Offset,
			"expected %s, found %s %s",
			TagObjectIdentifier,
			c.Class,
			c.Tag,
		)
	}
	ret, err := DecodeObjectIdentifier(c.Payload)
	if err != nil {
		return "", withOffset(err, c.Offset)
	}
	return ret, nil
}
