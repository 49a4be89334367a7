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
)

// Class is the top 2 bits of the identifier octet
type Class uint8

const (
	ClassUniversal       Class = 0
	ClassApplication     Class = 1
	ClassContextSpecific Class = 2
	ClassPrivate         Class = 3
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "universal"
	case ClassApplication:
		return "application"
	case ClassContextSpecific:
		return "context-specific"
	case ClassPrivate:
		return "private"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Encoding is the 3rd bit of the identifier octet
type Encoding uint8

const (
	EncodingPrimitive   Encoding = 0
	EncodingConstructed Encoding = 1
)

func (e Encoding) String() string {
	switch e {
	case EncodingPrimitive:
		return "primitive"
	case EncodingConstructed:
		return "constructed"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// Tag is the bottom 5 bits of the identifier octet. Only the short form is supported
type Tag uint8

// Universal tag numbers
const (
	TagEndOfContent     Tag = 0x00
	TagBoolean          Tag = 0x01
	TagInteger          Tag = 0x02
	TagBitString        Tag = 0x03
	TagOctetString      Tag = 0x04
	TagNull             Tag = 0x05
	TagObjectIdentifier Tag = 0x06
	TagObjectDescriptor Tag = 0x07
	TagExternal         Tag = 0x08
	TagReal             Tag = 0x09
	TagEnumerated       Tag = 0x0a
	TagEmbeddedPdv      Tag = 0x0b
	TagUTF8String       Tag = 0x0c
	TagRelativeOid      Tag = 0x0d
	TagSequence         Tag = 0x10
	TagSet              Tag = 0x11
	TagNumericString    Tag = 0x12
	TagPrintableString  Tag = 0x13
	TagT61String        Tag = 0x14
	TagVideotexString   Tag = 0x15
	TagIA5String        Tag = 0x16
	TagUTCTime          Tag = 0x17
	TagGeneralizedTime  Tag = 0x18
	TagGraphicString    Tag = 0x19
	TagVisibleString    Tag = 0x1a
	TagGeneralString    Tag = 0x1b
	TagUniversalString  Tag = 0x1c
	TagCharacterString  Tag = 0x1d
	TagBMPString        Tag = 0x1e

	// All 5 tag bits set means the tag number continues in subsequent octets
	tagHighNumberForm Tag = 0x1f
)

var universalTagNames = map[Tag]string{
	TagEndOfContent:     "END-OF-CONTENT",
	TagBoolean:          "BOOLEAN",
	TagInteger:          "INTEGER",
	TagBitString:        "BIT STRING",
	TagOctetString:      "OCTET STRING",
	TagNull:             "NULL",
	TagObjectIdentifier: "OBJECT IDENTIFIER",
	TagObjectDescriptor: "ObjectDescriptor",
	TagExternal:         "EXTERNAL",
	TagReal:             "REAL",
	TagEnumerated:       "ENUMERATED",
	TagEmbeddedPdv:      "EMBEDDED PDV",
	TagUTF8String:       "UTF8String",
	TagRelativeOid:      "RELATIVE-OID",
	TagSequence:         "SEQUENCE",
	TagSet:              "SET",
	TagNumericString:    "NumericString",
	TagPrintableString:  "PrintableString",
	TagT61String:        "T61String",
	TagVideotexString:   "VideotexString",
	TagIA5String:        "IA5String",
	TagUTCTime:          "UTCTime",
	TagGeneralizedTime:  "GeneralizedTime",
	TagGraphicString:    "GraphicString",
	TagVisibleString:    "VisibleString",
	TagGeneralString:    "GeneralString",
	TagUniversalString:  "UniversalString",
	TagCharacterString:  "CHARACTER STRING",
	TagBMPString:        "BMPString",
}

// String returns the universal type name for the tag. Tags in the other classes carry no
// inherent meaning and should be printed alongside their class
func (t Tag) String() string {
	if name, ok := universalTagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}
