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

package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/blinklabs-io/goreceipt/asn1"
)

type valueKind uint8

const (
	valueKindString valueKind = iota + 1
	valueKindBytes
	valueKindInteger
	valueKindBoolean
	valueKindTimestamp
	valueKindPurchase
)

func (k valueKind) String() string {
	switch k {
	case valueKindString:
		return "string"
	case valueKindBytes:
		return "bytes"
	case valueKindInteger:
		return "integer"
	case valueKindBoolean:
		return "boolean"
	case valueKindTimestamp:
		return "timestamp"
	case valueKindPurchase:
		return "purchase"
	default:
		return fmt.Sprintf("valueKind(%d)", uint8(k))
	}
}

// value is a decoded attribute value. Only the field matching kind is set
type value struct {
	kind      valueKind
	str       string
	bytes     []byte
	integer   int64
	boolean   bool
	timestamp time.Time
	purchase  InAppPurchase
}

// decodeValue interprets an attribute's value as the given kind. A nil value with a nil
// error means the attribute carries no value and the target field must stay unset.
//
// Raw byte values are the OCTET STRING payload itself. Every other kind is a nested unit
// inside the OCTET STRING, and a nested unit with a zero length is absent
func decodeValue(
	attr Attribute,
	kind valueKind,
	inAppBuilder *InAppPurchaseBuilder,
) (*value, error) {
	if len(attr.Value.Payload) == 0 {
		return nil, nil
	}
	if kind == valueKindBytes {
		return &value{
			kind:  kind,
			bytes: bytes.Clone(attr.Value.Payload),
		}, nil
	}
	nested, err := asn1.Decode(attr.Value.Payload)
	if err != nil {
		return nil, err
	}
	if nested.Length.Value == 0 {
		return nil, nil
	}
	ret := &value{kind: kind}
	switch kind {
	case valueKindString:
		ret.str, err = nested.UTF8String()
	case valueKindInteger:
		ret.integer, err = nested.Int()
	case valueKindBoolean:
		ret.boolean, err = nested.Bool()
	case valueKindTimestamp:
		ret.timestamp, err = nested.ASCIIDate()
	case valueKindPurchase:
		if inAppBuilder == nil {
			return nil, fmt.Errorf("no builder for nested %s value", kind)
		}
		ret.purchase, err = inAppBuilder.Build(nested)
	default:
		return nil, fmt.Errorf("unhandled value kind %s", kind)
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}
