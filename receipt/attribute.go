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
	"fmt"

	"github.com/blinklabs-io/goreceipt/asn1"
)

// Number of elements in a receipt attribute: type, version, value
const attributeElements = 3

// ReceiptAttributeType identifies a top-level receipt attribute
type ReceiptAttributeType int64

const (
	ReceiptAttributeBundleId                   ReceiptAttributeType = 2
	ReceiptAttributeApplicationVersion         ReceiptAttributeType = 3
	ReceiptAttributeOpaqueValue                ReceiptAttributeType = 4
	ReceiptAttributeSha1Hash                   ReceiptAttributeType = 5
	ReceiptAttributeCreationDate               ReceiptAttributeType = 12
	ReceiptAttributeInApp                      ReceiptAttributeType = 17
	ReceiptAttributeOriginalApplicationVersion ReceiptAttributeType = 19
	ReceiptAttributeExpirationDate             ReceiptAttributeType = 21
)

var receiptAttributeTypes = map[ReceiptAttributeType]struct {
	name string
	kind valueKind
}{
	ReceiptAttributeBundleId:                   {"bundleId", valueKindString},
	ReceiptAttributeApplicationVersion:         {"applicationVersion", valueKindString},
	ReceiptAttributeOpaqueValue:                {"opaqueValue", valueKindBytes},
	ReceiptAttributeSha1Hash:                   {"sha1Hash", valueKindBytes},
	ReceiptAttributeCreationDate:               {"creationDate", valueKindTimestamp},
	ReceiptAttributeInApp:                      {"inApp", valueKindPurchase},
	ReceiptAttributeOriginalApplicationVersion: {"originalApplicationVersion", valueKindString},
	ReceiptAttributeExpirationDate:             {"expirationDate", valueKindTimestamp},
}

// Known returns true for attribute types this package understands
func (t ReceiptAttributeType) Known() bool {
	_, ok := receiptAttributeTypes[t]
	return ok
}

func (t ReceiptAttributeType) String() string {
	if info, ok := receiptAttributeTypes[t]; ok {
		return info.name
	}
	return fmt.Sprintf("ReceiptAttributeType(%d)", int64(t))
}

func (t ReceiptAttributeType) valueKind() valueKind {
	return receiptAttributeTypes[t].kind
}

// InAppAttributeType identifies an attribute of an in-app purchase entry
type InAppAttributeType int64

const (
	InAppAttributeQuantity                   InAppAttributeType = 1701
	InAppAttributeProductId                  InAppAttributeType = 1702
	InAppAttributeTransactionId              InAppAttributeType = 1703
	InAppAttributePurchaseDate               InAppAttributeType = 1704
	InAppAttributeOriginalTransactionId      InAppAttributeType = 1705
	InAppAttributeOriginalPurchaseDate       InAppAttributeType = 1706
	InAppAttributeProductType                InAppAttributeType = 1707
	InAppAttributeExpiresDate                InAppAttributeType = 1708
	InAppAttributeWebOrderLineItemId         InAppAttributeType = 1711
	InAppAttributeCancellationDate           InAppAttributeType = 1712
	InAppAttributeIsInTrialPeriod            InAppAttributeType = 1713
	InAppAttributeIsInIntroOfferPeriod       InAppAttributeType = 1719
	InAppAttributePromotionalOfferIdentifier InAppAttributeType = 1721
)

var inAppAttributeTypes = map[InAppAttributeType]struct {
	name string
	kind valueKind
}{
	InAppAttributeQuantity:                   {"quantity", valueKindInteger},
	InAppAttributeProductId:                  {"productId", valueKindString},
	InAppAttributeTransactionId:              {"transactionId", valueKindString},
	InAppAttributePurchaseDate:               {"purchaseDate", valueKindTimestamp},
	InAppAttributeOriginalTransactionId:      {"originalTransactionId", valueKindString},
	InAppAttributeOriginalPurchaseDate:       {"originalPurchaseDate", valueKindTimestamp},
	InAppAttributeProductType:                {"productType", valueKindInteger},
	InAppAttributeExpiresDate:                {"expiresDate", valueKindTimestamp},
	InAppAttributeWebOrderLineItemId:         {"webOrderLineItemId", valueKindInteger},
	InAppAttributeCancellationDate:           {"cancellationDate", valueKindTimestamp},
	InAppAttributeIsInTrialPeriod:            {"isInTrialPeriod", valueKindBoolean},
	InAppAttributeIsInIntroOfferPeriod:       {"isInIntroOfferPeriod", valueKindBoolean},
	InAppAttributePromotionalOfferIdentifier: {"promotionalOfferIdentifier", valueKindString},
}

// Known returns true for attribute types this package understands
func (t InAppAttributeType) Known() bool {
	_, ok := inAppAttributeTypes[t]
	return ok
}

func (t InAppAttributeType) String() string {
	if info, ok := inAppAttributeTypes[t]; ok {
		return info.name
	}
	return fmt.Sprintf("InAppAttributeType(%d)", int64(t))
}

func (t InAppAttributeType) valueKind() valueKind {
	return inAppAttributeTypes[t].kind
}

// Attribute is one decoded element of a receipt attribute SET
type Attribute struct {
	Type int64
	// Version is carried on the wire but not interpreted
	Version int64
	// Value is the OCTET STRING wrapping the attribute value
	Value asn1.Container
}

// DecodeAttribute decodes one SEQUENCE { type INTEGER, version INTEGER, value OCTET STRING }
func DecodeAttribute(c asn1.Container) (Attribute, error) {
	if !c.IsConstructed() || len(c.Children) != attributeElements {
		return Attribute{}, asn1.NewStructuralError(
			c.Offset,
			"attribute has %d elements, expected %d",
			len(c.Children),
			attributeElements,
		)
	}
	attrType, err := c.Children[0].Int()
	if err != nil {
		return Attribute{}, fmt.Errorf("attribute type: %w", err)
	}
	version, err := c.Children[1].Int()
	if err != nil {
		return Attribute{}, fmt.Errorf("attribute version: %w", err)
	}
	return Attribute{
		Type:    attrType,
		Version: version,
		Value:   c.Children[2],
	}, nil
}
