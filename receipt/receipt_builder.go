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
	"log/slog"
	"time"

	"github.com/blinklabs-io/goreceipt/asn1"
)

// ReceiptBuilder builds a Receipt from the decoded PKCS#7 content
type ReceiptBuilder struct {
	logger       *slog.Logger
	inAppBuilder *InAppPurchaseBuilder
}

func NewReceiptBuilder(logger *slog.Logger) *ReceiptBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReceiptBuilder{
		logger:       logger,
		inAppBuilder: NewInAppPurchaseBuilder(logger),
	}
}

// Build builds a receipt from the [0] EXPLICIT content unit that follows the PKCS#7 data
// OID. Its first child is an OCTET STRING holding the DER encoded attribute SET
func (b *ReceiptBuilder) Build(content asn1.Container) (*Receipt, error) {
	if len(content.Children) == 0 {
		return nil, asn1.NewStructuralError(
			content.Offset,
			"receipt content has no payload",
		)
	}
	set, err := asn1.Decode(content.Children[0].Payload)
	if err != nil {
		return nil, fmt.Errorf("receipt payload: %w", err)
	}
	return b.BuildFromAttributes(set)
}

// BuildFromAttributes builds a receipt from its attribute SET
func (b *ReceiptBuilder) BuildFromAttributes(set asn1.Container) (*Receipt, error) {
	var scratch receiptScratch
	for _, child := range set.Children {
		attr, err := DecodeAttribute(child)
		if err != nil {
			return nil, err
		}
		attrType := ReceiptAttributeType(attr.Type)
		if !attrType.Known() {
			b.logger.Debug(
				"skipping unknown receipt attribute",
				"type", attr.Type,
				"version", attr.Version,
			)
			continue
		}
		val, err := decodeValue(attr, attrType.valueKind(), b.inAppBuilder)
		if err != nil {
			return nil, fmt.Errorf("receipt attribute %s: %w", attrType, err)
		}
		if val == nil {
			continue
		}
		if err := scratch.set(attrType, val); err != nil {
			return nil, err
		}
	}
	return scratch.build()
}

// receiptScratch accumulates attribute values until every attribute has been seen
type receiptScratch struct {
	bundleId                   *string
	applicationVersion         *string
	originalApplicationVersion *string
	opaqueValue                []byte
	sha1Hash                   []byte
	creationDate               *time.Time
	expirationDate             *time.Time
	inAppPurchases             []InAppPurchase
}

func (s *receiptScratch) set(attrType ReceiptAttributeType, val *value) error {
	switch attrType {
	case ReceiptAttributeBundleId:
		s.bundleId = &val.str
	case ReceiptAttributeApplicationVersion:
		s.applicationVersion = &val.str
	case ReceiptAttributeOriginalApplicationVersion:
		s.originalApplicationVersion = &val.str
	case ReceiptAttributeOpaqueValue:
		s.opaqueValue = val.bytes
	case ReceiptAttributeSha1Hash:
		s.sha1Hash = val.bytes
	case ReceiptAttributeCreationDate:
		s.creationDate = &val.timestamp
	case ReceiptAttributeExpirationDate:
		s.expirationDate = &val.timestamp
	case ReceiptAttributeInApp:
		s.inAppPurchases = append(s.inAppPurchases, val.purchase)
	default:
		return fmt.Errorf("unhandled attribute %s", attrType)
	}
	return nil
}

func (s *receiptScratch) build() (*Receipt, error) {
	var missing []string
	if s.bundleId == nil {
		missing = append(missing, ReceiptAttributeBundleId.String())
	}
	if s.applicationVersion == nil {
		missing = append(missing, ReceiptAttributeApplicationVersion.String())
	}
	if s.originalApplicationVersion == nil {
		missing = append(missing, ReceiptAttributeOriginalApplicationVersion.String())
	}
	if s.opaqueValue == nil {
		missing = append(missing, ReceiptAttributeOpaqueValue.String())
	}
	if s.sha1Hash == nil {
		missing = append(missing, ReceiptAttributeSha1Hash.String())
	}
	if s.creationDate == nil {
		missing = append(missing, ReceiptAttributeCreationDate.String())
	}
	if len(missing) > 0 {
		return nil, &IncompleteError{
			Kind:    ErrReceiptIncomplete,
			Missing: missing,
		}
	}
	ret := &Receipt{
		BundleId:                   *s.bundleId,
		ApplicationVersion:         *s.applicationVersion,
		OriginalApplicationVersion: *s.originalApplicationVersion,
		OpaqueValue:                s.opaqueValue,
		Sha1Hash:                   s.sha1Hash,
		CreationDate:               *s.creationDate,
		ExpirationDate:             s.expirationDate,
		InAppPurchases:             s.inAppPurchases,
	}
	if ret.InAppPurchases == nil {
		ret.InAppPurchases = []InAppPurchase{}
	}
	return ret, nil
}
