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
	"math"
	"time"

	"github.com/blinklabs-io/goreceipt/asn1"
)

// InAppPurchaseBuilder builds an InAppPurchase from its attribute SET
type InAppPurchaseBuilder struct {
	logger *slog.Logger
}

func NewInAppPurchaseBuilder(logger *slog.Logger) *InAppPurchaseBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &InAppPurchaseBuilder{
		logger: logger,
	}
}

// Build decodes every attribute in the SET. Any failure is reported as ErrInAppIncomplete
func (b *InAppPurchaseBuilder) Build(set asn1.Container) (InAppPurchase, error) {
	var scratch inAppPurchaseScratch
	for _, child := range set.Children {
		attr, err := DecodeAttribute(child)
		if err != nil {
			return InAppPurchase{}, newInAppError(err)
		}
		attrType := InAppAttributeType(attr.Type)
		if !attrType.Known() {
			b.logger.Debug(
				"skipping unknown in-app purchase attribute",
				"type", attr.Type,
				"version", attr.Version,
			)
			continue
		}
		val, err := decodeValue(attr, attrType.valueKind(), nil)
		if err != nil {
			return InAppPurchase{}, newInAppError(
				fmt.Errorf("%s: %w", attrType, err),
			)
		}
		if val == nil {
			continue
		}
		if err := scratch.set(attrType, val); err != nil {
			return InAppPurchase{}, newInAppError(err)
		}
	}
	return scratch.build()
}

// inAppPurchaseScratch accumulates attribute values until every attribute has been seen
type inAppPurchaseScratch struct {
	quantity                   *int
	productId                  *string
	transactionId              *string
	originalTransactionId      *string
	productType                *ProductType
	purchaseDate               *time.Time
	originalPurchaseDate       *time.Time
	expiresDate                *time.Time
	cancellationDate           *time.Time
	isInTrialPeriod            *bool
	isInIntroOfferPeriod       *bool
	webOrderLineItemId         *int64
	promotionalOfferIdentifier *string
}

func (s *inAppPurchaseScratch) set(attrType InAppAttributeType, val *value) error {
	switch attrType {
	case InAppAttributeQuantity:
		if val.integer < 0 || val.integer > math.MaxInt32 {
			return fmt.Errorf("%s: value %d out of range", attrType, val.integer)
		}
		quantity := int(val.integer)
		s.quantity = &quantity
	case InAppAttributeProductId:
		s.productId = &val.str
	case InAppAttributeTransactionId:
		s.transactionId = &val.str
	case InAppAttributeOriginalTransactionId:
		s.originalTransactionId = &val.str
	case InAppAttributeProductType:
		productType := ProductType(val.integer)
		if !productType.valid() || int64(productType) != val.integer {
			return fmt.Errorf("%s: unknown value %d", attrType, val.integer)
		}
		s.productType = &productType
	case InAppAttributePurchaseDate:
		s.purchaseDate = &val.timestamp
	case InAppAttributeOriginalPurchaseDate:
		s.originalPurchaseDate = &val.timestamp
	case InAppAttributeExpiresDate:
		s.expiresDate = &val.timestamp
	case InAppAttributeCancellationDate:
		s.cancellationDate = &val.timestamp
	case InAppAttributeIsInTrialPeriod:
		s.isInTrialPeriod = &val.boolean
	case InAppAttributeIsInIntroOfferPeriod:
		s.isInIntroOfferPeriod = &val.boolean
	case InAppAttributeWebOrderLineItemId:
		s.webOrderLineItemId = &val.integer
	case InAppAttributePromotionalOfferIdentifier:
		s.promotionalOfferIdentifier = &val.str
	default:
		return fmt.Errorf("unhandled attribute %s", attrType)
	}
	return nil
}

func (s *inAppPurchaseScratch) build() (InAppPurchase, error) {
	var missing []string
	if s.quantity == nil {
		missing = append(missing, InAppAttributeQuantity.String())
	}
	if s.productId == nil {
		missing = append(missing, InAppAttributeProductId.String())
	}
	if s.transactionId == nil {
		missing = append(missing, InAppAttributeTransactionId.String())
	}
	if len(missing) > 0 {
		return InAppPurchase{}, &IncompleteError{
			Kind:    ErrInAppIncomplete,
			Missing: missing,
		}
	}
	return InAppPurchase{
		Quantity:                   *s.quantity,
		ProductId:                  *s.productId,
		TransactionId:              *s.transactionId,
		OriginalTransactionId:      s.originalTransactionId,
		ProductType:                s.productType,
		PurchaseDate:               s.purchaseDate,
		OriginalPurchaseDate:       s.originalPurchaseDate,
		ExpiresDate:                s.expiresDate,
		CancellationDate:           s.cancellationDate,
		IsInTrialPeriod:            s.isInTrialPeriod,
		IsInIntroOfferPeriod:       s.isInIntroOfferPeriod,
		WebOrderLineItemId:         s.webOrderLineItemId,
		PromotionalOfferIdentifier: s.promotionalOfferIdentifier,
	}, nil
}
