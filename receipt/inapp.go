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
	"time"
)

type ProductType int

const (
	ProductTypeUnknown                   ProductType = -1
	ProductTypeNonConsumable             ProductType = 0
	ProductTypeConsumable                ProductType = 1
	ProductTypeNonRenewingSubscription   ProductType = 2
	ProductTypeAutoRenewableSubscription ProductType = 3
)

func (p ProductType) valid() bool {
	return p >= ProductTypeUnknown && p <= ProductTypeAutoRenewableSubscription
}

func (p ProductType) String() string {
	switch p {
	case ProductTypeUnknown:
		return "unknown"
	case ProductTypeNonConsumable:
		return "non-consumable"
	case ProductTypeConsumable:
		return "consumable"
	case ProductTypeNonRenewingSubscription:
		return "non-renewing-subscription"
	case ProductTypeAutoRenewableSubscription:
		return "auto-renewable-subscription"
	default:
		return fmt.Sprintf("ProductType(%d)", int(p))
	}
}

// InAppPurchase is one purchase or subscription transaction from a receipt.
//
// Apple leaves out values rather than encoding an explicit empty marker, so everything
// other than quantity, product ID and transaction ID is optional and nil when absent
type InAppPurchase struct {
	Quantity                   int          `json:"quantity" cbor:"quantity"`
	ProductId                  string       `json:"productId" cbor:"productId"`
	TransactionId              string       `json:"transactionId" cbor:"transactionId"`
	OriginalTransactionId      *string      `json:"originalTransactionId,omitempty" cbor:"originalTransactionId,omitempty"`
	ProductType                *ProductType `json:"productType,omitempty" cbor:"productType,omitempty"`
	PurchaseDate               *time.Time   `json:"purchaseDate,omitempty" cbor:"purchaseDate,omitempty"`
	OriginalPurchaseDate       *time.Time   `json:"originalPurchaseDate,omitempty" cbor:"originalPurchaseDate,omitempty"`
	ExpiresDate                *time.Time   `json:"expiresDate,omitempty" cbor:"expiresDate,omitempty"`
	CancellationDate           *time.Time   `json:"cancellationDate,omitempty" cbor:"cancellationDate,omitempty"`
	IsInTrialPeriod            *bool        `json:"isInTrialPeriod,omitempty" cbor:"isInTrialPeriod,omitempty"`
	IsInIntroOfferPeriod       *bool        `json:"isInIntroOfferPeriod,omitempty" cbor:"isInIntroOfferPeriod,omitempty"`
	WebOrderLineItemId         *int64       `json:"webOrderLineItemId,omitempty" cbor:"webOrderLineItemId,omitempty"`
	PromotionalOfferIdentifier *string      `json:"promotionalOfferIdentifier,omitempty" cbor:"promotionalOfferIdentifier,omitempty"`
}

// UsedIntroOffer returns true if the purchase was made during a free trial or an
// introductory price period
func (p InAppPurchase) UsedIntroOffer() bool {
	return (p.IsInTrialPeriod != nil && *p.IsInTrialPeriod) ||
		(p.IsInIntroOfferPeriod != nil && *p.IsInIntroOfferPeriod)
}
