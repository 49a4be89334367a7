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
	"maps"
	"slices"
)

// PurchasedIntroOfferProductIdentifiers returns the set of product IDs that were purchased
// during a free trial or an introductory price period
func (r *Receipt) PurchasedIntroOfferProductIdentifiers() map[string]struct{} {
	ret := make(map[string]struct{})
	for _, purchase := range r.InAppPurchases {
		if purchase.UsedIntroOffer() {
			ret[purchase.ProductId] = struct{}{}
		}
	}
	return ret
}

// IntroOfferProductIdentifiers returns the same product IDs as
// PurchasedIntroOfferProductIdentifiers as a sorted list
func (r *Receipt) IntroOfferProductIdentifiers() []string {
	return slices.Sorted(maps.Keys(r.PurchasedIntroOfferProductIdentifiers()))
}
