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

package receipt_test

import (
	"encoding/json"
	"testing"

	"github.com/blinklabs-io/goreceipt/cbor"
	"github.com/blinklabs-io/goreceipt/internal/test"
	"github.com/blinklabs-io/goreceipt/receipt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptCborRoundTrip(t *testing.T) {
	r, err := buildReceipt(
		t,
		withMandatory(
			test.Attribute{Type: test.AttrExpirationDate, Version: 1, Value: test.IA5String("2021-01-01T00:00:00Z")},
			test.InApp(
				purchaseAttributes(
					"com.app.pro",
					"1000000700000001",
					test.Attribute{Type: test.AttrProductType, Version: 1, Value: test.Integer(3)},
					test.Attribute{Type: test.AttrPurchaseDate, Version: 1, Value: test.IA5String("2020-07-22T20:16:05Z")},
					test.Attribute{Type: test.AttrIsInIntroOfferPeriod, Version: 1, Value: test.Integer(1)},
				)...,
			),
		)...,
	)
	require.NoError(t, err)
	assert.Nil(t, r.Cbor())

	cborData, err := cbor.Encode(r)
	require.NoError(t, err)

	var decoded receipt.Receipt
	_, err = cbor.Decode(cborData, &decoded)
	require.NoError(t, err)
	assert.Equal(t, cborData, decoded.Cbor())
	assert.Equal(t, r.BundleId, decoded.BundleId)
	assert.Equal(t, r.ApplicationVersion, decoded.ApplicationVersion)
	assert.Equal(t, r.OriginalApplicationVersion, decoded.OriginalApplicationVersion)
	assert.Equal(t, r.OpaqueValue, decoded.OpaqueValue)
	assert.Equal(t, r.Sha1Hash, decoded.Sha1Hash)
	assert.True(t, r.CreationDate.Equal(decoded.CreationDate))
	require.NotNil(t, decoded.ExpirationDate)
	assert.True(t, r.ExpirationDate.Equal(*decoded.ExpirationDate))
	require.Len(t, decoded.InAppPurchases, 1)
	purchase := decoded.InAppPurchases[0]
	assert.Equal(t, "com.app.pro", purchase.ProductId)
	assert.Equal(t, "1000000700000001", purchase.TransactionId)
	assert.Equal(t, 1, purchase.Quantity)
	require.NotNil(t, purchase.ProductType)
	assert.Equal(t, receipt.ProductTypeAutoRenewableSubscription, *purchase.ProductType)
	require.NotNil(t, purchase.PurchaseDate)
	assert.True(t, purchase.PurchaseDate.Equal(*r.InAppPurchases[0].PurchaseDate))
	assert.Nil(t, purchase.IsInTrialPeriod)
	assert.Equal(t, []string{"com.app.pro"}, decoded.IntroOfferProductIdentifiers())

	// The stored CBOR is returned as-is
	reencoded, err := cbor.Encode(&decoded)
	require.NoError(t, err)
	assert.Equal(t, cborData, reencoded)
}

func TestReceiptJson(t *testing.T) {
	r, err := buildReceipt(t, test.MandatoryReceiptAttributes()...)
	require.NoError(t, err)
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(
		t,
		`{
			"bundleId": "com.example.app",
			"applicationVersion": "42",
			"originalApplicationVersion": "1.0",
			"opaqueValue": "3q2+7w==",
			"sha1Hash": "AQIDBAU=",
			"creationDate": "2020-07-22T20:16:05Z",
			"inAppPurchases": []
		}`,
		string(data),
	)
}
