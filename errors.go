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

package goreceipt

import (
	"errors"

	"github.com/blinklabs-io/goreceipt/asn1"
	"github.com/blinklabs-io/goreceipt/receipt"
)

var (
	ErrMissingReceipt    = errors.New("no receipt provided")
	ErrEmptyReceipt      = errors.New("receipt is empty")
	ErrContentOIDMissing = errors.New("PKCS#7 data content type not found in receipt")
	ErrReceiptTooLarge   = errors.New("receipt exceeds the maximum allowed size")

	// Re-exported so callers only need this package to classify errors
	ErrStructural        = asn1.ErrStructural
	ErrReceiptIncomplete = receipt.ErrReceiptIncomplete
	ErrInAppIncomplete   = receipt.ErrInAppIncomplete
)
