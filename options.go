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
	"log/slog"
)

// ParserOptionFunc is a type that represents functions that modify the Parser config
type ParserOptionFunc func(*Parser)

// WithLogger specifies the logger used for debug output. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) ParserOptionFunc {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithMaxReceiptSize rejects receipts larger than the specified number of bytes with
// ErrReceiptTooLarge. A value of 0 means no limit
func WithMaxReceiptSize(maxSize int) ParserOptionFunc {
	return func(p *Parser) {
		p.maxReceiptSize = maxSize
	}
}
