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

// Package goreceipt decodes App Store receipts.
//
// A receipt is a DER encoded PKCS#7 SignedData structure. The receipt itself is the
// content that follows the PKCS#7 data content type OID. Signature and certificate
// chain verification are out of scope and must be done separately.
package goreceipt

import (
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/goreceipt/asn1"
	"github.com/blinklabs-io/goreceipt/receipt"
)

// Parser decodes receipts. It holds no mutable state and is safe for concurrent use
type Parser struct {
	logger         *slog.Logger
	maxReceiptSize int
	builder        *receipt.ReceiptBuilder
}

// NewParser returns a new Parser object with the specified options
func NewParser(options ...ParserOptionFunc) *Parser {
	p := &Parser{}
	// Apply provided options functions
	for _, option := range options {
		option(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	p.builder = receipt.NewReceiptBuilder(p.logger)
	return p
}

// Parse decodes a receipt using a Parser with default options
func Parse(data []byte) (*receipt.Receipt, error) {
	return NewParser().Parse(data)
}

// Parse decodes the PKCS#7 container in data and builds the receipt it carries
func (p *Parser) Parse(data []byte) (*receipt.Receipt, error) {
	if data == nil {
		return nil, ErrMissingReceipt
	}
	if len(data) == 0 {
		return nil, ErrEmptyReceipt
	}
	if p.maxReceiptSize > 0 && len(data) > p.maxReceiptSize {
		return nil, fmt.Errorf(
			"%w: %d bytes, limit %d",
			ErrReceiptTooLarge,
			len(data),
			p.maxReceiptSize,
		)
	}
	root, err := asn1.Decode(data)
	if err != nil {
		return nil, err
	}
	content, found, err := FindContent(root, asn1.PKCS7ContentTypeData)
	if err != nil {
		return nil, err
	}
	if !found {
		p.logger.Debug("receipt content not found", "content_type", asn1.PKCS7ContentTypeData)
		return nil, ErrContentOIDMissing
	}
	p.logger.Debug(
		"found receipt content",
		"content_type", asn1.PKCS7ContentTypeData,
		"offset", content.Offset,
		"length", content.Length.Value,
	)
	return p.builder.Build(content)
}

// FindContent searches the tree depth-first for a PKCS#7 content type OID and returns
// the unit that immediately follows it in the same container. OIDs that fail to decode
// are not a match. An error is only returned when the matching OID has nothing after it
func FindContent(
	root asn1.Container,
	want asn1.PKCS7ContentType,
) (asn1.Container, bool, error) {
	if !root.IsConstructed() {
		return asn1.Container{}, false, nil
	}
	wantOid := want.ObjectIdentifier()
	// Bytes of the parent payload not yet consumed by preceding children
	remaining := root.Payload
	for _, child := range root.Children {
		remaining = remaining[child.TotalBytes():]
		if child.IsUniversal(asn1.TagObjectIdentifier) {
			oid, err := child.ObjectIdentifier()
			if err != nil || oid != wantOid {
				continue
			}
			content, err := asn1.Decode(remaining)
			if err != nil {
				return asn1.Container{}, false, fmt.Errorf(
					"content following %s OID at offset %d: %w",
					want,
					child.Offset,
					err,
				)
			}
			// Report offsets relative to the original input
			return rebase(content, child.Offset+child.TotalBytes()), true, nil
		}
		if child.IsConstructed() {
			content, found, err := FindContent(child, want)
			if err != nil || found {
				return content, found, err
			}
		}
	}
	return asn1.Container{}, false, nil
}

func rebase(c asn1.Container, offset int) asn1.Container {
	c.Offset += offset
	if len(c.Children) > 0 {
		children := make([]asn1.Container, len(c.Children))
		for i, child := range c.Children {
			children[i] = rebase(child, offset)
		}
		c.Children = children
	}
	return c
}
