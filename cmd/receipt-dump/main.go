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

package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/blinklabs-io/goreceipt"
	"github.com/blinklabs-io/goreceipt/asn1"
	"github.com/blinklabs-io/goreceipt/cbor"
	"github.com/blinklabs-io/goreceipt/receipt"
)

const (
	formatText = "text"
	formatJson = "json"
	formatCbor = "cbor"
)

type globalFlags struct {
	flagset  *flag.FlagSet
	base64   bool
	format   string
	dumpAsn1 bool
	intro    bool
	maxSize  int
	debug    bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.BoolVar(
		&f.base64,
		"base64",
		false,
		"input is base64 encoded, as sent by the App Store",
	)
	f.flagset.StringVar(
		&f.format,
		"format",
		formatText,
		"output format (text, json, cbor)",
	)
	f.flagset.BoolVar(
		&f.dumpAsn1,
		"asn1",
		false,
		"dump the decoded ASN.1 structure of the receipt content",
	)
	f.flagset.BoolVar(
		&f.intro,
		"intro",
		false,
		"only list product IDs purchased with a free trial or introductory offer",
	)
	f.flagset.IntVar(
		&f.maxSize,
		"max-size",
		0,
		"reject receipts larger than this many bytes (0 for no limit)",
	)
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if f.debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}),
	)

	data, err := readInput(f)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	if f.dumpAsn1 {
		if err := dumpAsn1(data); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		return
	}

	parser := goreceipt.NewParser(
		goreceipt.WithLogger(logger),
		goreceipt.WithMaxReceiptSize(f.maxSize),
	)
	r, err := parser.Parse(data)
	if err != nil {
		fmt.Printf("ERROR: failed to parse receipt: %s\n", err)
		os.Exit(1)
	}

	if f.intro {
		for _, productId := range r.IntroOfferProductIdentifiers() {
			fmt.Println(productId)
		}
		return
	}

	switch f.format {
	case formatText:
		fmt.Print(formatReceipt(r))
	case formatJson:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			fmt.Printf("ERROR: failed to encode JSON: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	case formatCbor:
		out, err := cbor.Encode(r)
		if err != nil {
			fmt.Printf("ERROR: failed to encode CBOR: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(hex.EncodeToString(out))
	default:
		fmt.Printf("Unknown output format: %s\n", f.format)
		os.Exit(1)
	}
}

// readInput reads the receipt from the file named by the first argument, or stdin
func readInput(f *globalFlags) ([]byte, error) {
	var data []byte
	var err error
	if f.flagset.NArg() > 0 {
		data, err = os.ReadFile(f.flagset.Arg(0))
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}
	if f.base64 {
		decoded, err := base64.StdEncoding.DecodeString(
			string(bytes.TrimSpace(data)),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 input: %w", err)
		}
		return decoded, nil
	}
	return data, nil
}

func dumpAsn1(data []byte) error {
	root, err := asn1.Decode(data)
	if err != nil {
		return err
	}
	content, found, err := goreceipt.FindContent(root, asn1.PKCS7ContentTypeData)
	if err != nil {
		return err
	}
	if !found {
		// Dump the whole structure when there's no receipt content to narrow it down
		fmt.Print(asn1.DumpContainer(root, ""))
		return goreceipt.ErrContentOIDMissing
	}
	fmt.Print(asn1.DumpContainer(content, ""))
	if len(content.Children) == 0 {
		return nil
	}
	set, err := asn1.Decode(content.Children[0].Payload)
	if err != nil {
		return err
	}
	fmt.Print(asn1.DumpContainer(set, "payload: "))
	return nil
}

func formatReceipt(r *receipt.Receipt) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Bundle ID: %s\n", r.BundleId)
	fmt.Fprintf(&sb, "Application version: %s\n", r.ApplicationVersion)
	fmt.Fprintf(&sb, "Original application version: %s\n", r.OriginalApplicationVersion)
	fmt.Fprintf(&sb, "Opaque value: %x\n", r.OpaqueValue)
	fmt.Fprintf(&sb, "SHA-1 hash: %x\n", r.Sha1Hash)
	fmt.Fprintf(&sb, "Creation date: %s\n", r.CreationDate.Format(time.RFC3339))
	if r.ExpirationDate != nil {
		fmt.Fprintf(&sb, "Expiration date: %s\n", r.ExpirationDate.Format(time.RFC3339))
	}
	fmt.Fprintf(&sb, "In-app purchases: %d\n", len(r.InAppPurchases))
	for idx, purchase := range r.InAppPurchases {
		fmt.Fprintf(&sb, "  [%d] %s x%d (transaction %s)\n", idx, purchase.ProductId, purchase.Quantity, purchase.TransactionId)
		if purchase.ProductType != nil {
			fmt.Fprintf(&sb, "      type: %s\n", *purchase.ProductType)
		}
		if purchase.PurchaseDate != nil {
			fmt.Fprintf(&sb, "      purchased: %s\n", purchase.PurchaseDate.Format(time.RFC3339))
		}
		if purchase.ExpiresDate != nil {
			fmt.Fprintf(&sb, "      expires: %s\n", purchase.ExpiresDate.Format(time.RFC3339))
		}
		if purchase.CancellationDate != nil {
			fmt.Fprintf(&sb, "      cancelled: %s\n", purchase.CancellationDate.Format(time.RFC3339))
		}
		if purchase.UsedIntroOffer() {
			sb.WriteString("      trial or introductory offer\n")
		}
	}
	return sb.String()
}
