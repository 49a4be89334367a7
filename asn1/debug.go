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

package asn1

import (
	"bytes"
	"fmt"
)

// Max number of payload bytes shown for primitive units
const dumpPreviewBytes = 16

// DumpContainer generates an indented string representing a decoded tree for debugging purposes
func DumpContainer(c Container, prefix string) string {
	var ret bytes.Buffer
	ret.WriteString(prefix + describe(c))
	if !c.IsConstructed() {
		ret.WriteString(",\n")
		return ret.String()
	}
	ret.WriteString(" [\n")
	newPrefix := prefix
	// Override original user-provided prefix
	// This assumes the original prefix won't start with a space
	if len(newPrefix) > 1 && newPrefix[0] != ' ' {
		newPrefix = ""
	}
	// Add 2 more spaces to the new prefix
	newPrefix = "  " + newPrefix
	for _, child := range c.Children {
		ret.WriteString(DumpContainer(child, newPrefix))
	}
	ret.WriteString(prefix + "],\n")
	return ret.String()
}

func describe(c Container) string {
	var name string
	if c.Class == ClassUniversal {
		name = c.Tag.String()
	} else {
		name = fmt.Sprintf("%s [%d]", c.Class, c.Tag)
	}
	ret := fmt.Sprintf(
		"%s (offset %d, length %d)",
		name,
		c.Offset,
		c.Length.Value,
	)
	if c.IsConstructed() {
		return ret
	}
	switch {
	case c.IsUniversal(TagObjectIdentifier):
		if oid, err := c.ObjectIdentifier(); err == nil {
			ret += " " + string(oid)
			if contentType, ok := LookupPKCS7ContentType(oid); ok {
				ret += " (" + contentType.String() + ")"
			}
		}
	case c.IsUniversal(TagUTF8String), c.IsUniversal(TagIA5String), c.IsUniversal(TagPrintableString):
		if s, err := c.UTF8String(); err == nil {
			ret += fmt.Sprintf(" %q", s)
		}
	case c.IsUniversal(TagInteger) && c.Length.Value <= maxUintOctets:
		if v, err := c.Int(); err == nil {
			ret += fmt.Sprintf(" %d", v)
		}
	case len(c.Payload) > dumpPreviewBytes:
		ret += fmt.Sprintf(" <bytes> %x...", c.Payload[:dumpPreviewBytes])
	case len(c.Payload) > 0:
		ret += fmt.Sprintf(" <bytes> %x", c.Payload)
	}
	return ret
}
