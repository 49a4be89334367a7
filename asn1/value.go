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
	"time"
	"unicode/utf8"
)

// Receipts carry dates as ASCII text in the form yyyy-MM-ddTHH:mm:ssZ
const DateLayout = time.RFC3339

// UTF8String interprets the payload as UTF-8 text
func (c Container) UTF8String() (string, error) {
	if !utf8.Valid(c.Payload) {
		return "", NewStructuralError(c.Offset, "payload is not valid UTF-8")
	}
	return string(c.Payload), nil
}

// ASCIIDate interprets the payload as an ASCII encoded RFC 3339 timestamp
func (c Container) ASCIIDate() (time.Time, error) {
	for _, b := range c.Payload {
		if b > 0x7f {
			return time.Time{}, NewStructuralError(
				c.Offset,
				"date payload is not ASCII",
			)
		}
	}
	ret, err := time.Parse(DateLayout, string(c.Payload))
	if err != nil {
		return time.Time{}, NewStructuralError(
			c.Offset,
			"invalid date %q: %s",
			c.Payload,
			err,
		)
	}
	return ret, nil
}

// Uint interprets the payload as a big-endian unsigned integer
func (c Container) Uint() (uint64, error) {
	ret, err := BigEndianUint(c.Payload)
	if err != nil {
		return 0, withOffset(err, c.Offset)
	}
	return ret, nil
}

// Int interprets the payload as a big-endian two's complement signed integer
func (c Container) Int() (int64, error) {
	ret, err := BigEndianInt(c.Payload)
	if err != nil {
		return 0, withOffset(err, c.Offset)
	}
	return ret, nil
}

// Bool interprets the payload as an integer flag, where 1 is true and anything else is false
func (c Container) Bool() (bool, error) {
	ret, err := c.Uint()
	if err != nil {
		return false, err
	}
	return ret == 1, nil
}

func withOffset(err error, offset int) error {
	if serr, ok := err.(*StructuralError); ok && serr.Offset < 0 {
		serr.Offset = offset
	}
	return err
}
