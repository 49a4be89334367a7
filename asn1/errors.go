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
	"errors"
	"fmt"
)

// Sentinel error for any malformed TLV input so callers can use errors.Is
var ErrStructural = errors.New("payload can't be interpreted as ASN.1")

// StructuralError describes where and why the input could not be decoded
type StructuralError struct {
	// Offset of the offending unit relative to the start of the decoded input, or -1 if unknown
	Offset int
	Reason string
}

// NewStructuralError returns a StructuralError with a formatted reason
func NewStructuralError(offset int, format string, args ...any) *StructuralError {
	return &StructuralError{
		Offset: offset,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *StructuralError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", ErrStructural, e.Reason)
	}
	return fmt.Sprintf(
		"%s: %s (offset %d)",
		ErrStructural,
		e.Reason,
		e.Offset,
	)
}

func (*StructuralError) Is(target error) bool {
	return target == ErrStructural
}
