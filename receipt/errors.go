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
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors so callers can use errors.Is
var (
	ErrReceiptIncomplete = errors.New(
		"error while parsing the receipt, one or more attributes are missing",
	)
	ErrInAppIncomplete = errors.New(
		"error while parsing in-app purchase, one or more attributes are missing or in the wrong format",
	)
)

// IncompleteError indicates a receipt or in-app purchase that could not be built, either
// because mandatory attributes never appeared or because a value failed to decode
type IncompleteError struct {
	// Kind is ErrReceiptIncomplete or ErrInAppIncomplete
	Kind    error
	Missing []string
	Err     error
}

func (e *IncompleteError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	if len(e.Missing) > 0 {
		fmt.Fprintf(&sb, ": missing %s", strings.Join(e.Missing, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *IncompleteError) Is(target error) bool {
	return target == e.Kind
}

func (e *IncompleteError) Unwrap() error { return e.Err }

func newInAppError(err error) *IncompleteError {
	return &IncompleteError{
		Kind: ErrInAppIncomplete,
		Err:  err,
	}
}
