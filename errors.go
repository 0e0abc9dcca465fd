// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz78

package lz78

import (
	"errors"
	"fmt"
)

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrInvalidContainer  = errors.New("invalid lz78 container")
	ErrEncodingInvariant = errors.New("lz78 encoding invariant violated")
	ErrUnsupportedInput  = errors.New("symbol outside single-byte range")
	ErrNilReader         = errors.New("reader is nil")
	ErrNilWriter         = errors.New("writer is nil")
	ErrInputTooLarge     = errors.New("input exceeds size limit")

	// Narrower container failures; each matches ErrInvalidContainer with errors.Is.
	ErrTruncatedHeader = fmt.Errorf("%w: truncated header", ErrInvalidContainer)
	ErrBadPadCount     = fmt.Errorf("%w: pad count out of range", ErrInvalidContainer)
	ErrNonZeroPadding  = fmt.Errorf("%w: non-zero padding bits", ErrInvalidContainer)
	ErrTrailingBits    = fmt.Errorf("%w: trailing bits do not form a codeword", ErrInvalidContainer)
)
