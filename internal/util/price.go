// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the phonewise application.
package util

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Catalog prices are rupee amounts, so Indian digit grouping
// (1,29,999 rather than 129,999) is what users expect to see.
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR formats a rupee amount with the rupee sign and Indian digit
// grouping, e.g. 129999 -> "₹1,29,999". Fractional paise are dropped;
// catalog prices are whole rupees.
func FormatINR(amount float64) string {
	return inrPrinter.Sprintf("₹%v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}

// FormatINRCompact formats a rupee amount in the lakh/thousand shorthand
// common in Indian phone listings, e.g. 129999 -> "₹1.3L", 29999 -> "₹30K".
func FormatINRCompact(amount float64) string {
	switch {
	case amount >= 100000:
		return inrPrinter.Sprintf("₹%vL", number.Decimal(amount/100000, number.MaxFractionDigits(1)))
	case amount >= 1000:
		return inrPrinter.Sprintf("₹%vK", number.Decimal(math.Round(amount/1000), number.MaxFractionDigits(0)))
	default:
		return FormatINR(amount)
	}
}
