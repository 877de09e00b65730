// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and phones.
package model

import "strconv"

// =============================================================================
// PHONE TYPE
// =============================================================================

// Phone is a catalog entry as served by the assistant API.
type Phone struct {
	ID       int     `json:"id"`
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	PriceINR float64 `json:"price_inr"`

	// Display
	DisplaySize float64 `json:"display_size"`
	DisplayType string  `json:"display_type"`
	Resolution  string  `json:"resolution"`
	RefreshRate int     `json:"refresh_rate"`

	// Performance
	Processor string `json:"processor"`
	RAMGB     int    `json:"ram_gb"`
	StorageGB int    `json:"storage_gb"`

	// Camera
	RearCamera  string `json:"rear_camera"`
	FrontCamera string `json:"front_camera"`

	// Battery
	BatteryMAH       int  `json:"battery_mah"`
	FastChargingW    int  `json:"fast_charging_w"`
	WirelessCharging bool `json:"wireless_charging"`

	// Misc
	OS         string   `json:"os"`
	LaunchYear int      `json:"launch_year"`
	Dimensions string   `json:"dimensions"`
	WeightG    float64  `json:"weight_g"`
	Features   []string `json:"features,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Highlights string   `json:"highlights,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
	CreatedAt  string   `json:"created_at,omitempty"`
}

// DisplayName returns the brand and model as shown in cards and tables.
func (p *Phone) DisplayName() string {
	if p.Brand == "" {
		return p.Model
	}
	return p.Brand + " " + p.Model
}

// SpecLine returns the one-line spec summary used on collapsed cards,
// e.g. "8GB RAM | 256GB | 5000mAh".
func (p *Phone) SpecLine() string {
	return strconv.Itoa(p.RAMGB) + "GB RAM | " +
		strconv.Itoa(p.StorageGB) + "GB | " +
		strconv.Itoa(p.BatteryMAH) + "mAh"
}

// =============================================================================
// COMPARISON TYPES
// =============================================================================

// ComparisonRow is one spec row of a side-by-side comparison. Values is
// keyed by the phone id rendered as a decimal string; Winner, when set,
// holds the id of the phone that wins this row.
type ComparisonRow struct {
	SpecName string            `json:"spec_name"`
	Values   map[string]string `json:"values"`
	Winner   string            `json:"winner,omitempty"`
}

// Comparison is the result of comparing phones side by side.
type Comparison struct {
	Phones         []Phone         `json:"phones"`
	Rows           []ComparisonRow `json:"comparison"`
	Summary        string          `json:"summary"`
	Recommendation string          `json:"recommendation,omitempty"`
}
