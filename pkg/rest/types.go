// Package rest holds the JSON contract of the public HTTP API.
package rest

import (
	"boatmatch/internal/domain/entity"
	"boatmatch/internal/domain/value"
)

// Weights are custom factor coefficients; they must sum to 1.
type Weights struct {
	Type     float64 `json:"type"`
	Size     float64 `json:"size"`
	Features float64 `json:"features"`
}

// ComparisonRequest compares two boat records.
type ComparisonRequest struct {
	First       entity.Boat `json:"first"`
	Second      entity.Boat `json:"second"`
	Preset      string      `json:"preset,omitempty" validate:"omitempty,max=32"`
	Weights     *Weights    `json:"weights,omitempty"`
	MatchPolicy string      `json:"matchPolicy,omitempty" validate:"omitempty,max=32"`
}

// MatchRequest ranks the catalog against an uploaded boat's attribute guess.
type MatchRequest struct {
	Boat        entity.Boat `json:"boat"`
	Limit       int         `json:"limit,omitempty" validate:"gte=0,lte=100"`
	Preset      string      `json:"preset,omitempty" validate:"omitempty,max=32"`
	MatchPolicy string      `json:"matchPolicy,omitempty" validate:"omitempty,max=32"`
}

type Boat = entity.Boat

type BoatList struct {
	Boats []Boat `json:"boats"`
}

type Comparison = value.ComparisonResult

type Match struct {
	Boat       Boat       `json:"boat"`
	Comparison Comparison `json:"comparison"`
}

type MatchList struct {
	Preset  string  `json:"preset"`
	Matches []Match `json:"matches"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string
