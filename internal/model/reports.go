package model

import (
	"time"
)

// Waste report lifecycle states. A report starts as REPORTED and only ever
// moves forward; CLEANED is terminal.
const (
	StatusReported   = "REPORTED"
	StatusInProgress = "IN_PROGRESS"
	StatusCleaned    = "CLEANED"
)

// Waste type categories.
const (
	WastePlastic    = "PLASTIC"
	WasteHousehold  = "HOUSEHOLD"
	WasteIndustrial = "INDUSTRIAL"
	WasteElectronic = "ELECTRONIC"
	WasteBulk       = "BULK"
	WasteOther      = "OTHER"
)

// Severity levels.
const (
	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"
)

type Location struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Address   string  `json:"address"`
}

// UserSnapshot is an identity captured at event time. It is embedded by value
// in reports and comments so a later profile rename never rewrites history.
type UserSnapshot struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type WasteReport struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	WasteType    string        `json:"waste_type"`
	Severity     string        `json:"severity"`
	Location     Location      `json:"location"`
	Images       []string      `json:"images"`
	CleanedImage *string       `json:"cleaned_image,omitempty"`
	Status       string        `json:"status"`
	Reporter     UserSnapshot  `json:"reporter"`
	Cleaner      *UserSnapshot `json:"cleaner,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ReportDraft is the caller-supplied portion of a new report. Location is a
// pointer so missing coordinates are distinguishable from (0, 0).
type ReportDraft struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	WasteType   string    `json:"waste_type"`
	Severity    string    `json:"severity"`
	Location    *Location `json:"location"`
	Images      []string  `json:"images"`
}

// ReportFilter narrows a listing. Empty or "ALL" values are no-ops; set
// criteria compose by AND.
type ReportFilter struct {
	Status    string `json:"status"`
	WasteType string `json:"waste_type"`
	Severity  string `json:"severity"`
}

type TransitionRequest struct {
	Status       string  `json:"status"`
	CleanedImage *string `json:"cleaned_image,omitempty"`
}
