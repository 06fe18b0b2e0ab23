package model

import (
	"time"
)

type Comment struct {
	ID        string       `json:"id"`
	ReportID  string       `json:"report_id"`
	Text      string       `json:"text"`
	Author    UserSnapshot `json:"author"`
	CreatedAt time.Time    `json:"created_at"`
}
