package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialMediaAlert - событие мониторинга соцсетей. ExternalID - ключ
// идемпотентности: повторный опрос одного и того же окна не должен
// создавать дубликатов.
type SocialMediaAlert struct {
	ID           uuid.UUID  `json:"id"`
	ExternalID   string     `json:"external_id"`
	Source       string     `json:"source"`
	Platform     string     `json:"platform"`
	ContentType  string     `json:"content_type"`
	Content      string     `json:"content"`
	Category     string     `json:"category"`
	Severity     string     `json:"severity"`
	StudentName  string     `json:"student_name,omitempty"`
	StudentGrade string     `json:"student_grade,omitempty"`
	AlertID      *uuid.UUID `json:"alert_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

const (
	SocialSeverityCritical = "CRITICAL"
	SocialSeverityHigh     = "HIGH"
)

// Site - площадка (школа) с координатами для погодного опроса
type Site struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}
