//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	apperrors "github.com/rabbitt-ai/quizforge/internal/errors"
)

const (
	maxBlueprintTopicLen  = 255
	maxBlueprintQuestions = 100
	maxGenerateQuestions  = 50
)

// ExperienceLevel is the target audience level for a blueprint.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"
)

// Valid reports whether the experience level is supported.
func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert:
		return true
	default:
		return false
	}
}

// ParseExperienceLevel normalizes a level string, defaulting to intermediate
// when empty, and reports whether it is supported.
func ParseExperienceLevel(value string) (ExperienceLevel, bool) {
	level := ExperienceLevel(strings.ToLower(strings.TrimSpace(value)))
	if level == "" {
		return ExperienceIntermediate, true
	}
	if level.Valid() {
		return level, true
	}
	return "", false
}

// DifficultyDistribution splits a blueprint's questions across difficulty
// bands as percentages. The three bands must total exactly 100.
type DifficultyDistribution struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Total returns the sum of the three bands.
func (d DifficultyDistribution) Total() int { return d.Easy + d.Medium + d.Hard }

// DefaultDifficultyDistribution is the even split offered by the form.
func DefaultDifficultyDistribution() DifficultyDistribution {
	return DifficultyDistribution{Easy: 33, Medium: 34, Hard: 33}
}

// Blueprint defines the structure and parameters of an assessment.
type Blueprint struct {
	ID             string          `json:"id"              db:"id"`
	Topic          string          `json:"topic"           db:"topic"`
	JobDescription *string         `json:"job_description,omitempty" db:"job_description"`
	QuestionCount  int             `json:"question_count"  db:"question_count"`
	Experience     ExperienceLevel `json:"experience"      db:"experience"`
	Easy           int             `json:"easy"            db:"easy"`
	Medium         int             `json:"medium"          db:"medium"`
	Hard           int             `json:"hard"            db:"hard"`
	CreatedBy      string          `json:"created_by"      db:"created_by"`
	CreatedAt      time.Time       `json:"created_at"      db:"created_at"`
}

// Distribution returns the blueprint's difficulty split.
func (b *Blueprint) Distribution() DifficultyDistribution {
	return DifficultyDistribution{Easy: b.Easy, Medium: b.Medium, Hard: b.Hard}
}

// CreateBlueprintRequest represents parameters to create a Blueprint.
type CreateBlueprintRequest struct {
	Topic          string                 `json:"topic"`
	JobDescription *string                `json:"job_description,omitempty"`
	QuestionCount  int                    `json:"question_count"`
	Experience     ExperienceLevel        `json:"experience,omitempty"`
	Distribution   DifficultyDistribution `json:"distribution"`
	CreatedBy      string                 `json:"-"`
}

// Validate validates CreateBlueprintRequest.
func (r *CreateBlueprintRequest) Validate() error {
	topic := strings.TrimSpace(r.Topic)
	if topic == "" {
		return apperrors.ValidationField("topic", "topic is required and cannot be empty")
	}
	if len(topic) > maxBlueprintTopicLen {
		return apperrors.ValidationField("topic", "topic is too long")
	}
	if r.QuestionCount < 1 || r.QuestionCount > maxBlueprintQuestions {
		return apperrors.ValidationField("question_count", "question count must be between 1 and 100")
	}
	if r.Experience != "" && !r.Experience.Valid() {
		return apperrors.ValidationField("experience", "unknown experience level")
	}
	if r.Distribution.Total() != 100 {
		return apperrors.ValidationField("distribution", "the difficulty levels must add up to 100%")
	}
	if r.Distribution.Easy < 0 || r.Distribution.Medium < 0 || r.Distribution.Hard < 0 {
		return apperrors.ValidationField("distribution", "difficulty percentages cannot be negative")
	}
	return nil
}
