package model

import (
	"strings"
	"time"

	apperrors "github.com/rabbitt-ai/quizforge/internal/errors"
)

// GenerationTopics are the subjects offered by the generation form.
var GenerationTopics = []string{
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"Computer Science",
	"History",
	"Geography",
	"Literature",
	"Language Arts",
	"Economics",
}

// QuestionAspects are the angles a generated question can probe a topic from.
var QuestionAspects = []string{
	"practical applications",
	"theoretical frameworks",
	"historical developments",
	"modern interpretations",
}

// Question is a single generated assessment question.
type Question struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// QuestionSet is the outcome of one generation run.
type QuestionSet struct {
	Topic       string     `json:"topic"`
	Questions   []Question `json:"questions"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// GenerateRequest represents parameters for a question generation run.
type GenerateRequest struct {
	Topic         string `json:"topic"`
	QuestionCount int    `json:"question_count"`
}

// Validate validates GenerateRequest.
func (r *GenerateRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return apperrors.ValidationField("topic", "please select a topic to generate questions")
	}
	if r.QuestionCount < 1 || r.QuestionCount > maxGenerateQuestions {
		return apperrors.ValidationField("question_count", "question count must be between 1 and 50")
	}
	return nil
}
