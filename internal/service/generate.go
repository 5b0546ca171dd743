package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/rabbitt-ai/quizforge/internal/domain/model"
)

// GenerateServiceOptions groups dependencies for GenerateService.
type GenerateServiceOptions struct {
	// Rand supplies the aspect picker. Defaults to a time-seeded source.
	Rand *rand.Rand
	// Now supplies the generation timestamp. Defaults to time.Now.
	Now func() time.Time
}

// GenerateService produces question sets for a topic. Question text is
// synthesized locally from a fixed set of aspects; no model call is made.
type GenerateService struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerateService constructs a new GenerateService.
func NewGenerateService(opts GenerateServiceOptions) *GenerateService {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &GenerateService{rng: rng, now: now}
}

// Generate validates the request and produces the question set.
func (s *GenerateService) Generate(_ context.Context, req *model.GenerateRequest) (*model.QuestionSet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	questions := make([]model.Question, req.QuestionCount)
	for i := range questions {
		aspect := model.QuestionAspects[s.rng.Intn(len(model.QuestionAspects))]
		questions[i] = model.Question{
			Number: i + 1,
			Text:   fmt.Sprintf("Q%d: What are the key principles of %s in relation to %s?", i+1, req.Topic, aspect),
		}
	}

	return &model.QuestionSet{
		Topic:       req.Topic,
		Questions:   questions,
		GeneratedAt: s.now().UTC(),
	}, nil
}

// ExportJSON renders a question set as indented JSON for download.
func (s *GenerateService) ExportJSON(set *model.QuestionSet) ([]byte, error) {
	if set == nil {
		return nil, fmt.Errorf("question set is required")
	}
	out, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode question set: %w", err)
	}
	return out, nil
}
