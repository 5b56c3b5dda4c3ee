package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Provider.GeminiAPIKey == "" {
		return fmt.Errorf("provider.gemini_api_key must be set")
	}

	if err := c.Pipeline.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}

	return nil
}

func (p *PipelineConfig) validate() error {
	if p.StageTimeout <= 0 {
		return fmt.Errorf("stage_timeout must be > 0 (got %v)", p.StageTimeout)
	}
	if p.EnrichSegmentCap <= 0 {
		return fmt.Errorf("enrich_segment_cap must be > 0 (got %d)", p.EnrichSegmentCap)
	}
	return nil
}

func (q *QuizConfig) validate() error {
	if q.ChoicesPerQuestion < 2 {
		return fmt.Errorf("choices_per_question must be >= 2 (got %d)", q.ChoicesPerQuestion)
	}
	if q.DefaultQuestionCount <= 0 {
		return fmt.Errorf("default_question_count must be > 0 (got %d)", q.DefaultQuestionCount)
	}
	return nil
}
