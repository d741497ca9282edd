package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tickmark-dev/tickmark/internal/model"
)

// JSONFileProducer reads an ExtractionResult already serialized as JSON, the
// handoff format every extraction strategy emits. Missing optional fields are
// tolerated: absent collections verify as no-ops and absent SOFP totals skip
// the balance check downstream.
type JSONFileProducer struct{}

// Name implements Producer.
func (p *JSONFileProducer) Name() string { return "jsonfile" }

// Extract implements Producer.
func (p *JSONFileProducer) Extract(_ context.Context, source string) (model.ExtractionResult, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return model.ExtractionResult{}, fmt.Errorf("reading extraction file: %w", err)
	}

	var result model.ExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return model.ExtractionResult{}, fmt.Errorf("parsing extraction file %s: %w", source, err)
	}
	return result, nil
}
