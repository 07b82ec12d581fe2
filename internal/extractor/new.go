package extractor

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/llm"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type implExtractor struct {
	generative    Strategy
	deterministic Strategy
	logger        logger.Logger
}

// New creates an Extractor that asks client for a JSON array first and falls
// back to pattern matching.
func New(client llm.Client, maxOutputTokens int, log logger.Logger) Extractor {
	return NewWithStrategies(NewGenerative(client, maxOutputTokens), NewDeterministic(), log)
}

// NewWithStrategies wires explicit primary and fallback strategies.
func NewWithStrategies(generative, deterministic Strategy, log logger.Logger) Extractor {
	return &implExtractor{
		generative:    generative,
		deterministic: deterministic,
		logger:        log,
	}
}
