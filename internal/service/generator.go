package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"wordgen/internal/domain"
	"wordgen/internal/repository"

	"go.uber.org/zap"
)

var errEmptyWord = errors.New("word source returned an empty word")

// GeneratorService assembles word lists from an upstream source,
// substituting fallback words for failed fetches
type GeneratorService struct {
	source repository.WordSource
	logger *zap.Logger
	pick   func(n int) int
}

// GeneratorOption customizes a GeneratorService
type GeneratorOption func(*GeneratorService)

// WithPicker replaces the uniform random index picker.
// pick(n) must return a value in [0, n).
func WithPicker(pick func(n int) int) GeneratorOption {
	return func(s *GeneratorService) { s.pick = pick }
}

// NewGeneratorService creates a new generator service
func NewGeneratorService(source repository.WordSource, logger *zap.Logger, opts ...GeneratorOption) *GeneratorService {
	s := &GeneratorService{
		source: source,
		logger: logger,
		pick:   rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateFromInput parses a raw count and generates that many words
func (s *GeneratorService) GenerateFromInput(ctx context.Context, raw string) ([]string, error) {
	count, err := domain.ParseCount(raw)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, count)
}

// Generate returns exactly count words in request order.
// Only an out-of-range count is reported as an error; every failed fetch
// is replaced by a fallback word. Once ctx is done the remaining positions
// are filled from the fallback pool without further fetches.
func (s *GeneratorService) Generate(ctx context.Context, count int) ([]string, error) {
	if err := domain.ValidateCount(count); err != nil {
		return nil, err
	}

	start := time.Now()
	words := make([]string, 0, count)
	fallbacks := 0

	for i := 0; i < count; i++ {
		word, err := s.fetch(ctx)
		if err != nil {
			s.logger.Debug("Word fetch failed, using fallback",
				zap.Int("position", i),
				zap.Error(err),
			)
			word = s.fallback()
			fallbacks++
		}
		words = append(words, word)
	}

	s.logger.Info("Words generated",
		zap.Int("count", count),
		zap.Int("fallbacks", fallbacks),
		zap.Duration("duration", time.Since(start)),
	)

	return words, nil
}

func (s *GeneratorService) fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	word, err := s.source.FetchWord(ctx)
	if err != nil {
		return "", err
	}
	if word == "" {
		return "", errEmptyWord
	}
	return word, nil
}

func (s *GeneratorService) fallback() string {
	return domain.FallbackWord(s.pick(domain.FallbackSize))
}
