package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
	"github.com/sejanpass/sejanpass-go/internal/generator"
	"github.com/sejanpass/sejanpass-go/internal/metrics"
	"github.com/sejanpass/sejanpass-go/internal/model"
)

// MaxCount caps how many passwords one request may produce.
const MaxCount = 20

var ErrCountOutOfRange = fmt.Errorf("count must be between 1 and %d", MaxCount)

// AuditRecorder stores a generation event.
type AuditRecorder interface {
	Record(ctx context.Context, event *model.GenerationEvent) error
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	policy        generator.Policy
	defaultLength int
	source        generator.Source
	recorder      AuditRecorder
	logger        *slog.Logger
}

// GeneratorOption configures a GeneratorService.
type GeneratorOption func(*GeneratorService)

// WithDefaultLength sets the length used when a request omits it.
func WithDefaultLength(n int) GeneratorOption {
	return func(s *GeneratorService) { s.defaultLength = n }
}

// WithAuditRecorder records every successful generation.
func WithAuditRecorder(r AuditRecorder) GeneratorOption {
	return func(s *GeneratorService) { s.recorder = r }
}

// WithLogger replaces slog.Default.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(s *GeneratorService) { s.logger = l }
}

// NewGeneratorService creates a new GeneratorService. A nil source uses
// crypto/rand; any other source is serialized so handlers may share it.
func NewGeneratorService(policy generator.Policy, source generator.Source, opts ...GeneratorOption) *GeneratorService {
	switch source.(type) {
	case nil:
		source = generator.CryptoSource{}
	case generator.CryptoSource, *generator.LockedSource:
	default:
		source = generator.NewLockedSource(source)
	}

	s := &GeneratorService{
		policy:        policy,
		defaultLength: generator.DefaultLength,
		source:        source,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := s.config(req.Length, req.Uppercase, req.Lowercase, req.Numbers, req.Symbols)
	var clamped bool
	cfg.Length, clamped = s.policy.ClampLength(cfg.Length)

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxCount {
		metrics.GenerationRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return model.GenerateResponse{}, ErrCountOutOfRange
	}

	passwords := make([]string, 0, count)
	for range count {
		password, err := s.policy.Generate(cfg, s.source)
		if err != nil {
			metrics.GenerationRequests.WithLabelValues(outcome(err)).Inc()
			return model.GenerateResponse{}, err
		}
		passwords = append(passwords, password)
	}

	score := generator.StrengthScore(cfg)
	rating := generator.Classify(score)

	metrics.GenerationRequests.WithLabelValues(metrics.OutcomeGenerated).Inc()
	metrics.PasswordsGenerated.WithLabelValues(rating.String()).Add(float64(count))
	metrics.PasswordLength.Observe(float64(cfg.Length))

	s.record(ctx, cfg, score, rating, count)

	estimate := zxcvbn.PasswordStrength(passwords[0], nil)

	resp := model.GenerateResponse{
		Password: passwords[0],
		Length:   cfg.Length,
		Clamped:  clamped,
		Classes:  cfg.Classes.Names(),
		Score:    score,
		Rating:   rating.String(),
		Estimate: model.EntropyEstimate{
			Bits:      estimate.Entropy,
			Score:     estimate.Score,
			CrackTime: estimate.CrackTimeDisplay,
		},
	}
	if count > 1 {
		resp.Passwords = passwords
	}

	return resp, nil
}

// Strength scores a configuration without generating anything.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	cfg := s.config(req.Length, req.Uppercase, req.Lowercase, req.Numbers, req.Symbols)
	cfg.Length, _ = s.policy.ClampLength(cfg.Length)

	score := generator.StrengthScore(cfg)
	return model.StrengthResponse{
		Length:   cfg.Length,
		Score:    score,
		MaxScore: generator.MaxScore,
		Rating:   generator.Classify(score).String(),
	}
}

func (s *GeneratorService) config(length *int, upper, lower, numbers, symbols *bool) generator.Config {
	n := s.defaultLength
	if length != nil {
		n = *length
	}
	return generator.Config{
		Length: n,
		Classes: generator.FromFlags(
			boolOrDefault(upper, true),
			boolOrDefault(lower, true),
			boolOrDefault(numbers, true),
			boolOrDefault(symbols, true),
		),
	}
}

// record never fails the request; an unreachable audit store is only logged.
func (s *GeneratorService) record(ctx context.Context, cfg generator.Config, score int, rating generator.Rating, count int) {
	if s.recorder == nil {
		return
	}

	event := &model.GenerationEvent{
		Length:  cfg.Length,
		Classes: uint8(cfg.Classes),
		Score:   score,
		Rating:  rating.String(),
		Count:   count,
	}
	if err := s.recorder.Record(ctx, event); err != nil {
		s.logger.Warn("recording generation event failed", "error", err)
	}
}

func outcome(err error) string {
	if errors.Is(err, generator.ErrNoCharacterClassSelected) || errors.Is(err, generator.ErrLengthOutOfRange) {
		return metrics.OutcomeRejected
	}
	return metrics.OutcomeFailed
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
