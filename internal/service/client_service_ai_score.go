// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/autobrain/internal/llm"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/scoring"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/internal/utils"
	"github.com/MKhiriev/autobrain/internal/validators"
	"github.com/MKhiriev/autobrain/models"
)

// promptDiagnostics caps how many recent diagnostics go into the prompt.
const promptDiagnostics = 5

type clientAIScoreService struct {
	storages  *store.ClientStorages
	generator llm.Generator
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time
}

// NewClientAIScoreService wires the scoring pipeline. A nil generator skips
// the model call and always uses the neutral assessment.
func NewClientAIScoreService(storages *store.ClientStorages, generator llm.Generator) ClientAIScoreService {
	return &clientAIScoreService{
		storages:  storages,
		generator: generator,
		validator: validators.NewEntityValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
	}
}

func (s *clientAIScoreService) Generate(ctx context.Context, userID string, car models.Car, signals *models.MarketSignals) (models.AIScore, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, car, validators.FieldCar, validators.FieldID, validators.FieldMileage); err != nil {
		return models.AIScore{}, err
	}

	now := s.now()
	diagnostics, records, overdue, err := s.collect(ctx, userID, car.ID, now)
	if err != nil {
		return models.AIScore{}, err
	}

	market := s.marketSignals(car, signals, records, now)
	sub := scoring.SubScores{
		Technical:   scoring.TechnicalScore(diagnostics),
		Maintenance: scoring.MaintenanceScore(records, overdue, now),
		Market:      scoring.MarketScore(market),
	}
	base := scoring.CompositeScore(sub, 0)

	assessment := s.assess(ctx, llm.PromptInput{
		Car:              car,
		TechnicalScore:   base.Technical,
		MaintenanceScore: base.Maintenance,
		MarketScore:      base.Market,
		BaseScore:        base.Overall,
		Diagnostics:      newest(diagnostics, promptDiagnostics),
		History:          records,
		Overdue:          overdue,
	})

	composite := scoring.CompositeScore(sub, assessment.ScoreAdjustment)
	score := models.AIScore{
		ID:               s.ids.Generate(),
		UserID:           userID,
		CarID:            car.ID,
		OverallScore:     composite.Overall,
		TechnicalScore:   composite.Technical,
		MaintenanceScore: composite.Maintenance,
		MarketScore:      composite.Market,
		LLMAdjustment:    composite.LLMAdjustment,
		Observations:     assessment.Observations,
		Recommendations:  assessment.Recommendations,
		Summary:          assessment.Summary,
		CreatedAt:        now,
	}
	score.Touch(now)

	if err := s.storages.AIScores.Save(ctx, score); err != nil {
		log.Err(err).Str("car_id", car.ID).Msg("failed to save ai score")
		return models.AIScore{}, fmt.Errorf("save ai score: %w", err)
	}

	log.Info().
		Str("car_id", car.ID).
		Int("overall", score.OverallScore).
		Int("llm_adjustment", score.LLMAdjustment).
		Msg("ai score generated")
	return score, nil
}

func (s *clientAIScoreService) History(ctx context.Context, userID, carID string) ([]models.AIScore, error) {
	return s.storages.AIScores.ListByCar(ctx, userID, carID)
}

func (s *clientAIScoreService) collect(ctx context.Context, userID, carID string, now time.Time) (
	[]models.Diagnostic, []models.MaintenanceRecord, []models.Reminder, error,
) {
	audio, err := s.storages.AudioDiagnostics.ListByCar(ctx, userID, carID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load audio diagnostics: %w", err)
	}
	video, err := s.storages.VideoDiagnostics.ListByCar(ctx, userID, carID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load video diagnostics: %w", err)
	}
	records, err := s.storages.Maintenance.ListByCar(ctx, userID, carID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load maintenance history: %w", err)
	}
	overdue, err := s.storages.Reminders.ListOverdue(ctx, userID, carID, now)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load overdue reminders: %w", err)
	}

	return append(audio, video...), records, overdue, nil
}

// assess asks the model for an adjustment. Any failure degrades to the
// neutral assessment; the score is still produced.
func (s *clientAIScoreService) assess(ctx context.Context, in llm.PromptInput) llm.Assessment {
	log := logger.FromContext(ctx)

	if s.generator == nil {
		return llm.NeutralAssessment()
	}

	prompt, err := llm.RenderPrompt(in)
	if err != nil {
		log.Err(err).Msg("failed to render assessment prompt")
		return llm.NeutralAssessment()
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("car_id", in.Car.ID).Msg("assessment model unavailable, using neutral assessment")
		return llm.NeutralAssessment()
	}

	a, err := llm.ParseAssessment(text)
	if err != nil {
		log.Warn().Err(err).Str("car_id", in.Car.ID).Msg("malformed assessment, using neutral assessment")
		return llm.NeutralAssessment()
	}
	return a
}

func (s *clientAIScoreService) marketSignals(car models.Car, signals *models.MarketSignals, records []models.MaintenanceRecord, now time.Time) models.MarketSignals {
	if signals != nil {
		return *signals
	}
	return models.MarketSignals{
		AgeYears:         max(now.Year()-car.Year, 0),
		Mileage:          car.Mileage,
		HasServiceRecord: len(records) > 0,
	}
}

func newest(diagnostics []models.Diagnostic, n int) []models.Diagnostic {
	sorted := slices.Clone(diagnostics)
	slices.SortFunc(sorted, func(a, b models.Diagnostic) int { return b.CreatedAt.Compare(a.CreatedAt) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
