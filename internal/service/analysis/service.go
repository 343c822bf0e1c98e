// Package analysis runs a transcript through decode, parse, metrics and classification.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zhouzirui/talklens/backend/internal/analysis/content"
	"github.com/zhouzirui/talklens/backend/internal/analysis/encoding"
	"github.com/zhouzirui/talklens/backend/internal/analysis/metrics"
	"github.com/zhouzirui/talklens/backend/internal/analysis/relationship"
	"github.com/zhouzirui/talklens/backend/internal/analysis/transcript"
	relationshipModel "github.com/zhouzirui/talklens/backend/internal/model/relationship"
	"github.com/zhouzirui/talklens/backend/internal/model/talk"
	"github.com/zhouzirui/talklens/backend/internal/service/counter"
)

var (
	ErrDecodeFailure            = errors.New("transcript could not be decoded")
	ErrNoMessagesFound          = errors.New("no messages found")
	ErrInsufficientParticipants = errors.New("fewer than two participants")
)

// Message 将失败原因转换为展示给用户的文案
func Message(err error) string {
	switch {
	case errors.Is(err, ErrDecodeFailure):
		return "ファイルを読み込めませんでした。空のファイルでないか確認してください。"
	case errors.Is(err, ErrNoMessagesFound):
		return "メッセージが見つかりませんでした。LINEのトーク履歴ファイルか確認してください。"
	case errors.Is(err, ErrInsufficientParticipants):
		return "2人以上の参加者が見つかりませんでした。1対1のトーク履歴を選んでください。"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "解析が中断されました。もう一度お試しください。"
	default:
		return "解析中にエラーが発生しました。"
	}
}

// Stage names one step of the pipeline.
type Stage string

const (
	StageDecode   Stage = "decode"
	StageParse    Stage = "parse"
	StageMetrics  Stage = "metrics"
	StageClassify Stage = "classify"
)

// Stages lists every stage in execution order.
var Stages = []Stage{StageDecode, StageParse, StageMetrics, StageClassify}

// Progress 在每个阶段完成后回调
type Progress func(stage Stage, percent int)

// Options configures a Service.
type Options struct {
	Thresholds relationship.Thresholds
	Location   *time.Location
	Locales    []content.PatternSet
	Types      relationshipModel.Store
	Counter    counter.Counter
}

// Service is stateless between calls and safe for concurrent use.
type Service struct {
	parser     *transcript.Parser
	engine     *metrics.Engine
	classifier *content.Classifier
	judge      *relationship.Classifier
	counter    counter.Counter
	log        zerolog.Logger
	now        func() time.Time
}

// NewService wires the pipeline. Zero-valued options fall back to defaults.
func NewService(opts Options, logger zerolog.Logger) *Service {
	classifier := content.Default
	if len(opts.Locales) > 0 {
		classifier = content.NewClassifier(opts.Locales...)
	}

	types := opts.Types
	if types == nil {
		types = relationshipModel.NewMemoryStore(relationshipModel.Catalog())
	}

	return &Service{
		parser:     transcript.NewParser(classifier, opts.Location),
		engine:     metrics.NewEngine(classifier),
		classifier: classifier,
		judge:      relationship.NewClassifier(opts.Thresholds, types),
		counter:    opts.Counter,
		log:        logger.With().Str("component", "analysis").Logger(),
		now:        time.Now,
	}
}

// Thresholds returns the tuning the relationship judge uses.
func (s *Service) Thresholds() relationship.Thresholds {
	return s.judge.Thresholds()
}

// Analyze runs the whole pipeline on raw export bytes.
func (s *Service) Analyze(ctx context.Context, raw []byte) (*talk.Result, error) {
	return s.AnalyzeWithProgress(ctx, raw, nil)
}

// AnalyzeWithProgress is Analyze with a callback after every stage.
// Cancellation is checked between stages; a stage itself is never interrupted.
func (s *Service) AnalyzeWithProgress(ctx context.Context, raw []byte, progress Progress) (*talk.Result, error) {
	started := s.now()
	report := func(stage Stage, percent int) {
		if progress != nil {
			progress(stage, percent)
		}
	}

	if len(raw) == 0 {
		return nil, ErrDecodeFailure
	}

	decoded := encoding.Decode(raw)
	report(StageDecode, 25)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	messages, stats := s.parser.Parse(decoded.Text)
	s.log.Debug().
		Str("encoding", string(decoded.Encoding)).
		Int("lines", stats.Lines).
		Int("messages", len(messages)).
		Int("droppedSystem", stats.DroppedSystem).
		Int("skippedUndated", stats.SkippedUndated).
		Msg("transcript parsed")
	if len(messages) == 0 {
		return nil, ErrNoMessagesFound
	}

	participants := metrics.Participants(messages)
	if len(participants) < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrInsufficientParticipants, len(participants))
	}
	users := [2]string{participants[0], participants[1]}
	report(StageParse, 50)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	computed := s.engine.Compute(messages, users)
	report(StageMetrics, 75)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	verdict := s.judge.Classify(relationship.Collect(messages, users, s.classifier))
	report(StageClassify, 100)

	result := &talk.Result{
		ID:            uuid.NewString(),
		CreatedAt:     s.now().UTC(),
		Encoding:      string(decoded.Encoding),
		Participants:  talk.Pair[string]{User1: users[0], User2: users[1]},
		TotalMessages: len(messages),
		Metrics:       computed,
		Relationship:  verdict,
	}

	s.log.Info().
		Str("id", result.ID).
		Str("encoding", result.Encoding).
		Int("messages", result.TotalMessages).
		Int("participants", len(participants)).
		Str("category", verdict.Key).
		Dur("elapsed", s.now().Sub(started)).
		Msg("analysis completed")

	s.record(ctx)
	return result, nil
}

// record bumps the usage counter; failures are logged, never returned.
func (s *Service) record(ctx context.Context) {
	if s.counter == nil {
		return
	}
	if err := s.counter.Increment(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to record analysis count")
	}
}
