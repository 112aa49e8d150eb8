package stats

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/domain/progress"
	"github.com/keshavkumar4699/cloro-questions/internal/platform/logger"
	"github.com/keshavkumar4699/cloro-questions/internal/store"
	"golang.org/x/sync/errgroup"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// Option customises a stats service.
type Option func(*serviceImpl)

// WithLocation sets the timezone used for calendar-day calculations.
func WithLocation(loc *time.Location) Option {
	return func(s *serviceImpl) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *serviceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRetentionWindow sets the look-back window, in days, of the retention rate.
func WithRetentionWindow(days int) Option {
	return func(s *serviceImpl) {
		if days > 0 {
			s.retentionWindow = days
		}
	}
}

// WithTrendDays sets the number of days in the activity trend.
func WithTrendDays(days int) Option {
	return func(s *serviceImpl) {
		if days > 0 {
			s.trendDays = days
		}
	}
}

type serviceImpl struct {
	questions       store.QuestionStore
	stats           store.UserStatsStore
	loc             *time.Location
	now             func() time.Time
	retentionWindow int
	trendDays       int
	logger          *slog.Logger
}

// NewService creates a stats Service reading from the given stores.
func NewService(
	questions store.QuestionStore,
	stats store.UserStatsStore,
	logger *slog.Logger,
	opts ...Option,
) Service {
	if questions == nil {
		panic("questions cannot be nil")
	}
	if stats == nil {
		panic("stats cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &serviceImpl{
		questions:       questions,
		stats:           stats,
		loc:             time.UTC,
		now:             func() time.Time { return time.Now().UTC() },
		retentionWindow: progress.DefaultRetentionWindowDays,
		trendDays:       progress.DefaultTrendDays,
		logger:          logger.With(slog.String("component", "stats_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetStats implements Service.GetStats.
func (s *serviceImpl) GetStats(ctx context.Context, userID uuid.UUID, req Request) (*Response, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("user_id", userID.String()))

	if req.PeriodDays < 0 {
		return nil, ErrInvalidPeriod
	}

	now := s.now()
	scope := req.Scope.Effective()

	var (
		items     []*domain.Question
		userStats *domain.UserStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.questions.Query(gctx, userID, store.QuestionFilter{
			SubjectID: scope.SubjectID,
			TopicID:   scope.TopicID,
		})
		return err
	})
	g.Go(func() error {
		var err error
		userStats, err = s.stats.Get(gctx, userID)
		if errors.Is(err, store.ErrUserStatsNotFound) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("failed to load statistics inputs", slog.String("error", err.Error()))
		return nil, NewGetStatsError("failed to load data", err)
	}

	if userStats == nil {
		known, err := s.hasQuestions(ctx, userID, scope, items)
		if err != nil {
			log.Error("failed to check for questions", slog.String("error", err.Error()))
			return nil, NewGetStatsError("failed to load data", err)
		}
		if !known {
			log.Debug("no statistics record and no questions")
			return nil, store.ErrUserStatsNotFound
		}
		userStats = &domain.UserStats{UserID: userID}
	}

	summary := progress.Summarize(items, now, s.retentionWindow)
	resp := &Response{
		Summary:                summary,
		DueToday:               summary.DueQuestions,
		TotalQuestionsAnswered: userStats.TotalQuestionsAnswered,
		CurrentStreak:          userStats.CurrentStreak,
		LongestStreak:          userStats.LongestStreak,
		DailyAttempted:         progress.DailyAttempted(&userStats.DailyActivity, now, s.loc),
		DailyActivity:          userStats.DailyActivity.Entries(),
		Trend:                  progress.Trend(&userStats.DailyActivity, now, s.trendDays, s.loc),
		Context:                scope.Flags(),
	}

	if req.PeriodDays > 0 {
		period := progress.SummarizePeriod(items, now, req.PeriodDays, s.loc)
		resp.PeriodStats = &period
	}

	log.Debug("statistics computed",
		slog.Int("total_questions", summary.TotalQuestions),
		slog.Int("due_questions", summary.DueQuestions))
	return resp, nil
}

// hasQuestions reports whether the user owns any question at all. items are
// the questions already loaded for scope.
func (s *serviceImpl) hasQuestions(
	ctx context.Context,
	userID uuid.UUID,
	scope progress.Scope,
	items []*domain.Question,
) (bool, error) {
	if len(items) > 0 {
		return true, nil
	}
	if scope.Flags().IsGlobal {
		return false, nil
	}
	all, err := s.questions.Query(ctx, userID, store.QuestionFilter{})
	if err != nil {
		return false, err
	}
	return len(all) > 0, nil
}
