package scheduler

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/cryptodigest/cryptodigest/pkg/domain"
)

//go:generate moq -out mocks/source_store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator

// maxSourcesPerRun caps how many sources one generation run samples
const maxSourcesPerRun = 3

// ErrQueueFull is returned when the manual-trigger queue is at capacity
var ErrQueueFull = errors.New("generation trigger queue is full")

// SourceStore provides news sources for generation
type SourceStore interface {
	GetSources(ctx context.Context, activeOnly bool) ([]domain.NewsSource, error)
}

// ArticleStore persists generated articles
type ArticleStore interface {
	CreateArticle(ctx context.Context, article *domain.Article) error
}

// Generator produces one article for one source
type Generator interface {
	Generate(ctx context.Context, source domain.NewsSource) (*domain.Article, error)
}

// Scheduler runs the periodic article-generation job. It owns a single
// worker goroutine started with Start and stopped with Stop; manual
// triggers go through a bounded queue drained by the same worker.
type Scheduler struct {
	sources   SourceStore
	articles  ArticleStore
	generator Generator
	interval  time.Duration
	pollTick  time.Duration
	triggers  chan struct{}
	wg        sync.WaitGroup
	cancel    context.CancelFunc
}

// Params holds scheduler dependencies and configuration
type Params struct {
	Sources      SourceStore
	Articles     ArticleStore
	Generator    Generator
	Interval     time.Duration // generation interval, default 15m
	PollTick     time.Duration // interval poll resolution, default 60s
	TriggerQueue int           // manual-trigger queue capacity, default 4
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.Interval == 0 {
		params.Interval = 15 * time.Minute
	}
	if params.PollTick == 0 {
		params.PollTick = 60 * time.Second
	}
	if params.TriggerQueue == 0 {
		params.TriggerQueue = 4
	}

	return &Scheduler{
		sources:   params.Sources,
		articles:  params.Articles,
		generator: params.Generator,
		interval:  params.Interval,
		pollTick:  params.PollTick,
		triggers:  make(chan struct{}, params.TriggerQueue),
	}
}

// Start begins the scheduler worker
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.worker(ctx)

	lgr.Printf("[INFO] scheduler started with generation interval %v, poll tick %v", s.interval, s.pollTick)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// TriggerNow submits a manual generation request and returns immediately.
// The worker picks it up asynchronously; a full queue rejects the request.
func (s *Scheduler) TriggerNow() error {
	select {
	case s.triggers <- struct{}{}:
		return nil
	default:
		return ErrQueueFull
	}
}

// worker runs generation eagerly on start, then drains manual triggers
// and polls the interval clock. The tick is a coarse poll, not a precise
// timer: a run that outlasts a tick just delays the next check.
func (s *Scheduler) worker(ctx context.Context) {
	defer s.wg.Done()

	s.GenerateArticles(ctx)
	lastRun := time.Now()

	ticker := time.NewTicker(s.pollTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.triggers:
			s.GenerateArticles(ctx)
		case <-ticker.C:
			if time.Since(lastRun) >= s.interval {
				s.GenerateArticles(ctx)
				lastRun = time.Now()
			}
		}
	}
}

// GenerateArticles is the generation job: sample up to maxSourcesPerRun
// active sources without replacement and run the per-source pipeline
// sequentially. Per-source failures are logged and skipped; the job
// itself never fails, it only reports how many articles it produced.
func (s *Scheduler) GenerateArticles(ctx context.Context) {
	lgr.Printf("[INFO] starting article generation")

	sources, err := s.sources.GetSources(ctx, true)
	if err != nil {
		lgr.Printf("[ERROR] failed to get active sources: %v", err)
		return
	}
	if len(sources) == 0 {
		lgr.Printf("[WARN] no active news sources found")
		return
	}

	count := maxSourcesPerRun
	if len(sources) < count {
		count = len(sources)
	}

	generated := 0
	for _, idx := range rand.Perm(len(sources))[:count] {
		source := sources[idx]

		article, err := s.generator.Generate(ctx, source)
		if err != nil {
			lgr.Printf("[ERROR] failed to generate article for source %s: %v", source.Name, err)
			continue
		}

		if err := s.articles.CreateArticle(ctx, article); err != nil {
			lgr.Printf("[ERROR] failed to save article for source %s: %v", source.Name, err)
			continue
		}

		generated++
		lgr.Printf("[INFO] generated article: %s", article.Title)
	}

	lgr.Printf("[INFO] article generation complete, generated %d articles", generated)
}
