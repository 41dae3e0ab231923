package services

import (
	"context"
	"html/template"
	"sync"
	"sync/atomic"
	"time"

	"fingenius/src/config"
	"fingenius/src/models"
	"fingenius/src/repositories"
	"fingenius/src/scheduler"
	"fingenius/src/schemas"
	"fingenius/src/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const refreshTimeout = 10 * time.Second

var snapshotBuilds = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "fingenius",
	Subsystem: "dashboard",
	Name:      "snapshot_builds_total",
	Help:      "Dashboard snapshots built, by trigger.",
}, []string{"trigger"})

func init() {
	prometheus.MustRegister(snapshotBuilds)
}

type DashboardServiceI interface {
	Snapshot(ctx context.Context) (*schemas.DashboardView, error)
	Holdings(ctx context.Context) ([]models.Holding, error)
	SectorAllocation(ctx context.Context) ([]utils.SectorTotal, error)
	Activities(ctx context.Context, limit int) ([]schemas.ActivityView, error)
	Summary(ctx context.Context) (template.HTML, error)
	RequestRefresh(reason string) string
	Close()
}

// MarkdownRenderer turns the insight summary into HTML.
type MarkdownRenderer interface {
	MarkdownToHTML(source string) (template.HTML, error)
}

type DashboardService struct {
	repo          repositories.DashboardRepository
	cache         SnapshotCache
	markdown      MarkdownRenderer
	currency      string
	activityLimit int
	logger        *logrus.Logger
	now           func() time.Time

	refresher *utils.Debouncer[string]
	task      *scheduler.ScheduledTask
	builds    atomic.Int64
	buildMu   sync.Mutex
	closeOnce sync.Once
}

type DashboardOption func(*DashboardService)

// WithClock replaces time.Now, used for relative activity times.
func WithClock(now func() time.Time) DashboardOption {
	return func(s *DashboardService) { s.now = now }
}

func WithMarkdownRenderer(markdown MarkdownRenderer) DashboardOption {
	return func(s *DashboardService) { s.markdown = markdown }
}

func WithSnapshotCache(cache SnapshotCache) DashboardOption {
	return func(s *DashboardService) { s.cache = cache }
}

// NewDashboardService wires the repository, cache and refresh machinery.
// A non-empty cfg.RefreshCron starts a scheduler that requests a refresh on
// every tick; Close stops it.
func NewDashboardService(repo repositories.DashboardRepository, cfg config.DashboardConfig, logger *logrus.Logger, opts ...DashboardOption) (*DashboardService, error) {
	s := &DashboardService{
		repo:          repo,
		currency:      cfg.Currency,
		activityLimit: cfg.ActivityLimit,
		logger:        logger,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = NewMemorySnapshotCache(cfg.CacheTTL)
	}
	if s.currency == "" {
		s.currency = utils.DefaultCurrency
	}

	rlog := utils.NewLogrLogger(logger).WithName("dashboard")
	s.refresher = utils.NewDebouncer(cfg.RefreshDebounce, s.refresh,
		utils.WithDebounceLogger[string](rlog.WithName("refresh")))

	if cfg.RefreshCron != "" {
		task, err := scheduler.NewScheduledTask(cfg.RefreshCron, func() {
			s.RequestRefresh("scheduled")
		}, rlog.WithName("scheduler"))
		if err != nil {
			return nil, err
		}
		s.task = task
	}
	return s, nil
}

// Snapshot returns the cached snapshot, building and caching one on a miss.
func (s *DashboardService) Snapshot(ctx context.Context) (*schemas.DashboardView, error) {
	view, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("snapshot cache read failed")
	} else if ok {
		return view, nil
	}

	view, err = s.build(ctx, "request")
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, view); err != nil {
		s.logger.WithError(err).Warn("snapshot cache write failed")
	}
	return view, nil
}

// RequestRefresh schedules a rebuild of the cached snapshot and returns the
// id of the request. Requests arriving within the debounce window collapse
// into a single rebuild carrying the id of the last one.
func (s *DashboardService) RequestRefresh(reason string) string {
	id := utils.GenerateID()
	s.logger.WithFields(logrus.Fields{"refreshId": id, "reason": reason}).Debug("dashboard refresh requested")
	s.refresher.Call(id)
	return id
}

// RefreshPending reports whether a debounced refresh is waiting to run.
func (s *DashboardService) RefreshPending() bool {
	return s.refresher.Pending()
}

// Builds counts snapshots built since start.
func (s *DashboardService) Builds() int64 {
	return s.builds.Load()
}

func (s *DashboardService) refresh(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	log := s.logger.WithField("refreshId", id)
	view, err := s.build(ctx, "refresh")
	if err != nil {
		log.WithError(err).Error("dashboard refresh failed")
		return
	}
	if err := s.cache.Set(ctx, view); err != nil {
		log.WithError(err).Error("failed to store refreshed snapshot")
		return
	}
	log.Info("dashboard refreshed")
}

func (s *DashboardService) Holdings(ctx context.Context) ([]models.Holding, error) {
	return s.repo.ListHoldings(ctx)
}

func (s *DashboardService) SectorAllocation(ctx context.Context) ([]utils.SectorTotal, error) {
	holdings, err := s.repo.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}
	return utils.SectorTotals(holdings)
}

// Activities returns up to limit formatted activities, newest first. A
// non-positive limit uses the configured default.
func (s *DashboardService) Activities(ctx context.Context, limit int) ([]schemas.ActivityView, error) {
	if limit <= 0 {
		limit = s.activityLimit
	}
	activities, err := s.repo.ListActivities(ctx, limit)
	if err != nil {
		return nil, err
	}
	b := s.newBuilder()
	views := b.activities(activities)
	return views, b.err
}

func (s *DashboardService) Summary(ctx context.Context) (template.HTML, error) {
	summary, err := s.repo.GetSummary(ctx)
	if err != nil {
		return "", err
	}
	return s.summaryHTML(summary.Markdown)
}

// Close stops the scheduler and drops any pending refresh.
func (s *DashboardService) Close() {
	s.closeOnce.Do(func() {
		if s.task != nil {
			s.task.Cancel()
		}
		s.refresher.Cancel()
	})
}

func (s *DashboardService) summaryHTML(markdown string) (template.HTML, error) {
	if s.markdown == nil || markdown == "" {
		return "", nil
	}
	return s.markdown.MarkdownToHTML(markdown)
}

type dashboardData struct {
	wealth     *models.WealthMetrics
	holdings   []models.Holding
	activities []models.Activity
	insights   []models.Insight
	summary    *models.Summary
}

func (s *DashboardService) load(ctx context.Context) (*dashboardData, error) {
	var d dashboardData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.wealth, err = s.repo.GetWealthMetrics(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.holdings, err = s.repo.ListHoldings(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.activities, err = s.repo.ListActivities(ctx, s.activityLimit)
		return err
	})
	g.Go(func() (err error) {
		d.insights, err = s.repo.ListInsights(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.summary, err = s.repo.GetSummary(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DashboardService) build(ctx context.Context, trigger string) (*schemas.DashboardView, error) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	d, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	sectors, err := utils.SectorTotals(d.holdings)
	if err != nil {
		return nil, err
	}
	summaryHTML, err := s.summaryHTML(d.summary.Markdown)
	if err != nil {
		return nil, err
	}

	b := s.newBuilder()
	view := &schemas.DashboardView{
		ID:          utils.GenerateID(),
		Currency:    s.currency,
		GeneratedAt: b.now,
		Wealth:      b.wealth(d.wealth),
		Portfolio:   b.portfolio(d.holdings, sectors),
		Activity: schemas.ActivitySummaryView{
			Activities:   b.activities(d.activities),
			WeekTotal:    utils.SignPrefix(d.wealth.WeeklyActivityTotal) + b.currency(d.wealth.WeeklyActivityTotal),
			Transactions: len(d.activities),
		},
		Insights: schemas.InsightsView{
			Insights:       b.insights(d.insights),
			Summary:        d.summary.Markdown,
			SummaryHTML:    string(summaryHTML),
			SummaryExcerpt: utils.TruncateText(d.summary.Markdown, 120),
		},
	}
	if b.err != nil {
		return nil, b.err
	}

	s.builds.Add(1)
	snapshotBuilds.WithLabelValues(trigger).Inc()
	return view, nil
}
