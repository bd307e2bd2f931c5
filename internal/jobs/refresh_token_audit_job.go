package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit at second zero of every minute.
const DefaultAuditSchedule = "0 * * * * *"

type refreshTokenStatsHandler interface {
	Handle(ctx context.Context, query queries.GetRefreshTokenStatsQuery) (queries.RefreshTokenStatsResponse, error)
}

// RefreshTokenAuditJob periodically counts refresh tokens by state and publishes the
// counts as the ordering_refresh_tokens gauge.
type RefreshTokenAuditJob struct {
	handler  refreshTokenStatsHandler
	schedule string
	gauge    *prometheus.GaugeVec
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewRefreshTokenAuditJob(
	handler refreshTokenStatsHandler,
	schedule string,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) (*RefreshTokenAuditJob, error) {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}

	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ordering_refresh_tokens",
		Help: "Stored refresh tokens by state at the last audit.",
	}, []string{"state"})
	if err := registerer.Register(gauge); err != nil {
		return nil, err
	}

	return &RefreshTokenAuditJob{
		handler:  handler,
		schedule: schedule,
		gauge:    gauge,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "refresh_token_audit_job"),
	}, nil
}

func (j *RefreshTokenAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("refresh token audit job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running audit to finish.
func (j *RefreshTokenAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("refresh token audit job stopped")
}

// Run performs one audit.
func (j *RefreshTokenAuditJob) Run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetRefreshTokenStatsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "refresh token audit failed", "error", err)
		return
	}

	j.gauge.WithLabelValues("active").Set(float64(stats.Active))
	j.gauge.WithLabelValues("revoked").Set(float64(stats.Revoked))
	j.gauge.WithLabelValues("expired").Set(float64(stats.Expired))

	j.logger.InfoContext(ctx, "refresh token audit",
		"active", stats.Active,
		"revoked", stats.Revoked,
		"expired", stats.Expired,
		"as_of_utc", stats.AsOfUTC,
	)
}
