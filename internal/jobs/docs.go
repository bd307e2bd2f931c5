// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// RefreshTokenAuditJob runs the refresh token stats query (every minute by default) and
// exports the active, revoked and expired counts as the ordering_refresh_tokens gauge.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(auditJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A failed audit is logged and retried on the next tick.
package jobs
