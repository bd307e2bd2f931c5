package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager starts and stops the scheduled jobs together.
type JobManager struct {
	jobs []namedJob
}

type namedJob struct {
	name string
	job  job
}

func NewJobManager(audit *RefreshTokenAuditJob) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "refresh token audit", job: audit},
		},
	}
}

// StartAll starts every job. When one fails, the jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
	}
	return nil
}

func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs {
		j.job.Stop()
	}
}
