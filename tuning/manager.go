package tuning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rjbizsolution23-wq/agi-prompt-engineering/logging"
)

// Status describes where a job is in its lifecycle.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCanceled  Status = "canceled"
)

var (
	// ErrInvalidJobSpec indicates a job spec missing required fields.
	ErrInvalidJobSpec = errors.New("invalid tuning job spec")

	// ErrUnknownJob indicates a job id the manager has never issued.
	ErrUnknownJob = errors.New("unknown tuning job")

	// ErrJobFinished indicates a cancel attempt on a job that already left
	// the queue.
	ErrJobFinished = errors.New("tuning job already finished")
)

// JobSpec describes a fine-tuning request.
type JobSpec struct {
	// BaseModel names the model to tune. Required.
	BaseModel string

	// Dataset identifies the training data. Required.
	Dataset string

	// Suffix is appended to the tuned model name. Optional.
	Suffix string
}

// Job is a queued fine-tuning job.
type Job struct {
	ID        string
	Spec      JobSpec
	Status    Status
	CreatedAt time.Time
}

// Manager tracks fine-tuning jobs for the process lifetime.
//
// Concurrency: protected by RWMutex.
type Manager struct {
	mu     sync.RWMutex
	logger logging.Logger
	jobs   map[string]Job
	order  []string
}

// NewManager creates an empty job manager.
func NewManager(logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Manager{
		logger: logger,
		jobs:   make(map[string]Job),
	}
}

// Submit validates the spec, queues a job for it and returns the job. The
// job is handed off as queued; the manager never runs it.
func (m *Manager) Submit(_ context.Context, spec JobSpec) (Job, error) {
	if strings.TrimSpace(spec.BaseModel) == "" {
		return Job{}, fmt.Errorf("%w: base model is required", ErrInvalidJobSpec)
	}
	if strings.TrimSpace(spec.Dataset) == "" {
		return Job{}, fmt.Errorf("%w: dataset is required", ErrInvalidJobSpec)
	}

	job := Job{
		ID:        uuid.NewString(),
		Spec:      spec,
		Status:    StatusQueued,
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.order = append(m.order, job.ID)
	m.mu.Unlock()

	m.logger.Info("tuning job queued", "job_id", job.ID, "base_model", spec.BaseModel, "dataset", spec.Dataset)
	return job, nil
}

// Get returns the job with the given id.
func (m *Manager) Get(id string) (Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[id]
	if !ok {
		return Job{}, fmt.Errorf("%w: %q", ErrUnknownJob, id)
	}
	return job, nil
}

// List returns all jobs, newest first.
func (m *Manager) List() []Job {
	m.mu.RLock()
	defer m.mu.RUnlock()
	jobs := make([]Job, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		jobs = append(jobs, m.jobs[m.order[i]])
	}
	return jobs
}

// Cancel moves a queued job to canceled and returns it. Jobs in any other
// state report ErrJobFinished.
func (m *Manager) Cancel(id string) (Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return Job{}, fmt.Errorf("%w: %q", ErrUnknownJob, id)
	}
	if job.Status != StatusQueued {
		return Job{}, fmt.Errorf("%w: %q is %s", ErrJobFinished, id, job.Status)
	}

	job.Status = StatusCanceled
	m.jobs[id] = job
	m.logger.Info("tuning job canceled", "job_id", id)
	return job, nil
}
