package service

import (
	"sync"

	"github.com/robfig/cron/v3"

	"golang-broker-scryper/pkg/logger"
	"golang-broker-scryper/pkg/utils"
)

// JobRegistry schedules named background jobs on cron expressions.
// Registration is idempotent: registering an id again replaces the previous
// entry instead of stacking a duplicate schedule.
type JobRegistry struct {
	cron *cron.Cron
	log  *logger.Logger

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// NewJobRegistry creates a registry running in the Taipei timezone, matching
// the market the scraped pages report in.
func NewJobRegistry(log *logger.Logger) *JobRegistry {
	return &JobRegistry{
		cron:    cron.New(cron.WithLocation(utils.GetTaipeiTimeLocation())),
		log:     log,
		entries: make(map[string]cron.EntryID),
	}
}

// Register schedules fn under the given id. A previous job with the same id
// is removed first.
func (r *JobRegistry) Register(id, spec string, fn func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.entries[id]; ok {
		r.cron.Remove(old)
	}

	entryID, err := r.cron.AddFunc(spec, fn)
	if err != nil {
		return err
	}
	r.entries[id] = entryID
	r.log.Info("Registered job", logger.StringField("id", id), logger.StringField("cron", spec))
	return nil
}

// Start launches the scheduler in its own goroutine.
func (r *JobRegistry) Start() {
	r.cron.Start()
}

// Stop halts scheduling and waits for running jobs to finish.
func (r *JobRegistry) Stop() {
	<-r.cron.Stop().Done()
}
