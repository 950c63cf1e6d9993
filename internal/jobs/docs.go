// Package jobs provides scheduled background tasks for the task wizard.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// DraftEvictionJob discards wizard sessions that have not been touched for the
// configured idle duration. Reading a draft does not count as activity.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(evictIdleDraftsHandler, jobs.EvictionConfig{
//		IdleFor:  30 * time.Minute,
//		Schedule: jobs.DefaultEvictionSchedule,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A bad schedule or idle duration fails StartAll. Errors of a single run are logged and
// the next run is attempted on schedule.
package jobs
