// Package jobs provides scheduled background tasks for the order workflow service.
//
// Jobs use github.com/robfig/cron/v3 with six-field expressions (seconds first).
//
// # Available Jobs
//
// GraphIntegrityJob scans the workflow graph for steps that hold active orders but do not
// have exactly one default outgoing transition. Approving such orders fails, so each
// offending step is logged as a warning and the number of violations is exported through
// ScanRecorder.
//
// # Usage
//
//	integrity := jobs.NewGraphIntegrityJob(findViolationsHandler, metrics, "0 */5 * * * *", logger)
//	jobManager := jobs.NewJobManager(integrity)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A single scan, as run by the audit command, is GraphIntegrityJob.Run.
//
// # Error Handling
//
// A failed scan is logged and retried on the next tick. Failed job starts stop any
// already running jobs.
package jobs
