// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision and are
// managed through JobManager:
//
//	summaryJob := jobs.NewSalesSummaryJob(summaryHandler, "0 */5 * * * *", log)
//	jobManager := jobs.NewJobManager(log, summaryJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs", "error", err)
//	}
//	defer jobManager.StopAll()
//
// A failed start stops the jobs that were already started.
package jobs
