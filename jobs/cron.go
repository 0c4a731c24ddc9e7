package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// MaintenanceRunner is the nightly housekeeping hook: loyalty tier
// recomputation and room status reconciliation.
type MaintenanceRunner interface {
	RunNightlyMaintenance(now time.Time, m *melody.Melody) error
}

var maintenanceRunner MaintenanceRunner

// SetMaintenanceRunner installs the implementation before the cron
// starts.
func SetMaintenanceRunner(runner MaintenanceRunner) {
	maintenanceRunner = runner
}

// InitCronJobs schedules the nightly maintenance run at midnight
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Running nightly maintenance at: %v", now)
		if maintenanceRunner == nil {
			log.Printf("Error: maintenance runner not configured")
			return
		}
		if err := maintenanceRunner.RunNightlyMaintenance(now, m); err != nil {
			log.Printf("Error running nightly maintenance: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
