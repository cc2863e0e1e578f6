package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// epoch is time unit 0 of a recurring workload, a Monday at midnight so that
// day-of-week schedules line up with the start of the simulated week.
var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// expandRecurring generates one process definition per schedule occurrence
// in [0, horizon) minutes.
func expandRecurring(r *RecurringSpec, horizon int) []ProcessSpec {
	instances := []ProcessSpec{}

	schedule, err := cronParser.Parse(r.Schedule)
	if err != nil {
		// rejected by validateConfig
		return instances
	}

	end := epoch.Add(time.Duration(horizon) * time.Minute)

	// Next is strictly after its argument, so start one minute early to
	// include an occurrence at unit 0.
	currentTime := epoch.Add(-time.Minute)
	for {
		nextRun := schedule.Next(currentTime)
		if nextRun.IsZero() || !nextRun.Before(end) {
			break
		}

		instances = append(instances, ProcessSpec{
			Name:     fmt.Sprintf("%s#%d", r.Name, len(instances)+1),
			Arrival:  int(nextRun.Sub(epoch) / time.Minute),
			Burst:    r.Burst,
			Priority: r.Priority,
		})

		currentTime = nextRun
	}

	return instances
}
