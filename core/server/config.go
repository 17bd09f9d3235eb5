package server

import "time"

// Config holds configuration for the status HTTP server and the
// unattended run scheduler.
type Config struct {
	// Port is the port where the status server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// IntervalMinutes is how often the scheduler starts a new
	// reconciliation run in start mode.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"60"`
}

// Interval returns the scheduler period.
func (c Config) Interval() time.Duration {
	minutes := c.IntervalMinutes
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}
