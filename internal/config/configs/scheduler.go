package configs

// Scheduler configures the background campaign status watcher. Schedule
// uses the robfig/cron syntax, including descriptors such as "@every 1m".
type Scheduler struct {
	Enabled  bool   `env:"ENABLED" envDefault:"true"`
	Schedule string `env:"SCHEDULE" envDefault:"@every 1m"`
}
