package configs

// Notice is the globally configured store notice. An active notice
// campaign replaces it while the campaign runs.
type Notice struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Text    string `env:"TEXT"`
}
