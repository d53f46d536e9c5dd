package app

import "flag"

// HUDWidth is the pixel width of the parameter panel appended to the right
// of the table view. Window sizing and the Game layout both derive from it.
const HUDWidth = 250

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	Pool   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 256, Height: 160, Scale: 4, TPS: 60, Seed: 1337, Pool: 2000}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "table width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "table height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for terrain reset")
	fs.IntVar(&c.Pool, "pool", c.Pool, "particle pool capacity")
}
