// Package config provides configuration loading and defaults for habitflow.
package config

// DefaultConfigDir is the default location for habitflow configuration and data.
const DefaultConfigDir = "~/.config/habitflow"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "habitflow.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultTheme is the default UI theme stored on the profile.
const DefaultTheme = "dark"

// DefaultEveningHour is the local hour from which the behind-schedule
// warning insight may fire.
const DefaultEveningHour = 18

// DefaultHeatmapWeeks is how many trailing weeks the heatmap renders.
const DefaultHeatmapWeeks = 13

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
