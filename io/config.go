package io

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/gcfg.v1"
	"gopkg.in/warnings.v0"

	"github.com/phil-mansfield/gobez/bezier"
	"github.com/phil-mansfield/gobez/geom"
)

const (
	ExampleConfigFile = `[Output]

#######################
# Required Parameters #
#######################

# Directory which plots, tables and meshes will be written to. It must
# already exist.
Dir = path/to/output/dir

#######################
# Optional Parameters #
#######################

# Output formats. May be given more than once. Supported formats are
# png:   a pyplot figure of every curve and of three projections of every
#        surface (requires python and matplotlib).
# table: whitespace separated text columns.
# stl:   a triangle mesh of every surface. Curves are skipped.
# Default is png.
# Format = png
# Format = table

# Show every figure in a window after it is saved. Only used by png.
# Show = false

# Number of goroutines used to evaluate each curve or surface. Default is
# the number of CPUs.
# Threads = 0

# Logging. LogFile is rotated once it grows past LogMaxSize megabytes.
# LogLevel = info
# LogFile = gobez.log
# LogMaxSize = 10

[Curve "arch"]
# A Bezier curve of arbitrary degree. Control points are given as parallel
# lists of X and Y coordinates, one value per line, in order. The first and
# last points are the endpoints of the curve.
X = 0
X = 1
X = 2
Y = 0
Y = 2
Y = 0

# Alternatively, control points can be read from a text file with x and y
# columns. Relative paths are relative to this config file.
# PointsFile = path/to/points.txt

# Number of samples along the curve. Default is 100.
# Samples = 100

# How samples are spaced. 'uniform' spaces them evenly in the curve
# parameter, t. 'arclength' spaces them evenly along the length of the curve.
# Default is uniform.
# Spacing = uniform

[Surface "saddle"]
# A bicubic Bezier patch. The 16 control points are given in row-major order:
# the first four values are grid[0][0], grid[0][1], grid[0][2], grid[0][3].
X = 0
X = 1
X = 2
X = 3
X = 0
X = 1
X = 2
X = 3
X = 0
X = 1
X = 2
X = 3
X = 0
X = 1
X = 2
X = 3
Y = 0
Y = 0
Y = 0
Y = 0
Y = 1
Y = 1
Y = 1
Y = 1
Y = 2
Y = 2
Y = 2
Y = 2
Y = 3
Y = 3
Y = 3
Y = 3
Z = 0
Z = 0
Z = 0
Z = 1
Z = 0
Z = 1
Z = 1
Z = 1
Z = 0
Z = 1
Z = 1
Z = 1
Z = 1
Z = 1
Z = 1
Z = 2

# Alternatively, a text file with x, y and z columns and 16 rows.
# PointsFile = path/to/grid.txt

# Number of uniformly spaced samples along each axis. Default is 30.
# USamples = 30
# VSamples = 30`
)

var (
	// Formats lists the accepted values of Output.Format.
	Formats = []string{"png", "table", "stl"}
	// LogLevels lists the accepted values of Output.LogLevel.
	LogLevels = []string{"debug", "info", "warn", "error"}
	// Spacings lists the accepted values of Curve.Spacing.
	Spacings = []string{"uniform", "arclength"}
)

type OutputConfig struct {
	// Required
	Dir string

	// Optional
	Format []string
	Show bool
	Threads int
	LogFile, LogLevel string
	LogMaxSize int
}

func (con *OutputConfig) ValidDir() bool {
	return con.Dir != ""
}
func (con *OutputConfig) ValidThreads() bool {
	return con.Threads >= 0
}
func (con *OutputConfig) ValidLogMaxSize() bool {
	return con.LogMaxSize > 0
}
func (con *OutputConfig) ValidLogLevel() bool {
	return contains(LogLevels, con.LogLevel)
}
func (con *OutputConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// ValidFormat returns true if every format is supported.
func (con *OutputConfig) ValidFormat() bool {
	for _, f := range con.Format {
		if !contains(Formats, f) { return false }
	}
	return true
}

// HasFormat returns true if the given output format was requested.
func (con *OutputConfig) HasFormat(format string) bool {
	return contains(con.Format, strings.ToLower(format))
}

func (con *OutputConfig) CheckInit() error {
	if len(con.Format) == 0 { con.Format = []string{"png"} }
	for i := range con.Format {
		con.Format[i] = strings.ToLower(strings.TrimSpace(con.Format[i]))
	}
	con.LogLevel = strings.ToLower(con.LogLevel)
	if con.LogLevel == "" { con.LogLevel = "info" }
	if con.LogMaxSize == 0 { con.LogMaxSize = 10 }

	if !con.ValidDir() {
		return fmt.Errorf("Missing 'Dir' value in [Output].")
	} else if !con.ValidFormat() {
		return fmt.Errorf(
			"Invalid 'Format' value in [Output], %q. The only accepted " +
				"formats are: %s.", con.Format, strings.Join(Formats, ", "),
		)
	} else if !con.ValidThreads() {
		return fmt.Errorf(
			"'Threads' in [Output] must be non-negative, but is %d.",
			con.Threads,
		)
	} else if !con.ValidLogLevel() {
		return fmt.Errorf(
			"Invalid 'LogLevel' value in [Output], %q. The only accepted " +
				"levels are: %s.", con.LogLevel, strings.Join(LogLevels, ", "),
		)
	} else if !con.ValidLogMaxSize() {
		return fmt.Errorf(
			"'LogMaxSize' in [Output] must be positive, but is %d.",
			con.LogMaxSize,
		)
	}
	return nil
}

type CurveConfig struct {
	// Required: either X and Y or PointsFile.
	X, Y []float64
	PointsFile string

	// Optional
	Samples int
	Spacing string
	Name string
}

func (con *CurveConfig) ValidPointsFile() bool {
	return con.PointsFile != ""
}
func (con *CurveConfig) ValidSpacing() bool {
	return contains(Spacings, con.Spacing)
}

// ArcLength returns true if samples should be evenly spaced by arc length.
func (con *CurveConfig) ArcLength() bool { return con.Spacing == "arclength" }

func (con *CurveConfig) CheckInit(name string) error {
	con.Name = name
	if con.Samples == 0 { con.Samples = bezier.DefaultCurveSamples }
	con.Spacing = strings.ToLower(con.Spacing)
	if con.Spacing == "" { con.Spacing = "uniform" }

	if con.Samples < 0 {
		return fmt.Errorf(
			"Curve '%s' given a negative sample count, %d.", name, con.Samples,
		)
	} else if !con.ValidSpacing() {
		return fmt.Errorf(
			"Curve '%s' has invalid 'Spacing' value %q. The only accepted " +
				"values are: %s.", name, con.Spacing, strings.Join(Spacings, ", "),
		)
	}

	inline := len(con.X) > 0 || len(con.Y) > 0
	if inline && con.ValidPointsFile() {
		return fmt.Errorf(
			"Curve '%s' sets both X/Y and PointsFile. Only one may be used.",
			name,
		)
	} else if !inline && !con.ValidPointsFile() {
		return fmt.Errorf(
			"Need to specify X and Y or PointsFile for Curve '%s'.", name,
		)
	} else if inline && len(con.X) != len(con.Y) {
		return fmt.Errorf(
			"Curve '%s' has %d X values but %d Y values.",
			name, len(con.X), len(con.Y),
		)
	} else if inline && len(con.X) < 2 {
		return fmt.Errorf(
			"Curve '%s' needs at least 2 control points, but has %d.",
			name, len(con.X),
		)
	}

	return nil
}

// Points returns the control polygon of the curve, reading it from
// PointsFile if necessary. Relative paths are resolved against dir.
func (con *CurveConfig) Points(dir string) ([]geom.Vec2, error) {
	if con.ValidPointsFile() {
		return ReadCurvePoints(resolve(dir, con.PointsFile))
	}

	ps := make([]geom.Vec2, len(con.X))
	for i := range ps { ps[i] = geom.Vec2{con.X[i], con.Y[i]} }
	return ps, nil
}

type SurfaceConfig struct {
	// Required: either X, Y and Z or PointsFile.
	X, Y, Z []float64
	PointsFile string

	// Optional
	USamples, VSamples int
	Name string
}

func (con *SurfaceConfig) ValidPointsFile() bool {
	return con.PointsFile != ""
}

func (con *SurfaceConfig) CheckInit(name string) error {
	con.Name = name
	if con.USamples == 0 { con.USamples = bezier.DefaultSurfaceSamples }
	if con.VSamples == 0 { con.VSamples = bezier.DefaultSurfaceSamples }

	if con.USamples < 0 || con.VSamples < 0 {
		return fmt.Errorf(
			"Surface '%s' given a negative sample count, (%d, %d).",
			name, con.USamples, con.VSamples,
		)
	}

	n := bezier.GridSize * bezier.GridSize
	inline := len(con.X) > 0 || len(con.Y) > 0 || len(con.Z) > 0
	if inline && con.ValidPointsFile() {
		return fmt.Errorf(
			"Surface '%s' sets both X/Y/Z and PointsFile. Only one may be used.",
			name,
		)
	} else if !inline && !con.ValidPointsFile() {
		return fmt.Errorf(
			"Need to specify X, Y and Z or PointsFile for Surface '%s'.", name,
		)
	} else if inline &&
		(len(con.X) != n || len(con.Y) != n || len(con.Z) != n) {
		return fmt.Errorf(
			"Surface '%s' must have %d X, Y and Z values, but has (%d, %d, %d).",
			name, n, len(con.X), len(con.Y), len(con.Z),
		)
	}

	return nil
}

// Grid returns the control grid of the surface, reading it from PointsFile
// if necessary. Relative paths are resolved against dir.
func (con *SurfaceConfig) Grid(dir string) ([][]geom.Vec3, error) {
	if con.ValidPointsFile() {
		return ReadGridPoints(resolve(dir, con.PointsFile))
	}

	ps := make([]geom.Vec3, len(con.X))
	for i := range ps { ps[i] = geom.Vec3{con.X[i], con.Y[i], con.Z[i]} }
	return reshapeGrid(ps)
}

// Config is the contents of a gobez job file.
type Config struct {
	Output OutputConfig
	Curve map[string]*CurveConfig
	Surface map[string]*SurfaceConfig

	dir string
}

// Dir returns the directory containing the config file. Relative paths
// inside the file are relative to it.
func (con *Config) Dir() string { return con.dir }

// CurveNames returns the names of all curves in sorted order.
func (con *Config) CurveNames() []string {
	names := make([]string, 0, len(con.Curve))
	for name := range con.Curve { names = append(names, name) }
	sort.Strings(names)
	return names
}

// SurfaceNames returns the names of all surfaces in sorted order.
func (con *Config) SurfaceNames() []string {
	names := make([]string, 0, len(con.Surface))
	for name := range con.Surface { names = append(names, name) }
	sort.Strings(names)
	return names
}

func (con *Config) checkInit() error {
	if err := con.Output.CheckInit(); err != nil { return err }
	if len(con.Curve) == 0 && len(con.Surface) == 0 {
		return fmt.Errorf("Config file contains no [Curve] or [Surface] sections.")
	}
	for _, name := range con.CurveNames() {
		if err := con.Curve[name].CheckInit(name); err != nil { return err }
	}
	for _, name := range con.SurfaceNames() {
		if err := con.Surface[name].CheckInit(name); err != nil { return err }
	}
	return nil
}

// ReadConfig reads and validates the config file fname.
//
// Unknown sections and variables are not fatal: in that case the config is
// returned along with a warnings.List describing them. Use
// warnings.FatalOnly to check whether the config can be used.
func ReadConfig(fname string) (*Config, error) {
	con := &Config{}
	err := gcfg.ReadFileInto(con, fname)
	if err := gcfg.FatalOnly(err); err != nil { return nil, err }

	con.dir = filepath.Dir(fname)
	if cerr := con.checkInit(); cerr != nil { return nil, cerr }
	return con, warningsOnly(err)
}

// ReadConfigString is identical to ReadConfig, but reads the config from a
// string. Relative paths are resolved against the working directory.
func ReadConfigString(text string) (*Config, error) {
	con := &Config{}
	err := gcfg.ReadStringInto(con, text)
	if err := gcfg.FatalOnly(err); err != nil { return nil, err }

	con.dir = "."
	if cerr := con.checkInit(); cerr != nil { return nil, cerr }
	return con, warningsOnly(err)
}

// warningsOnly strips anything but warnings from err.
func warningsOnly(err error) error {
	ws := warnings.WarningsOnly(err)
	if len(ws) == 0 { return nil }
	return warnings.List{Warnings: ws}
}

func resolve(dir, fname string) string {
	if filepath.IsAbs(fname) { return fname }
	return filepath.Join(dir, fname)
}

func contains(xs []string, x string) bool {
	for i := range xs {
		if xs[i] == x { return true }
	}
	return false
}
