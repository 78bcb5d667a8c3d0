package config

import (
	"fmt"
	"time"
)

// PhysicsConfig contains the empirically tuned constants of the balloon model.
type PhysicsConfig struct {
	// Force law
	ForceConstant float64 // K, not Coulomb's constant
	ForcePower    float64 // exponent on the distance
	MaxForce      float64 // ceiling on |sweater + other balloon| force

	// Wall induced attraction
	WallChargeThreshold int     // charge must be below this to feel the wall
	WallRange           float64 // base proximity window in px
	WallRangeChargeDiv  float64 // window grows by charge / this
	WallForce           float64 // magnitude per 20 units of charge

	// Integration
	MaxStepMs     float64 // dt above this means the sim lost focus
	NominalStepMs float64

	// Charge pickup
	VelocitySamples int     // length of the squared velocity ring buffers
	ThresholdSpeed  float64 // rms drag speed needed to pick up charge
	PickupOffsetX1  float64 // pickup rect x1 = x - this
	PickupOffsetX2  float64 // pickup rect x2 = x + this
	PickupOffsetY   float64 // pickup rect grows by this above and below
}

// DragConfig contains keyboard dragging values.
type DragConfig struct {
	PositionDelta      float64 // px per tick while a direction key is held
	ShiftKeyMultiplier float64
}

// FlagsConfig mirrors the simulation's launch options.
type FlagsConfig struct {
	ShowCharges        string // "all", "none" or "diff"
	WallVisible        bool
	ShowGrid           bool
	ShowChargedArea    bool
	ShowChargeCenter   bool
	HideChargeControls bool
	KeyData            bool
	// Assertions turns contract violations into panics instead of logged
	// no-ops.
	Assertions bool
}

// LoopConfig contains headless loop settings.
type LoopConfig struct {
	TickRate       int           // ticks per second
	StatusInterval time.Duration // minimum time between status log lines
}

// LoggerConfig contains logging settings.
type LoggerConfig struct {
	Level       string
	Format      string // "console" or "json"
	ServiceName string
	LogFile     string // empty disables the rotating file sink
	MaxSize     int    // megabytes
	MaxBackups  int
	MaxAge      int // days
	Compress    bool
	AddSource   bool
}

// PersistenceConfig contains settings storage values.
type PersistenceConfig struct {
	Enabled bool
	AppName string
}

// SceneConfig selects the scene geometry.
type SceneConfig struct {
	// File is a TMX path on disk. Empty selects the embedded default scene.
	File string
}

// Config holds the whole simulation configuration. It is built once and
// passed into constructors; nothing in the core reads global state.
type Config struct {
	Physics     PhysicsConfig
	Drag        DragConfig
	Flags       FlagsConfig
	Loop        LoopConfig
	Logger      LoggerConfig
	Persistence PersistenceConfig
	Scene       SceneConfig
}

// Show charges modes.
const (
	ShowChargesAll  = "all"
	ShowChargesNone = "none"
	ShowChargesDiff = "diff"
)

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			ForceConstant: 0.05,
			ForcePower:    2,
			MaxForce:      1e-2,

			WallChargeThreshold: -5,
			WallRange:           40,
			WallRangeChargeDiv:  8,
			WallForce:           0.003,

			MaxStepMs:     500,
			NominalStepMs: 1000.0 / 60,

			VelocitySamples: 5,
			ThresholdSpeed:  0.0125,
			PickupOffsetX1:  5,
			PickupOffsetX2:  50,
			PickupOffsetY:   10,
		},
		Drag: DragConfig{
			PositionDelta:      5,
			ShiftKeyMultiplier: 0.25,
		},
		Flags: FlagsConfig{
			ShowCharges: ShowChargesAll,
			WallVisible: true,
			Assertions:  false,
		},
		Loop: LoopConfig{
			TickRate:       60,
			StatusInterval: time.Second,
		},
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "console",
			ServiceName: "basesim",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      7,
		},
		Persistence: PersistenceConfig{
			Enabled: true,
			AppName: "balloons-static",
		},
	}
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Physics.VelocitySamples <= 0:
		return fmt.Errorf("physics.velocitySamples must be positive, got %d", c.Physics.VelocitySamples)
	case c.Physics.ForcePower < 0:
		return fmt.Errorf("physics.forcePower must not be negative, got %v", c.Physics.ForcePower)
	case c.Physics.MaxForce <= 0:
		return fmt.Errorf("physics.maxForce must be positive, got %v", c.Physics.MaxForce)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("loop.tickRate must be positive, got %d", c.Loop.TickRate)
	}
	switch c.Flags.ShowCharges {
	case ShowChargesAll, ShowChargesNone, ShowChargesDiff:
	default:
		return fmt.Errorf("flags.showCharges must be one of all|none|diff, got %q", c.Flags.ShowCharges)
	}
	return nil
}

// Setting is one enumerated configuration value.
type Setting struct {
	Key   string
	Value any
}

// Describe enumerates every setting in a stable order so the effective
// configuration can be logged at startup.
func (c *Config) Describe() []Setting {
	p := c.Physics
	return []Setting{
		{"physics.forceConstant", p.ForceConstant},
		{"physics.forcePower", p.ForcePower},
		{"physics.maxForce", p.MaxForce},
		{"physics.wallChargeThreshold", p.WallChargeThreshold},
		{"physics.wallRange", p.WallRange},
		{"physics.wallRangeChargeDiv", p.WallRangeChargeDiv},
		{"physics.wallForce", p.WallForce},
		{"physics.maxStepMs", p.MaxStepMs},
		{"physics.nominalStepMs", p.NominalStepMs},
		{"physics.velocitySamples", p.VelocitySamples},
		{"physics.thresholdSpeed", p.ThresholdSpeed},
		{"physics.pickupOffsetX1", p.PickupOffsetX1},
		{"physics.pickupOffsetX2", p.PickupOffsetX2},
		{"physics.pickupOffsetY", p.PickupOffsetY},
		{"drag.positionDelta", c.Drag.PositionDelta},
		{"drag.shiftKeyMultiplier", c.Drag.ShiftKeyMultiplier},
		{"flags.showCharges", c.Flags.ShowCharges},
		{"flags.wallVisible", c.Flags.WallVisible},
		{"flags.showGrid", c.Flags.ShowGrid},
		{"flags.showChargedArea", c.Flags.ShowChargedArea},
		{"flags.showChargeCenter", c.Flags.ShowChargeCenter},
		{"flags.hideChargeControls", c.Flags.HideChargeControls},
		{"flags.keyData", c.Flags.KeyData},
		{"flags.assertions", c.Flags.Assertions},
		{"loop.tickRate", c.Loop.TickRate},
		{"loop.statusInterval", c.Loop.StatusInterval},
		{"logger.level", c.Logger.Level},
		{"logger.format", c.Logger.Format},
		{"logger.serviceName", c.Logger.ServiceName},
		{"logger.logFile", c.Logger.LogFile},
		{"logger.maxSize", c.Logger.MaxSize},
		{"logger.maxBackups", c.Logger.MaxBackups},
		{"logger.maxAge", c.Logger.MaxAge},
		{"logger.compress", c.Logger.Compress},
		{"logger.addSource", c.Logger.AddSource},
		{"persistence.enabled", c.Persistence.Enabled},
		{"persistence.appName", c.Persistence.AppName},
		{"scene.file", c.Scene.File},
	}
}
