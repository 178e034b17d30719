package config

import "math"

// PhysicsConfig contains the shared terrain physics constants
type PhysicsConfig struct {
	Gravity               float64
	FallGravityMultiplier float64 // Gravity scale while falling
	MaxFallSpeed          float64
	WallBounce            float64 // Fraction of speed reflected by walls (0 = hard stop)

	// Grounding
	StepHeight        float64 // Snap-down distance while already grounded
	MinLandingScan    float64 // Minimum look-down distance while airborne
	PlatformTolerance float64 // Platform hits must be below feetY - tolerance
	AngleRedThreshold float64 // Ground steeper than this is treated as wall (radians)
	MaxGroundAngle    float64 // Steeper ground is drawn as unwalkable by the debug overlay (radians)
	SlopeMinAngle     float64 // Slopes flatter than this get no assist (radians)

	// Rotation easing toward the ground angle
	GroundRotationEase float64
	AirRotationEase    float64
}

// AirBoostConfig configures the optional airborne momentum boost.
type AirBoostConfig struct {
	Enabled         bool
	MinFrames       float64 // Frames of held direction while airborne before boosting
	AccelMultiplier float64
	SpeedMultiplier float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Movement
	MaxSpeed           float64
	Acceleration       float64
	Brake              float64
	Friction           float64
	AirAcceleration    float64
	AirFriction        float64
	AirBrakeMultiplier float64 // Air brake = AirAcceleration * multiplier
	StopThreshold      float64 // Speeds below this snap to zero when coasting
	SafetyClamp        float64 // |vx| never exceeds MaxSpeed * SafetyClamp

	// Jumping
	JumpForce        float64
	JumpCutFactor    float64 // vy multiplier on early release
	JumpCutMinSpeed  float64 // Release only cuts while vy is below this
	CoyoteFrames     float64
	JumpBufferFrames float64

	// Slope assist
	SlopeMomentum      float64 // Downhill speed gain per unit slope factor
	DownhillSpeedBonus float64 // Downhill cap = MaxSpeed * (1 + factor * bonus)
	UphillDrag         float64 // Uphill vx multiplier = 1 - factor * drag
	UphillSpeedPenalty float64 // Uphill cap = MaxSpeed * (1 - factor * penalty)
	SlopeDeadband      float64 // Speeds within this count as not moving

	AirBoost AirBoostConfig
}

// EnemyConfig contains patrol enemy configuration
type EnemyConfig struct {
	Width    float64
	Height   float64
	MinSpeed float64
	MaxSpeed float64

	// Turn cooldowns (frames) per trigger
	WallTurnCooldown  float64
	WorldTurnCooldown float64
	LedgeTurnCooldown float64

	// Ledge probe window relative to the feet
	LedgeScanAbove float64
	LedgeScanBelow float64
}

// BoulderConfig contains rolling boulder configuration
type BoulderConfig struct {
	DefaultRadius  float64
	DefaultMass    float64
	Friction       float64 // Rolling friction multiplier per frame
	SlopeAccel     float64 // Horizontal nudge per unit sin(slope)
	PushForce      float64 // Fraction of player speed transferred on push
	PlayerDamping  float64 // Player vx multiplier while pushing
	DestroySpeed   float64 // Impact speed required to break terrain
	BreakProbe     float64 // Distance beyond the impact point checked for breakables
	Rebound        float64 // vx multiplier after a non-destructive wall hit
	GroundScan     int     // Pixels scanned below the boulder for ground
	GroundRollRate float64 // Rotation per unit vx while grounded
	AirRollRate    float64 // Rotation per unit vx while airborne
	ShapePoints    int
	ShapeJitter    float64 // Radius jitter fraction for the silhouette
}

// TerrainConfig contains destructible terrain configuration
type TerrainConfig struct {
	BlockSize     int
	MaxChainCells int // Upper bound on blocks visited by one chain destruction
}

// DebrisConfig contains debris particle configuration
type DebrisConfig struct {
	PerBlock   int
	Spread     float64 // Initial velocity range per axis
	Gravity    float64
	LifeFrames float64 // Frames for life to fade from 1 to 0
}

// PlatformConfig contains moving platform configuration
type PlatformConfig struct {
	BaseStep     float64 // Spline units advanced per frame at speed 1
	EaseDistance float64 // Spline units over which the platform eases at either end
	MinEase      float64
	DefaultSpeed float64
	MinSpeed     float64
	MaxSpeed     float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows its target (0.0-1.0)
	DeadZoneWidth   float64 // Half-extent of the dead zone
	DeadZoneHeight  float64
	VerticalOffset  float64 // Added to the player center before dead zone tests

	ShakeIntensity float64 // pixels, on chain destruction
	ShakeDuration  float64 // frames
}

// WorldConfig contains world extent and timing configuration
type WorldConfig struct {
	Width    float64
	Height   float64
	SpawnX   float64
	SpawnY   float64
	TickRate float64 // Reference cadence the constants are tuned for
	MaxDelta float64 // Largest frame delta in seconds before clamping
	CellSize int     // Actor broadphase cell size
}

// DebugConfig contains diagnostic options
type DebugConfig struct {
	Sensors bool // Record grounding probe hits on the player
}

// Tuning groups every simulation constant. Each simulation owns its own copy.
type Tuning struct {
	Name     string
	Physics  PhysicsConfig
	Player   PlayerConfig
	Enemy    EnemyConfig
	Boulder  BoulderConfig
	Terrain  TerrainConfig
	Debris   DebrisConfig
	Platform PlatformConfig
	Camera   CameraConfig
	World    WorldConfig
	Debug    DebugConfig
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Classic Tuning
var Modular Tuning

const deg = math.Pi / 180

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "2dp engine",
	}

	Classic = Tuning{
		Name: "classic",
		Physics: PhysicsConfig{
			Gravity:               0.08,
			FallGravityMultiplier: 1.4,
			MaxFallSpeed:          8,
			WallBounce:            0,

			StepHeight:        16,
			MinLandingScan:    4,
			PlatformTolerance: 5,
			AngleRedThreshold: 60 * deg,
			MaxGroundAngle:    75 * deg,
			SlopeMinAngle:     0.05,

			GroundRotationEase: 0.2,
			AirRotationEase:    0.1,
		},
		Player: PlayerConfig{
			Width:  24,
			Height: 32,

			MaxSpeed:           3.0,
			Acceleration:       0.05, // Laggy start
			Brake:              0.35,
			Friction:           0.94,
			AirAcceleration:    0.35,
			AirFriction:        0.99,
			AirBrakeMultiplier: 3.5,
			StopThreshold:      0.5,
			SafetyClamp:        2,

			JumpForce:        -6.5,
			JumpCutFactor:    0.65,
			JumpCutMinSpeed:  -2,
			CoyoteFrames:     18,
			JumpBufferFrames: 12,

			SlopeMomentum:      1.5,
			DownhillSpeedBonus: 0.6,
			UphillDrag:         0.45,
			UphillSpeedPenalty: 0.82,
			SlopeDeadband:      0.1,

			AirBoost: AirBoostConfig{
				Enabled:         false,
				MinFrames:       10,
				AccelMultiplier: 1.5,
				SpeedMultiplier: 1.2,
			},
		},
		Enemy: EnemyConfig{
			Width:    30,
			Height:   40,
			MinSpeed: 1.5,
			MaxSpeed: 3.0,

			WallTurnCooldown:  15,
			WorldTurnCooldown: 20,
			LedgeTurnCooldown: 30,

			LedgeScanAbove: 2,
			LedgeScanBelow: 15,
		},
		Boulder: BoulderConfig{
			DefaultRadius:  20,
			DefaultMass:    1,
			Friction:       0.96,
			SlopeAccel:     0.5,
			PushForce:      0.3,
			PlayerDamping:  0.3,
			DestroySpeed:   2.5,
			BreakProbe:     5,
			Rebound:        -0.5,
			GroundScan:     10,
			GroundRollRate: 0.1,
			AirRollRate:    0.05,
			ShapePoints:    8,
			ShapeJitter:    0.2,
		},
		Terrain: TerrainConfig{
			BlockSize:     20,
			MaxChainCells: 4096,
		},
		Debris: DebrisConfig{
			PerBlock:   6,
			Spread:     8,
			Gravity:    0.2,
			LifeFrames: 20, // life -= 0.05 per frame
		},
		Platform: PlatformConfig{
			BaseStep:     0.02,
			EaseDistance: 0.5,
			MinEase:      0.05,
			DefaultSpeed: 1,
			MinSpeed:     0.1,
			MaxSpeed:     10,
		},
		Camera: CameraConfig{
			FollowSmoothing: 0.05, // Loose lerp for an elastic feel
			DeadZoneWidth:   40,
			DeadZoneHeight:  60,
			VerticalOffset:  -40,

			ShakeIntensity: 6,
			ShakeDuration:  18,
		},
		World: WorldConfig{
			Width:    6400,
			Height:   3600,
			SpawnX:   100,
			SpawnY:   100,
			TickRate: 60,
			MaxDelta: 0.1,
			CellSize: 32,
		},
	}

	// The modular tuning shares the constants but softens air braking,
	// lowers the stop threshold and clamp, and cuts jumps harder.
	Modular = Classic
	Modular.Name = "modular"
	Modular.Player.AirBrakeMultiplier = 1.5
	Modular.Player.StopThreshold = 0.1
	Modular.Player.SafetyClamp = 1.5
	Modular.Player.JumpCutFactor = 0.35
}
