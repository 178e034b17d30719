package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Profile returns a copy of the named tuning profile.
func Profile(name string) (Tuning, error) {
	switch strings.ToLower(name) {
	case "", Classic.Name:
		return Classic, nil
	case Modular.Name:
		return Modular, nil
	}
	return Tuning{}, fmt.Errorf("unknown tuning profile %q", name)
}

// Resolve returns the named profile with the TOML file at path overlaid on
// it. An empty path uses the profile as is.
func Resolve(profile, path string) (Tuning, error) {
	t, err := Profile(profile)
	if err != nil {
		return Tuning{}, err
	}
	if path == "" {
		return t, nil
	}
	return LoadTuningFile(path, t)
}

// LoadTuningFile overlays the TOML file at path on base. Keys follow the
// struct field names, e.g.
//
//	[Player]
//	MaxSpeed = 3.5
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
func LoadTuningFile(path string, base Tuning) (Tuning, error) {
	t := base
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return Tuning{}, fmt.Errorf("decoding tuning file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Tuning{}, fmt.Errorf("tuning file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

// Validate reports tuning values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.World.Width <= 0 || t.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", t.World.Width, t.World.Height))
	}
	if t.World.TickRate <= 0 {
		errs = append(errs, errors.New("tick rate must be positive"))
	}
	if t.World.CellSize <= 0 {
		errs = append(errs, errors.New("broadphase cell size must be positive"))
	}
	if t.Terrain.BlockSize <= 0 {
		errs = append(errs, errors.New("terrain block size must be positive"))
	}
	if t.Player.Width <= 0 || t.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if t.Enemy.MinSpeed > t.Enemy.MaxSpeed {
		errs = append(errs, fmt.Errorf("enemy speed range [%v, %v] is inverted", t.Enemy.MinSpeed, t.Enemy.MaxSpeed))
	}
	if t.Debris.LifeFrames <= 0 {
		errs = append(errs, errors.New("debris life must be positive"))
	}
	return errors.Join(errs...)
}
