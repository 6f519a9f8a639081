package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/game"
	"github.com/lixenwraith/ghost-arena/input"
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/vmath"
)

var (
	// ErrUnknownKey is returned when a config file sets keys the schema does not know
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrUnknownCharacter is returned for a [characters.<name>] table with no such class
	ErrUnknownCharacter = errors.New("config: unknown character")

	// ErrInvalid is wrapped by range validation failures
	ErrInvalid = errors.New("config: invalid value")
)

// Duration decodes TOML strings such as "1.5s" or "800ms"
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config is the on-disk configuration
type Config struct {
	Seed       int64                      `toml:"seed"`
	Match      MatchConfig                `toml:"match"`
	Characters map[string]CharacterConfig `toml:"characters"`
	Keys       KeyConfig                  `toml:"keys"`
	Audio      AudioConfig                `toml:"audio"`
	Log        LogConfig                  `toml:"log"`
}

// MatchConfig holds the match rules
type MatchConfig struct {
	Rounds         int      `toml:"rounds"`
	TurnDuration   Duration `toml:"turn_duration"`
	CountdownStart int      `toml:"countdown_start"`
	CountdownStep  Duration `toml:"countdown_step"`
	TurnEndDelay   Duration `toml:"turn_end_delay"`
}

// CharacterConfig overrides stock stats of one class, unset fields keep the default
type CharacterConfig struct {
	MoveSpeed       *float64  `toml:"move_speed"`
	Acceleration    *float64  `toml:"acceleration"`
	MaxHealth       *float64  `toml:"max_health"`
	MaxFuel         *float64  `toml:"max_fuel"`
	JetpackThrust   *float64  `toml:"jetpack_thrust"`
	JetpackRegen    *float64  `toml:"jetpack_regen"`
	ProjectileSpeed *float64  `toml:"projectile_speed"`
	AttackCooldown  *Duration `toml:"attack_cooldown"`
	Damage          *float64  `toml:"damage"`
}

// KeyConfig binds terminal keys to actions, names as accepted by the input package
type KeyConfig struct {
	Left    []string `toml:"left"`
	Right   []string `toml:"right"`
	Jetpack []string `toml:"jetpack"`
	Fire    []string `toml:"fire"`
	Pause   []string `toml:"pause"`
	Debug   []string `toml:"debug"`
	Mute    []string `toml:"mute"`
	Quit    []string `toml:"quit"`
}

// Bindings converts to the input layer's action map
func (k KeyConfig) Bindings() input.Bindings {
	return input.Bindings{
		input.ActionLeft:    k.Left,
		input.ActionRight:   k.Right,
		input.ActionJetpack: k.Jetpack,
		input.ActionFire:    k.Fire,
		input.ActionPause:   k.Pause,
		input.ActionDebug:   k.Debug,
		input.ActionMute:    k.Mute,
		input.ActionQuit:    k.Quit,
	}
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0..1
}

// LogConfig controls the debug log file
type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Seed: 1,
		Match: MatchConfig{
			Rounds:         parameter.TotalRounds,
			TurnDuration:   Duration(parameter.TurnDuration),
			CountdownStart: parameter.CountdownStart,
			CountdownStep:  Duration(parameter.CountdownStep),
			TurnEndDelay:   Duration(parameter.TurnEndDelay),
		},
		Keys: KeyConfig{
			Left:    []string{"a", "Left"},
			Right:   []string{"d", "Right"},
			Jetpack: []string{"w", "Up", " "},
			Fire:    []string{"f", "j", "Enter"},
			Pause:   []string{"p"},
			Debug:   []string{"F1"},
			Mute:    []string{"m"},
			Quit:    []string{"Esc", "Ctrl-C", "q"},
		},
		Audio: AudioConfig{Enabled: true, Volume: 0.6},
		Log:   LogConfig{Enabled: false, Dir: "logs"},
	}
}

// Load reads a TOML file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes cfg as TOML
func Write(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

// Validate checks ranges that do not depend on the roster
func (c Config) Validate() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %v outside [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	for name, cc := range c.Characters {
		if _, ok := component.ParseCharacterClass(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
		}
		for field, v := range map[string]*float64{
			"move_speed":       cc.MoveSpeed,
			"acceleration":     cc.Acceleration,
			"max_health":       cc.MaxHealth,
			"max_fuel":         cc.MaxFuel,
			"jetpack_thrust":   cc.JetpackThrust,
			"jetpack_regen":    cc.JetpackRegen,
			"projectile_speed": cc.ProjectileSpeed,
			"damage":           cc.Damage,
		} {
			if v != nil && *v < 0 {
				return fmt.Errorf("%w: characters.%s.%s is negative", ErrInvalid, name, field)
			}
		}
	}
	if _, err := input.NewKeyMap(c.Keys.Bindings()); err != nil {
		return fmt.Errorf("config: keys: %w", err)
	}
	if _, err := c.GameConfig(); err != nil {
		return err
	}
	return nil
}

// GameConfig converts to match rules with the roster overrides applied
func (c Config) GameConfig() (game.Config, error) {
	gc := game.DefaultConfig()
	gc.Rounds = c.Match.Rounds
	gc.TurnDuration = time.Duration(c.Match.TurnDuration)
	gc.CountdownStart = c.Match.CountdownStart
	gc.CountdownStep = time.Duration(c.Match.CountdownStep)
	gc.TurnEndDelay = time.Duration(c.Match.TurnEndDelay)

	for name, cc := range c.Characters {
		class, ok := component.ParseCharacterClass(name)
		if !ok {
			return game.Config{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
		}
		stats := gc.Roster[class]
		cc.apply(&stats)
		gc.Roster[class] = stats
	}

	if err := gc.Validate(); err != nil {
		return game.Config{}, err
	}
	return gc, nil
}

// apply writes the set overrides onto stats
func (cc CharacterConfig) apply(s *component.CharacterStats) {
	set := func(dst *int64, v *float64) {
		if v != nil {
			*dst = vmath.FromFloat(*v)
		}
	}
	set(&s.MoveSpeed, cc.MoveSpeed)
	set(&s.Acceleration, cc.Acceleration)
	set(&s.MaxHealth, cc.MaxHealth)
	set(&s.MaxFuel, cc.MaxFuel)
	set(&s.JetpackThrust, cc.JetpackThrust)
	set(&s.JetpackRegen, cc.JetpackRegen)
	set(&s.ProjectileSpeed, cc.ProjectileSpeed)
	set(&s.Attack.Damage, cc.Damage)
	if cc.AttackCooldown != nil {
		s.AttackCooldown = time.Duration(*cc.AttackCooldown)
	}
}
