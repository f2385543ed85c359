package asset

import "embed"

// Descriptors holds the built-in tile, object and player descriptor files under config/
//
//go:embed config/*.json
var Descriptors embed.FS

// DescriptorDir is the directory of Descriptors holding the JSON files
const DescriptorDir = "config"

// DefaultConfig returns the default game TOML configuration
const DefaultConfig = `
# === Course ===
[grid]
width = 7
height = 16

# === Simulation ===
[sim]
tick_rate = 60           # fixed updates per second
gravity = 1.5            # downhill acceleration, cells/s^2
turn_rate = 15.0         # steering torque at full input
turn_damping = 0.2       # spin bleed while steering
scroll_trigger = 6.0     # rows the skier may descend before the course scrolls
camera_offset = 2.0      # rows kept visible behind the skier
max_ticks_per_frame = 5

# === Generation ===
[generation]
seed = ""                # empty: time based
object_radius = 3.0
reroll_placed_type = true

# === Presentation ===
[render]
scale = 5.0
cell_px = 16
window_width = 720
window_height = 720
color = "auto"

[audio]
enabled = true

[input]
hold_ms = 180            # terminal key hold window, refreshed by autorepeat
keymap = ""              # optional TOML key binding overrides

# === Diagnostics ===
[debug]
log = false
log_dir = "logs"

[telemetry]
sentry_dsn = ""
`
