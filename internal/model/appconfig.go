package model

// EditorConfig holds editor preferences. Fields carry json tags for the
// config file and envconfig tags for SKETCHBOARD_* environment overrides.
type EditorConfig struct {
	// Selection chrome and hit testing
	CornerRadius float64  `json:"corner_radius" envconfig:"CORNER_RADIUS"` // px around a corner that grabs its handle
	HandleRadius float64  `json:"handle_radius" envconfig:"HANDLE_RADIUS"`
	ChromeMargin float64  `json:"chrome_margin" envconfig:"CHROME_MARGIN"` // outward offset of the selection outline
	ChromeColor  HexColor `json:"chrome_color" envconfig:"CHROME_COLOR"`
	ChromeWidth  float64  `json:"chrome_width" envconfig:"CHROME_WIDTH"`

	// Freehand strokes
	SimplifyTolerance float64 `json:"simplify_tolerance" envconfig:"SIMPLIFY_TOLERANCE"`
	BrushSpacing      float64 `json:"brush_spacing" envconfig:"BRUSH_SPACING"` // minimum px between sampled points

	// Drawing context defaults
	DefaultFill      HexColor `json:"default_fill" envconfig:"DEFAULT_FILL"`
	DefaultStroke    HexColor `json:"default_stroke" envconfig:"DEFAULT_STROKE"`
	DefaultLineWidth float64  `json:"default_line_width" envconfig:"DEFAULT_LINE_WIDTH"`
	DefaultLineCap   string   `json:"default_line_cap" envconfig:"DEFAULT_LINE_CAP"` // "butt", "round", "square"

	// Application preferences
	WindowWidth  float32 `json:"window_width" envconfig:"WINDOW_WIDTH"`
	WindowHeight float32 `json:"window_height" envconfig:"WINDOW_HEIGHT"`
	Theme        string  `json:"theme" envconfig:"THEME"`         // "light", "dark", "system"
	LogLevel     string  `json:"log_level" envconfig:"LOG_LEVEL"` // "debug", "info", "warn", "error"
}

// DefaultCornerRadius is the handle detection radius in px.
const DefaultCornerRadius = 15.0

// DefaultEditorConfig returns an EditorConfig populated with the stock values.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		CornerRadius:      DefaultCornerRadius,
		HandleRadius:      5,
		ChromeMargin:      5,
		ChromeColor:       MustHex("#4086f7"),
		ChromeWidth:       2,
		SimplifyTolerance: 0.8,
		BrushSpacing:      2,
		DefaultFill:       MustHex("#00000000"),
		DefaultStroke:     MustHex("#000000"),
		DefaultLineWidth:  1,
		DefaultLineCap:    "butt",
		WindowWidth:       1200,
		WindowHeight:      800,
		Theme:             "system",
		LogLevel:          "info",
	}
}

// DefaultStyles builds the initial drawing context from the config.
func (c EditorConfig) DefaultStyles() Styles {
	return Styles{
		Fill:      c.DefaultFill.NRGBA(),
		Stroke:    c.DefaultStroke.NRGBA(),
		LineWidth: c.DefaultLineWidth,
		LineCap:   ParseLineCap(c.DefaultLineCap),
	}
}
