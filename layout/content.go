package layout

// Palette colors.
const (
	ColorPrimary   = "#0078D4"
	ColorSecondary = "#50E6FF"
	ColorGreen     = "#10B981"
	ColorOrange    = "#F59E0B"
	ColorRed       = "#EF4444"
	ColorGray      = "#6B7280"
	ColorLightGray = "#F3F4F6"
	ColorDark      = "#1F2937"
	ColorRedTint   = "#FEE2E2"
	ColorGreenTint = "#D1FAE5"
)

// Content is the text and color data of an infographic.
// Labels may span several lines, separated by '\n'.
type Content struct {
	Canvas       CanvasSpec   `yaml:"canvas"`
	Bands        []Band       `yaml:"bands"`
	Title        Title        `yaml:"title"`
	Problem      Problem      `yaml:"problem"`
	Features     Features     `yaml:"features"`
	Stats        Stats        `yaml:"stats"`
	Workflow     Workflow     `yaml:"workflow"`
	Fields       Fields       `yaml:"fields"`
	Architecture Architecture `yaml:"architecture"`
	Output       Output       `yaml:"output"`
}

type CanvasSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"`
}

type Title struct {
	Lines    []string `yaml:"lines"` // the first one is emphasized
	Subtitle string   `yaml:"subtitle"`
	Color    string   `yaml:"color"`
}

type Problem struct {
	Heading string   `yaml:"heading"`
	Lines   []string `yaml:"lines"`
}

type Features struct {
	Heading string    `yaml:"heading"`
	Cards   []Feature `yaml:"cards"`
}

// Feature is a card with an accent badge, a title and a short description.
type Feature struct {
	Icon        string `yaml:"icon"` // optional glyph drawn inside the badge
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

type Stats struct {
	Heading string `yaml:"heading"`
	Items   []Stat `yaml:"items"`
}

// Stat is a headline number. When X is set, it overrides
// the regular spacing of the row.
type Stat struct {
	Value string   `yaml:"value"`
	Label string   `yaml:"label"`
	Color string   `yaml:"color"`
	X     *float64 `yaml:"x"`
}

type Workflow struct {
	Heading string `yaml:"heading"`
	Steps   []Step `yaml:"steps"`
}

// Step is a numbered stage of a process. Number defaults to
// the position of the step, starting at 1.
type Step struct {
	Number      string   `yaml:"number"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Color       string   `yaml:"color"`
	X           *float64 `yaml:"x"`
}

type Fields struct {
	Heading string        `yaml:"heading"`
	Columns []FieldColumn `yaml:"columns"`
}

// FieldColumn is a bulleted list in a tinted box.
type FieldColumn struct {
	Title      string   `yaml:"title"`
	Items      []string `yaml:"items"`
	Note       string   `yaml:"note"`
	Color      string   `yaml:"color"`
	Fill       string   `yaml:"fill"`
	FontSize   float64  `yaml:"font_size"`   // default to 9
	LineHeight float64  `yaml:"line_height"` // default to 0.28
	ItemsTop   float64  `yaml:"items_top"`   // first item below the box top, default to 0.8
}

type Architecture struct {
	Heading string   `yaml:"heading"`
	Sources []Source `yaml:"sources"`
	Hub     *Hub     `yaml:"hub"`
}

// Source is a data provider, connected to the hub.
type Source struct {
	Title       string `yaml:"title"`
	Status      string `yaml:"status"`
	StatusColor string `yaml:"status_color"`
	Details     string `yaml:"details"`
	Color       string `yaml:"color"`
}

// Hub is the component consuming every source.
type Hub struct {
	Title   string `yaml:"title"`
	Caption string `yaml:"caption"`
}

// Output is the final product, fed by the hub.
type Output struct {
	Title   string `yaml:"title"`
	Caption string `yaml:"caption"`
}

func ptr(f float64) *float64 { return &f }

// DefaultContent returns the Copilot Studio agent reporting infographic.
func DefaultContent() Content {
	return Content{
		Canvas: CanvasSpec{Width: 10, Height: 24, Background: "white"},
		Bands:  DefaultBands(),
		Title: Title{
			Lines:    []string{"Copilot Studio Agent", "Reporting Solution"},
			Subtitle: "PowerShell-based automated reporting for Power Platform agents",
			Color:    ColorPrimary,
		},
		Problem: Problem{
			Heading: "THE CHALLENGE",
			Lines: []string{
				"No unified way to track Copilot Studio agent usage,",
				"consumption, and metadata across all environments",
			},
		},
		Features: Features{
			Heading: "KEY FEATURES",
			Cards: []Feature{
				{Title: "Inventory\nTracking", Description: "All agents across\nall environments", Color: ColorPrimary},
				{Title: "Credits\nConsumption", Description: "Billed & non-billed\nusage tracking", Color: ColorGreen},
				{Title: "Unified\nReporting", Description: "Merged CSV reports\nready for analysis", Color: ColorOrange},
			},
		},
		Stats: Stats{
			Heading: "BY THE NUMBERS",
			Items: []Stat{
				{Value: "115", Label: "Total Agents\nDiscovered", Color: ColorPrimary, X: ptr(1.2)},
				{Value: "8/12", Label: "Data Fields\nAvailable", Color: ColorGreen, X: ptr(3.7)},
				{Value: "34", Label: "Agents with\nUsage Data", Color: ColorOrange, X: ptr(6.2)},
				{Value: "365", Label: "Days Lookback\n(Recommended)", Color: ColorSecondary, X: ptr(8.7)},
			},
		},
		Workflow: Workflow{
			Heading: "HOW IT WORKS",
			Steps: []Step{
				{Title: "Authenticate", Description: "OAuth 2.0\nDevice Code Flow", Color: ColorPrimary},
				{Title: "Fetch Data", Description: "2 API Endpoints\n(Inventory + Credits)", Color: ColorGreen},
				{Title: "Process", Description: "PowerShell\nScripts", Color: ColorOrange},
				{Title: "Export", Description: "CSV Reports\nReady", Color: ColorSecondary},
			},
		},
		Fields: Fields{
			Heading: "AVAILABLE DATA FIELDS (8/12)",
			Columns: []FieldColumn{
				{
					Title: "Available Fields",
					Items: []string{
						"Agent Identifier & Name",
						"Environment ID & Metadata",
						"Created/Updated/Published dates",
						"Agent Owner",
						"Billed Copilot Credits",
						"Non-Billed Credits",
						"Publication Status",
					},
					Color: ColorGreen,
					Fill:  ColorGreenTint,
				},
				{
					Title:      "Not Available via API",
					Items:      []string{"Agent Description", "Solution ID", "Active Users Count"},
					Note:       "Requires Dataverse queries\nor not exposed by APIs",
					Color:      ColorRed,
					Fill:       ColorRedTint,
					FontSize:   10,
					LineHeight: 0.35,
					ItemsTop:   0.9,
				},
			},
		},
		Architecture: Architecture{
			Heading: "TECHNICAL ARCHITECTURE",
			Sources: []Source{
				{
					Title: "Power Platform Inventory API", Status: "Documented & Supported", StatusColor: ColorGreen,
					Details: "Returns: Metadata, Owners,\nTimestamps, Environment Info", Color: ColorPrimary,
				},
				{
					Title: "Licensing API (v0.1-alpha)", Status: "Undocumented (Discovered)", StatusColor: ColorOrange,
					Details: "Returns: Billed & Non-Billed\nCredits, Channel Breakdown", Color: ColorOrange,
				},
			},
			Hub: &Hub{
				Title:   "PowerShell Scripts",
				Caption: "Get-AllAgents-InventoryAPI-v2.ps1  •  Get-CopilotCredits-v2.ps1  •  Merge-InventoryAndCredits.ps1",
			},
		},
		Output: Output{
			Title:   "Output: CopilotAgents_Complete_TIMESTAMP.csv",
			Caption: "Unified report with all agents, consumption data, and metadata",
		},
	}
}
