package themes

// DefaultStopSetName names the built-in keyframe table.
const DefaultStopSetName = "vetkai"

// DefaultStops returns a fresh copy of the built-in keyframe table.
//
// Section flow: Hero (ivory) -> Mission (terracotta) -> Values (gold) ->
// Engine (peacock) -> Contact (maroon). Bridge stops sit between sections so
// each hue change is spread over a longer stretch of scrolling.
func DefaultStops() []ColorStop {
	return []ColorStop{
		{
			Position:   0,
			Label:      "hero",
			Background: HSL{60, 100, 97},
			Primary:    HSL{14, 61, 48},
			Accent:     HSL{43, 98, 53},
		},
		{
			Position:   0.10,
			Label:      "bridge-1a",
			Background: HSL{50, 85, 96},
			Primary:    HSL{14, 63, 47},
			Accent:     HSL{42, 96, 52},
		},
		{
			Position:   0.15,
			Label:      "bridge-1b",
			Background: HSL{40, 70, 94},
			Primary:    HSL{14, 65, 46},
			Accent:     HSL{40, 94, 51},
		},
		{
			Position:   0.20,
			Label:      "mission",
			Background: HSL{14, 30, 92},
			Primary:    HSL{14, 61, 48},
			Accent:     HSL{43, 98, 53},
		},
		{
			Position:   0.30,
			Label:      "bridge-2a",
			Background: HSL{20, 40, 93},
			Primary:    HSL{30, 70, 50},
			Accent:     HSL{43, 98, 53},
		},
		{
			Position:   0.35,
			Label:      "bridge-2b",
			Background: HSL{35, 60, 94},
			Primary:    HSL{43, 85, 52},
			Accent:     HSL{30, 100, 60},
		},
		{
			Position:   0.40,
			Label:      "values",
			Background: HSL{43, 50, 95},
			Primary:    HSL{43, 98, 53},
			Accent:     HSL{14, 61, 48},
		},
		{
			Position:   0.50,
			Label:      "bridge-3a",
			Background: HSL{80, 45, 93},
			Primary:    HSL{120, 70, 45},
			Accent:     HSL{183, 80, 30},
		},
		{
			Position:   0.55,
			Label:      "bridge-3b",
			Background: HSL{150, 40, 90},
			Primary:    HSL{183, 90, 28},
			Accent:     HSL{43, 98, 53},
		},
		{
			Position:   0.60,
			Label:      "engine",
			Background: HSL{183, 30, 88},
			Primary:    HSL{183, 100, 22},
			Accent:     HSL{43, 98, 53},
		},
		{
			Position:   0.70,
			Label:      "bridge-4a",
			Background: HSL{220, 35, 85},
			Primary:    HSL{300, 80, 35},
			Accent:     HSL{345, 90, 30},
		},
		{
			Position:   0.80,
			Label:      "bridge-4b",
			Background: HSL{330, 50, 88},
			Primary:    HSL{345, 100, 25},
			Accent:     HSL{14, 61, 48},
		},
		{
			Position:   0.90,
			Label:      "contact",
			Background: HSL{345, 40, 90},
			Primary:    HSL{345, 100, 25},
			Accent:     HSL{43, 98, 53},
		},
		{
			Position:   1.0,
			Label:      "footer",
			Background: HSL{345, 35, 92},
			Primary:    HSL{345, 100, 25},
			Accent:     HSL{43, 98, 53},
		},
	}
}

// DefaultTable returns the built-in keyframe table.
func DefaultTable() *StopTable {
	return MustStopTable(DefaultStops())
}
