package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal that gets a regular layout.
	MinWidth = 40

	// StandardWidth is the threshold for standard layout.
	StandardWidth = 100

	// FullWidth is the threshold for full layout.
	FullWidth = 140
)

// Height breakpoints
const (
	// MinHeight is the shortest terminal that gets a regular layout.
	MinHeight = 10

	// StandardHeight is the threshold for standard layout.
	StandardHeight = 24

	// FullHeight is the threshold for full layout.
	FullHeight = 40
)

// Navigation panel constraints
const (
	// NavigationMinWidth is the minimum width of the revealed navigation list.
	NavigationMinWidth = 20

	// NavigationMaxWidth keeps the list from stretching on wide terminals.
	NavigationMaxWidth = 48

	// NavigationCompactWidth is the list width cap in compact mode.
	NavigationCompactWidth = 28
)

// Pan strip widths: the part of the hidden panel left on screen at rest.
const (
	StripFull     = 6
	StripStandard = 4
	StripCompact  = 3
	StripMinimal  = 2
)

// StatusBarHeight is the fixed height of the key hint bar.
const StatusBarHeight = 1
