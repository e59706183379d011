// Package layout maps a terminal size to the sliding container's geometry:
// how much of each panel stays on screen, and the pan bounds that produce it.
package layout

// LayoutMode is a size class of the terminal.
type LayoutMode int

const (
	LayoutFull LayoutMode = iota
	LayoutStandard
	LayoutCompact
	LayoutMinimal
)

var modeNames = [...]string{
	LayoutFull:     "full",
	LayoutStandard: "standard",
	LayoutCompact:  "compact",
	LayoutMinimal:  "minimal",
}

func (m LayoutMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Profile is the geometry used by one mode.
type Profile struct {
	Mode LayoutMode
	// MinWidth and MinHeight must both be met for the mode to apply.
	MinWidth, MinHeight int
	// Strip is the left pan bound: how much navigation shows at rest.
	Strip int
	// NavigationShare is the fraction of the width the open navigation
	// panel aims for, capped at NavigationCap. Zero means "all but the main
	// strip".
	NavigationShare float32
	NavigationCap   int
}

// profiles is ordered from largest to smallest; the first that fits wins.
var profiles = []Profile{
	{Mode: LayoutFull, MinWidth: FullWidth, MinHeight: FullHeight, Strip: StripFull, NavigationShare: 0.25, NavigationCap: NavigationMaxWidth},
	{Mode: LayoutStandard, MinWidth: StandardWidth, MinHeight: StandardHeight, Strip: StripStandard, NavigationShare: 0.30, NavigationCap: NavigationMaxWidth},
	{Mode: LayoutCompact, MinWidth: MinWidth, MinHeight: MinHeight, Strip: StripCompact, NavigationShare: 0.45, NavigationCap: NavigationCompactWidth},
}

var minimalProfile = Profile{Mode: LayoutMinimal, Strip: StripMinimal}

// ProfileFor returns the geometry of the largest mode the size fits.
func ProfileFor(width, height int) Profile {
	for _, p := range profiles {
		if width >= p.MinWidth && height >= p.MinHeight {
			return p
		}
	}
	return minimalProfile
}

// DetermineMode returns the mode for a terminal size. The narrower of the
// two dimensions decides.
func DetermineMode(width, height int) LayoutMode {
	return ProfileFor(width, height).Mode
}
