package constants

// Logo Geometry
const (
	// LogoWidth is the logo width in virtual pixels
	LogoWidth = 128.0

	// LogoAspectRatio is width / height of the logo box
	LogoAspectRatio = 2.0

	// LogoText is drawn centered inside the logo box
	LogoText = "DVD"
)

// Corner & Diagnostic Thresholds
const (
	// CornerThreshold is the per-axis pixel tolerance for "at a corner"
	CornerThreshold = 6.0

	// ConeThreshold is the max angle in degrees between velocity and target vector for a highlighted aim
	ConeThreshold = 8.0

	// RayLength is the visual length of the debug direction ray in virtual pixels
	RayLength = 300.0
)
