package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconFirst     = "¹" // First token (leftmost icon in the boot menu)
	IconLast      = "¶" // Last token
	IconCommented = "≈" // Directive line is commented out in the file
	IconActive    = " " // Active directive (no icon to reduce noise)
	IconModified  = "◆" // Diamond for directives with unsaved reordering
)
