package model

// Directive names recognized in refind.conf. Matching is
// case-insensitive; these are the canonical lowercase spellings.
const (
	DirectiveScanFor   = "scanfor"
	DirectiveShowTools = "showtools"
)

// Directive represents one scanfor/showtools line pulled out of the
// config file. It lives only for the duration of processing that line.
type Directive struct {
	Name      string   `json:"name"`      // Keyword as written in the file (case preserved)
	Items     []string `json:"items"`     // Ordered tokens; order drives rEFInd's icon order
	Line      int      `json:"line"`      // 1-based line number in the file
	Commented bool     `json:"commented"` // True if the line had a leading '#'
}

// TokenDescription returns a short human-readable description of a
// known scanfor/showtools token, or "" for tokens we don't recognize.
// Unknown tokens are perfectly legal in the file; we just can't
// describe them.
func TokenDescription(token string) string {
	return tokenDescriptions[token]
}

// Descriptions taken from the rEFInd configuration documentation.
var tokenDescriptions = map[string]string{
	// scanfor values
	"internal":     "Boot loaders on internal disks",
	"external":     "Boot loaders on external disks",
	"optical":      "Boot loaders on optical discs",
	"netboot":      "Network (PXE) boot via iPXE",
	"hdbios":       "BIOS/legacy boot from internal disks",
	"biosexternal": "BIOS/legacy boot from external disks",
	"cd":           "BIOS/legacy boot from optical discs",
	"manual":       "Manual boot stanzas from this file",
	"firmware":     "Boot options stored in EFI firmware",

	// showtools values
	"shell":            "Launch an EFI shell",
	"memtest":          "Run the Memtest86 utility",
	"gptsync":          "Re-sync the hybrid MBR",
	"gdisk":            "Launch the gdisk partitioning tool",
	"apple_recovery":   "Boot the Apple Recovery HD",
	"csr_rotate":       "Rotate Apple SIP values",
	"install":          "Install rEFInd to the ESP",
	"bootorder":        "Adjust the EFI boot order",
	"mok_tool":         "Launch the MOK key manager",
	"fwupdate":         "Run the firmware update tool",
	"netboot_tool":     "Network boot tool entry",
	"about":            "Show information about rEFInd",
	"hidden_tags":      "Manage hidden boot entries",
	"exit":             "Exit rEFInd",
	"shutdown":         "Shut the machine down",
	"reboot":           "Reboot the machine",
	"firmware_reboot":  "Reboot into the firmware setup UI",
	"windows_recovery": "Boot the Windows recovery partition",
}
