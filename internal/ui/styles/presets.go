package styles

// Preset is a named set of token colors.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// DefaultPreset is applied before any user preset or override.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Muted greys with blue focus",
	Colors: map[ColorToken]string{
		TokenTextPrimary:            "#CCCCCC",
		TokenTextMuted:              "#696969",
		TokenBorderDefault:          "#696969",
		TokenBorderFocus:            "#54A0FF",
		TokenTagText:                "#FFFFFF",
		TokenTagBg:                  "#1A5276",
		TokenTagSelectedBg:          "#3498DB",
		TokenTagRemove:              "#FF8787",
		TokenButtonText:             "#FFFFFF",
		TokenButtonSecondaryBg:      "#2D3436",
		TokenButtonSecondaryFocusBg: "#636E72",
		TokenButtonDangerBg:         "#922B21",
		TokenButtonDangerFocusBg:    "#E74C3C",
		TokenOverlayTitle:           "#C9C9C9",
		TokenOverlayBorder:          "#8C8C8C",
		TokenToastInfo:              "#54A0FF",
		TokenToastError:             "#FF8787",
	},
}

// Presets holds the built-in themes selectable with theme.preset.
var Presets = map[string]Preset{
	"default": DefaultPreset,
	"high-contrast": {
		Name:        "high-contrast",
		Description: "Black and white with yellow focus",
		Colors: map[ColorToken]string{
			TokenTextPrimary:   "#FFFFFF",
			TokenTextMuted:     "#BBBBBB",
			TokenBorderDefault: "#FFFFFF",
			TokenBorderFocus:   "#FFFF00",
			TokenTagText:       "#000000",
			TokenTagBg:         "#FFFFFF",
			TokenTagSelectedBg: "#FFFF00",
			TokenTagRemove:     "#FF0000",
			TokenOverlayBorder: "#FFFFFF",
			TokenToastInfo:     "#FFFF00",
			TokenToastError:    "#FF0000",
		},
	},
}
