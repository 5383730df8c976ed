package styles

import (
	"fmt"
	"maps"
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid an import cycle.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ApplyTheme resets colors to the default preset, layers the named preset and
// the individual overrides on top, then rebuilds every style.
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != DefaultPreset.Name {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !hexColor.MatchString(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

func applyColors(colors map[ColorToken]string) {
	set := func(token ColorToken, dst *lipgloss.TerminalColor) {
		if c, ok := colors[token]; ok {
			*dst = lipgloss.Color(c)
		}
	}
	set(TokenTextPrimary, &TextPrimaryColor)
	set(TokenTextMuted, &TextMutedColor)
	set(TokenBorderDefault, &BorderDefaultColor)
	set(TokenBorderFocus, &BorderFocusColor)
	set(TokenTagText, &TagTextColor)
	set(TokenTagBg, &TagBgColor)
	set(TokenTagSelectedBg, &TagSelectedBgColor)
	set(TokenTagRemove, &TagRemoveColor)
	set(TokenButtonText, &ButtonTextColor)
	set(TokenButtonSecondaryBg, &ButtonSecondaryBgColor)
	set(TokenButtonSecondaryFocusBg, &ButtonSecondaryFocusBgColor)
	set(TokenButtonDangerBg, &ButtonDangerBgColor)
	set(TokenButtonDangerFocusBg, &ButtonDangerFocusBgColor)
	set(TokenOverlayTitle, &OverlayTitleColor)
	set(TokenOverlayBorder, &OverlayBorderColor)
	set(TokenToastInfo, &ToastBorderInfoColor)
	set(TokenToastError, &ToastBorderErrorColor)
}
