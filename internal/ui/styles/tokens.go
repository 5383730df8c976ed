package styles

// ColorToken represents a named, themeable color.
// These are the keys users can override under theme.colors in their config.
type ColorToken string

const (
	TokenTextPrimary ColorToken = "text.primary"
	TokenTextMuted   ColorToken = "text.muted"

	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	TokenTagText       ColorToken = "tag.text"
	TokenTagBg         ColorToken = "tag.bg"
	TokenTagSelectedBg ColorToken = "tag.selected.bg"
	TokenTagRemove     ColorToken = "tag.remove"

	TokenButtonText             ColorToken = "button.text"
	TokenButtonSecondaryBg      ColorToken = "button.secondary.bg"
	TokenButtonSecondaryFocusBg ColorToken = "button.secondary.focus"
	TokenButtonDangerBg         ColorToken = "button.danger.bg"
	TokenButtonDangerFocusBg    ColorToken = "button.danger.focus"

	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	TokenToastInfo  ColorToken = "toast.info"
	TokenToastError ColorToken = "toast.error"
)

// AllTokens lists every token in display order.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary, TokenTextMuted,
		TokenBorderDefault, TokenBorderFocus,
		TokenTagText, TokenTagBg, TokenTagSelectedBg, TokenTagRemove,
		TokenButtonText, TokenButtonSecondaryBg, TokenButtonSecondaryFocusBg,
		TokenButtonDangerBg, TokenButtonDangerFocusBg,
		TokenOverlayTitle, TokenOverlayBorder,
		TokenToastInfo, TokenToastError,
	}
}

func isValidToken(token ColorToken) bool {
	for _, t := range AllTokens() {
		if t == token {
			return true
		}
	}
	return false
}
