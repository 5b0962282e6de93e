package themes

// Token names a derived color consumed by the rendering layer.
type Token string

const (
	TokenBackground            Token = "background"
	TokenForeground            Token = "foreground"
	TokenPrimary               Token = "primary"
	TokenPrimaryForeground     Token = "primary-foreground"
	TokenAccent                Token = "accent"
	TokenAccentForeground      Token = "accent-foreground"
	TokenBorder                Token = "border"
	TokenCard                  Token = "card"
	TokenCardForeground        Token = "card-foreground"
	TokenMuted                 Token = "muted"
	TokenMutedForeground       Token = "muted-foreground"
	TokenSecondary             Token = "secondary"
	TokenSecondaryForeground   Token = "secondary-foreground"
	TokenPopover               Token = "popover"
	TokenPopoverForeground     Token = "popover-foreground"
	TokenDestructive           Token = "destructive"
	TokenDestructiveForeground Token = "destructive-foreground"
	TokenInput                 Token = "input"
	TokenRing                  Token = "ring"

	// Brand tokens
	TokenSlateDeep   Token = "slate-deep"
	TokenSlateLight  Token = "slate-light"
	TokenSaffronGlow Token = "saffron-glow"
	TokenSaffronDark Token = "saffron-dark"
)

// AllTokens lists every token in publication order.
var AllTokens = []Token{
	TokenBackground,
	TokenForeground,
	TokenPrimary,
	TokenPrimaryForeground,
	TokenAccent,
	TokenAccentForeground,
	TokenBorder,
	TokenCard,
	TokenCardForeground,
	TokenMuted,
	TokenMutedForeground,
	TokenSecondary,
	TokenSecondaryForeground,
	TokenPopover,
	TokenPopoverForeground,
	TokenDestructive,
	TokenDestructiveForeground,
	TokenInput,
	TokenRing,
	TokenSlateDeep,
	TokenSlateLight,
	TokenSaffronGlow,
	TokenSaffronDark,
}

// CSSVar returns the custom property name for t, e.g. "--primary".
func (t Token) CSSVar() string {
	return "--" + string(t)
}

// TokenSet is one complete palette. It is built fresh for every tick and
// replaced wholesale, never patched.
type TokenSet map[Token]HSL

// Get returns the color for t and whether it is present.
func (ts TokenSet) Get(t Token) (HSL, bool) {
	c, ok := ts[t]
	return c, ok
}

// Complete reports whether every token in AllTokens is present.
func (ts TokenSet) Complete() bool {
	for _, t := range AllTokens {
		if _, ok := ts[t]; !ok {
			return false
		}
	}
	return len(ts) == len(AllTokens)
}

// Strings formats every token as "h s% l%".
func (ts TokenSet) Strings() map[string]string {
	out := make(map[string]string, len(ts))
	for t, c := range ts {
		out[string(t)] = c.String()
	}
	return out
}

// HexStrings formats every token as #rrggbb.
func (ts TokenSet) HexStrings() map[string]string {
	out := make(map[string]string, len(ts))
	for t, c := range ts {
		out[string(t)] = c.Hex()
	}
	return out
}

// Equal reports whether both sets render identically.
func (ts TokenSet) Equal(other TokenSet) bool {
	if len(ts) != len(other) {
		return false
	}
	for t, c := range ts {
		o, ok := other[t]
		if !ok || o.String() != c.String() {
			return false
		}
	}
	return true
}
