package catalog

import "github.com/dshills/axiom/internal/schema"

func typographyRules() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "typo-1",
			Category: "typography",
			Title:    "Sentence Case Is King",
			Desc:     "Never use Title Case for buttons, labels, or headers. It slows down reading speed by disrupting word shapes.",
			Do:       "Create new account",
			Dont:     "Create New Account",
			Tags:     []string{"Buttons", "Headers"},
		},
		{
			ID:       "typo-2",
			Category: "typography",
			Title:    "Letter Spacing on Caps",
			Desc:     "If text is uppercase, always add letter-spacing (tracking) to improve legibility. Uppercase letters have no natural rhythm.",
			Do:       "tracking-wider (0.05em)",
			Dont:     "tracking-normal (0em)",
			Tags:     []string{"Labels", "Navigation"},
		},
		{
			ID:       "typo-3",
			Category: "typography",
			Title:    "Line Height Math (Body)",
			Desc:     "For body text, line-height should be ~1.5x the font size for readability.",
			Do:       "Size: 16px / Line-height: 24px",
			Dont:     "Size: 16px / Line-height: 18px",
			Tags:     []string{"Paragraphs"},
		},
		{
			ID:       "typo-4",
			Category: "typography",
			Title:    "Line Height Math (Headings)",
			Desc:     "As text gets bigger, line-height gets tighter. Headings should be ~1.1x or 1.2x.",
			Do:       "Size: 32px / Line-height: 38px",
			Dont:     "Size: 32px / Line-height: 48px",
			Tags:     []string{"H1", "H2"},
		},
		{
			ID:       "typo-5",
			Category: "typography",
			Title:    "The 2-Font Limit",
			Desc:     "You rarely need more than 1 typeface. If you must pair, use 1 Serif (Headings) + 1 Sans (Body). Never 2 Sans-serifs.",
			Do:       "Inter (Everything)",
			Dont:     "Roboto + Open Sans",
			Tags:     []string{"System"},
		},
		{
			ID:       "typo-6",
			Category: "typography",
			Title:    "De-emphasize with Color, not Size",
			Desc:     "To make secondary text less important, lighten the color (neutral-500) rather than shrinking the size below 12px.",
			Do:       "Text-neutral-500 (14px)",
			Dont:     "Text-black (10px)",
			Tags:     []string{"Refactoring UI", "Hierarchy"},
		},
		{
			ID:       "typo-7",
			Category: "typography",
			Title:    "Numeric Alignment",
			Desc:     "Use tabular nums (monospaced numbers) or right-align numbers in tables so decimals align.",
			Do:       "font-variant-numeric: tabular-nums",
			Dont:     "Standard proportional sans",
			Tags:     []string{"Tables", "Data"},
		},
		{
			ID:       "typo-8",
			Category: "typography",
			Title:    "Left Align Body Copy",
			Desc:     "Center-aligned paragraphs slow scanning. Reserve center alignment for short headlines only.",
			Do:       "Left-aligned paragraph text",
			Dont:     "Centered multi-line paragraph",
			Tags:     []string{"Readability", "Alignment"},
		},
		{
			ID:       "typo-9",
			Category: "typography",
			Title:    "Limit Font Weights",
			Desc:     "Use at most two weights per typeface (Regular + Semibold). Too many weights weaken hierarchy.",
			Do:       "Regular + Semibold",
			Dont:     "Light + Regular + Medium + Semibold + Bold",
			Tags:     []string{"Hierarchy", "Consistency"},
		},
	}
}

// typographyAdditions are the rules added to the category after its first release.
func typographyAdditions() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "typo-10",
			Category: "typography",
			Title:    "Truncation Strategy",
			Desc:     "Long text needs a plan: truncate with ellipsis, wrap, or fade. Never let text overflow or break layout.",
			Do:       "text-ellipsis overflow-hidden",
			Dont:     "Overflowing text breaking the layout",
			Tags:     []string{"Overflow", "Responsive"},
		},
		{
			ID:       "typo-11",
			Category: "typography",
			Title:    "Minimum Body Size",
			Desc:     "Body text should never be smaller than 14px on mobile / 12px on desktop. Subtext can go to 12px but never below.",
			Do:       "Body: 16px / Subtext: 12px",
			Dont:     "Body: 11px / Subtext: 9px",
			Tags:     []string{"Readability", "Mobile"},
		},
	}
}
