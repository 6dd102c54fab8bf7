package catalog

import "github.com/dshills/axiom/internal/schema"

func accessibilityRules() []schema.Rule {
	return []schema.Rule{
		{
			ID:       "a11y-1",
			Category: "accessibility",
			Title:    "Focus Visible Indicators",
			Desc:     "Never remove focus outlines (outline: none) without replacing them with a visible alternative. Keyboard users depend on them.",
			Do:       "focus-visible:ring-2 ring-blue-500",
			Dont:     "outline: none with no replacement",
			Tags:     []string{"Keyboard", "WCAG"},
		},
		{
			ID:       "a11y-2",
			Category: "accessibility",
			Title:    "Color Shouldn't Be the Only Signal",
			Desc:     "Don't rely on color alone to convey meaning (red = error). Add icons, text, or patterns for colorblind users.",
			Do:       "Red text + error icon + message",
			Dont:     "Only a red border on the input",
			Tags:     []string{"Color Blind", "Inclusive Design"},
		},
		{
			ID:       "a11y-3",
			Category: "accessibility",
			Title:    "Touch Target Spacing",
			Desc:     "Adjacent touch targets need at least 8px gap between them to prevent mis-taps on mobile.",
			Do:       "Buttons with 8px+ gap between",
			Dont:     "Buttons touching edge-to-edge",
			Tags:     []string{"Mobile", "Touch"},
		},
	}
}
