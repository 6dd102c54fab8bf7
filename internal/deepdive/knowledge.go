package deepdive

// Knowledge is the category-level material merged into every deep dive.
type Knowledge struct {
	Impact         string
	FailureMode    string
	Implementation []string
	ReviewPrompts  []string
}

// KnowledgeFor returns the knowledge entry for a category id. Categories
// without a dedicated entry get the default one, so the lookup never fails.
// Every call returns freshly allocated slices.
func KnowledgeFor(categoryID string) Knowledge {
	switch categoryID {
	case "typography":
		return typography()
	case "layout":
		return layout()
	case "color":
		return color()
	case "components":
		return components()
	case "forms":
		return forms()
	case "system":
		return system()
	case "accessibility":
		return accessibility()
	default:
		return defaultKnowledge()
	}
}

func defaultKnowledge() Knowledge {
	return Knowledge{
		Impact:      "It keeps the interface easier to scan and lowers decision fatigue, especially for first-time users.",
		FailureMode: "The surface starts to feel inconsistent, and users need more effort to parse what matters.",
		Implementation: []string{
			"Codify the decision into reusable components or tokens instead of one-off fixes.",
			"Run a quick responsive check so the pattern remains clear on compact screens.",
		},
		ReviewPrompts: []string{
			"Can a new user understand the intent in under two seconds?",
			"Does the pattern remain consistent across other similar screens?",
			"Is the most important action or information still visually dominant?",
		},
	}
}

func typography() Knowledge {
	return Knowledge{
		Impact:      "Stronger typography improves reading rhythm and comprehension speed while reducing visual noise.",
		FailureMode: "Inconsistent type scales and casing make copy harder to scan and weaken hierarchy.",
		Implementation: []string{
			"Use one body style and one heading style as the default baseline for this pattern.",
			"Verify line-height and tracking in real content, not lorem ipsum.",
		},
		ReviewPrompts: []string{
			"Can this text be scanned quickly without rereading?",
			"Are case, weight, and spacing consistent with nearby components?",
			"Does secondary copy de-emphasize through color before size?",
		},
	}
}

func layout() Knowledge {
	return Knowledge{
		Impact:      "Clear spatial rhythm helps users find relationships between elements without extra labels or borders.",
		FailureMode: "Random spacing breaks grouping cues and makes interfaces feel accidental.",
		Implementation: []string{
			"Anchor spacing to a single grid scale and avoid one-off values.",
			"Check proximity: related elements should be closer than unrelated ones.",
		},
		ReviewPrompts: []string{
			"Do grouping and spacing explain structure without additional text?",
			"Are gutters and section spacing consistent across the view?",
			"Does alignment still look right when content length changes?",
		},
	}
}

func color() Knowledge {
	return Knowledge{
		Impact:      "Intentional color usage improves focus, preserves semantic meaning, and builds visual depth.",
		FailureMode: "Over-saturated or misused colors compete for attention and obscure status meaning.",
		Implementation: []string{
			"Reserve semantic colors for status states, not decoration.",
			"Use neutral structure first, then add accent color only where action is needed.",
		},
		ReviewPrompts: []string{
			"Is accent color limited to high-value interactions?",
			"Do hover and active states stay within the same hue family?",
			"Are borders and text contrast balanced without becoming heavy?",
		},
	}
}

func components() Knowledge {
	return Knowledge{
		Impact:      "Predictable component behavior reduces hesitation and keeps interaction models learnable.",
		FailureMode: "Mixed interaction patterns force users to relearn common actions on every screen.",
		Implementation: []string{
			"Define one primary action and downgrade secondary actions appropriately.",
			"Align control type with intent (modal vs drawer, switch vs checkbox, etc.).",
		},
		ReviewPrompts: []string{
			"Is there a single obvious primary action?",
			"Does each control match the user's mental model for that task?",
			"Could this action be misfired or misunderstood without extra context?",
		},
	}
}

func forms() Knowledge {
	return Knowledge{
		Impact:      "Better form patterns reduce input friction and improve completion rates.",
		FailureMode: "Hidden requirements and ambiguous controls create errors and abandonment.",
		Implementation: []string{
			"Expose label, format hints, and validation timing close to each field.",
			"Use control types that match selection logic (one vs many, immediate vs deferred).",
		},
		ReviewPrompts: []string{
			"Can users identify what each field expects before typing?",
			"Do validation messages appear at the right time and location?",
			"Are mobile interactions and hit targets comfortable?",
		},
	}
}

func system() Knowledge {
	return Knowledge{
		Impact:      "Strong system feedback builds trust by making app state and progress predictable.",
		FailureMode: "Missing or vague feedback leaves users unsure what happened or what to do next.",
		Implementation: []string{
			"Pair every long-running or risky action with visible state feedback.",
			"Use recovery affordances where mistakes are likely (undo, confirmations, clear next steps).",
		},
		ReviewPrompts: []string{
			"Does the interface explain current status without relying on assumptions?",
			"Is there a clear recovery path when an action fails?",
			"Would this flow feel safe for irreversible actions?",
		},
	}
}

func accessibility() Knowledge {
	return Knowledge{
		Impact:      "Accessible design widens your audience and ensures no user is blocked by physical, cognitive, or situational limitations.",
		FailureMode: "Inaccessible interfaces exclude users, invite legal risk, and signal that inclusivity is an afterthought.",
		Implementation: []string{
			"Test every interactive element with keyboard-only navigation before shipping.",
			"Run automated contrast checks and screen-reader audits as part of the design review.",
		},
		ReviewPrompts: []string{
			"Can a keyboard-only user complete this flow without a mouse?",
			"Does meaning survive when color is removed (greyscale test)?",
			"Are touch targets large enough and spaced well for motor-impaired users?",
		},
	}
}
