package generator

import (
	"regexp"
	"strings"
)

const (
	startMarker = "@startuml"
	endMarker   = "@enduml"

	// NoExplanation replaces an empty revision explanation.
	NoExplanation = "No explanation provided."
)

var (
	anyFenceRe   = regexp.MustCompile("(?i)```(?:plantuml)?\\s*([\\s\\S]*?)\\s*```")
	plantFenceRe = regexp.MustCompile("(?i)```plantuml([\\s\\S]*?)```")
	boundaryRe   = regexp.MustCompile(`(?i)@startuml([\s\S]*?)@enduml`)

	stripPlantFenceRe = regexp.MustCompile("(?i)```plantuml[\\s\\S]*?```")
	stripAnyFenceRe   = regexp.MustCompile("(?i)```[\\s\\S]*?```")

	// a fence left after the paired passes is unterminated; it runs to the end
	openFenceRe = regexp.MustCompile("```[\\s\\S]*$")
)

// ExtractGeneratedUML recovers diagram source from a generation reply. A fenced
// block wins over the raw text; missing @startuml/@enduml markers are added.
func ExtractGeneratedUML(raw string) string {
	text := raw
	if m := anyFenceRe.FindStringSubmatch(raw); len(m) == 2 && m[1] != "" {
		text = strings.TrimSpace(m[1])
	}

	if !strings.Contains(text, startMarker) {
		text = startMarker + "\n" + text
	}
	if !strings.Contains(text, endMarker) {
		text = text + "\n" + endMarker
	}
	return strings.TrimSpace(text)
}

// ValidateGeneratedUML rejects output without any class definition, which
// means the model ignored the instructions.
func ValidateGeneratedUML(uml string) error {
	if !strings.Contains(uml, "class") {
		return ErrNoClassDefinitions
	}
	return nil
}

// ExtractRevisedUML returns the diagram from a revision reply, or nil when the
// reply carries none. A ```plantuml fence is preferred; otherwise a bare
// @startuml...@enduml span is re-wrapped in fresh markers.
func ExtractRevisedUML(raw string) *string {
	if m := plantFenceRe.FindStringSubmatch(raw); len(m) == 2 && m[1] != "" {
		uml := strings.TrimSpace(m[1])
		return &uml
	}

	if m := boundaryRe.FindStringSubmatch(raw); len(m) == 2 {
		uml := startMarker + "\n" + strings.TrimSpace(m[1]) + "\n" + endMarker
		return &uml
	}

	return nil
}

// ExtractExplanation strips every fenced block from a revision reply and
// returns the remaining prose. An unterminated fence (a stray marker or a
// truncated reply) is dropped along with everything after it, so the result
// never contains ```.
func ExtractExplanation(raw string) string {
	text := stripPlantFenceRe.ReplaceAllString(raw, "")
	text = stripAnyFenceRe.ReplaceAllString(text, "")
	text = openFenceRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	if text == "" {
		return NoExplanation
	}
	return text
}

// ParseRevision combines ExtractRevisedUML and ExtractExplanation.
func ParseRevision(raw string) Revision {
	return Revision{
		UML:     ExtractRevisedUML(raw),
		RawText: ExtractExplanation(raw),
	}
}
