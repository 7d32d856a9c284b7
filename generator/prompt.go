package generator

import (
	"fmt"
	"strings"
)

// Prompt 表示发送给 LLM 的单条 user 消息，没有 system 消息和历史。
type Prompt struct {
	User string
}

// BuildGeneratePrompt builds the prompt for a fresh diagram. templates is
// embedded verbatim as reference syntax.
func BuildGeneratePrompt(req GenerationRequest, templates string) Prompt {
	var sb strings.Builder
	sb.WriteString("\nYou are a senior software engineer specializing in UML design.\n")
	sb.WriteString(fmt.Sprintf("Generate a valid %s diagram in raw PlantUML syntax based on the following system description:\n\n", req.DiagramType))
	sb.WriteString(fmt.Sprintf("\"%s\"\n\n", req.Description))
	sb.WriteString("Instructions:\n")
	sb.WriteString("- Only return plain PlantUML code. Do not use markdown formatting or wrap the code in triple backticks.\n")
	sb.WriteString("- Start with @startuml and end with @enduml.\n")
	sb.WriteString("- Use PlantUML keywords: 'class', '<|--' for inheritance, '-->' for associations, '*' for multiplicity.\n")
	sb.WriteString("- Include relevant class attributes and method stubs when they are clearly implied.\n")
	sb.WriteString("- Follow modern PlantUML best practices.\n")
	sb.WriteString("- Use logical assumptions where necessary to fill in missing details.\n")
	sb.WriteString("- Format code cleanly with indentation and spacing.\n\n")
	sb.WriteString("Reference syntax templates:\n")
	sb.WriteString(templates)
	sb.WriteString("\n")
	return Prompt{User: sb.String()}
}

// BuildRevisionPrompt builds the dual-purpose question/change prompt.
// DiagramType is not part of the prompt; the current diagram already fixes it.
func BuildRevisionPrompt(req RevisionRequest) Prompt {
	var sb strings.Builder
	sb.WriteString("\nYou are a senior software engineer and UML assistant.\n\n")
	sb.WriteString("TASK:\n")
	sb.WriteString("- If the user is asking a question, answer it clearly based on the diagram and story.\n")
	sb.WriteString("- If the user is asking for a change, apply it to the diagram.\n")
	sb.WriteString("- In either case, explain what was done, then return a valid PlantUML diagram if updated.\n")
	sb.WriteString("\nORIGINAL SYSTEM DESCRIPTION:\n")
	sb.WriteString(fmt.Sprintf("\"%s\"\n\n", req.OriginalStory))
	sb.WriteString("CURRENT UML CODE:\n")
	sb.WriteString("@startuml\n")
	sb.WriteString(req.CurrentUML)
	sb.WriteString("\n@enduml\n\n")
	sb.WriteString("USER REQUEST:\n")
	sb.WriteString(fmt.Sprintf("\"%s\"\n\n", req.UserMessage))
	sb.WriteString("Your response must contain:\n")
	sb.WriteString("1. A brief explanation of what was changed or an answer to the question.\n")
	sb.WriteString("2. The updated UML diagram in a ```plantuml``` code block if applicable.\n")
	return Prompt{User: sb.String()}
}
