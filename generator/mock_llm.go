package generator

import (
	"context"
	"strings"
)

// MockLLM 一个简单的占位实现，便于本地调试，不调用外部模型。
// Generation prompts get a bare diagram; revision prompts get an explanation
// followed by a fenced diagram.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	if strings.Contains(prompt.User, "USER REQUEST:") {
		var sb strings.Builder
		sb.WriteString("Offline response: the diagram below is unchanged.\n\n")
		sb.WriteString("```plantuml\n")
		sb.WriteString(mockDiagram)
		sb.WriteString("\n```\n")
		return sb.String(), nil
	}
	return mockDiagram, nil
}

const mockDiagram = `@startuml
class Customer {
  +name: String
  +placeOrder(): Order
}
class Order {
  +id: String
  +total(): Money
}
Customer "1" --> "*" Order
@enduml`
