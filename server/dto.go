package server

import "plantuml_assistant/generator"

type generateReq struct {
	Description string `json:"description"`
	DiagramType string `json:"diagramType"`
}

type generateResp struct {
	UML string `json:"uml"`
}

type reviseReq struct {
	CurrentUML    string `json:"currentUml"`
	UserMessage   string `json:"userMessage"`
	DiagramType   string `json:"diagramType"`
	OriginalStory string `json:"originalStory"`
}

type reviseResp struct {
	UML         *string `json:"uml"`
	RawText     string  `json:"rawText"`
	RawTextHTML string  `json:"rawTextHtml,omitempty"`
}

type sessionCreateReq struct {
	Story       string `json:"story"`
	DiagramType string `json:"diagramType"`
}

type sessionMessageReq struct {
	Message string `json:"message"`
}

type sessionResp struct {
	SessionID   string           `json:"sessionId"`
	Story       string           `json:"story"`
	DiagramType string           `json:"diagramType"`
	UML         string           `json:"uml"`
	History     []generator.Turn `json:"history"`
	Revision    *reviseResp      `json:"revision,omitempty"`
}

type templatesResp struct {
	Types []string `json:"types"`
}
