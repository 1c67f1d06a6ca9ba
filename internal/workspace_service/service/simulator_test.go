package service

import (
	"strings"
	"testing"
)

func TestBuildAiReply_ChatGptApiKeyError(t *testing.T) {
	reply := BuildAiReply("chatgpt", "I have an API key error")

	if !reply.HasCode {
		t.Error("Expected a code sample for an API key question")
	}
	if !strings.Contains(reply.Code, "process.env.API_KEY") {
		t.Errorf("Expected code to use process.env.API_KEY, got %q", reply.Code)
	}
	if reply.CodeLanguage != "javascript" {
		t.Errorf("Expected javascript code language, got %q", reply.CodeLanguage)
	}
}

func TestBuildAiReply_MatchingIsCaseInsensitive(t *testing.T) {
	for _, message := range []string{"SOMETHING THREW AN ERROR", "my Api Key is rejected"} {
		reply := BuildAiReply("chatgpt", message)
		if !reply.HasCode {
			t.Errorf("Expected %q to match the API key advice", message)
		}
	}
}

func TestBuildAiReply_ChatGptGeneric(t *testing.T) {
	reply := BuildAiReply("chatgpt", "how do I write a loop?")

	if reply.HasCode {
		t.Error("Expected no code sample for a generic question")
	}
	if reply.Content == "" {
		t.Error("Expected a non-empty generic reply")
	}
}

func TestBuildAiReply_Claude(t *testing.T) {
	reply := BuildAiReply("claude", "I have an API key error")

	if reply.HasCode {
		t.Error("Claude replies never carry code")
	}
	if !strings.Contains(reply.Content, "architectural perspective") {
		t.Errorf("Expected an architecture-angle reply, got %q", reply.Content)
	}
}

func TestConsoleScript_MatchesReferenceScenario(t *testing.T) {
	if len(consoleScript) != 5 {
		t.Fatalf("Expected 5 staged console events, got %d", len(consoleScript))
	}
	if consoleScript[0].Type != "log" || consoleScript[0].Message != "Application started" {
		t.Errorf("Unexpected first console event: %+v", consoleScript[0])
	}
	for _, event := range consoleScript[2:] {
		if event.Type != "error" {
			t.Errorf("Expected an error event, got %+v", event)
		}
	}

	explanation, ok := errorExplanations[runCodeExplanationKey]
	if !ok {
		t.Fatal("Missing explanation for the run_code scenario")
	}
	if explanation.Error != "API key is not valid" {
		t.Errorf("Unexpected explanation error: %q", explanation.Error)
	}
	if len(explanation.Solutions) != 3 {
		t.Errorf("Expected 3 solutions, got %d", len(explanation.Solutions))
	}
}
