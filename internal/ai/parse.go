package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parsePlanJSON extracts and parses a JSON object from a response that may contain surrounding text
func parsePlanJSON(response string) (*Plan, error) {
	// First try direct parsing
	var plan Plan
	if err := json.Unmarshal([]byte(response), &plan); err == nil {
		return &plan, nil
	}

	// Find JSON object in response (look for { ... }), skipping braces inside strings
	start := strings.Index(response, "{")
	if start == -1 {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	end := -1
	inString := false
	escaped := false
	for i := start; i < len(response) && end == -1; i++ {
		c := response[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i + 1
			}
		}
	}

	if end == -1 {
		return nil, fmt.Errorf("no matching closing brace found")
	}

	if err := json.Unmarshal([]byte(response[start:end]), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse extracted JSON: %w", err)
	}

	return &plan, nil
}

// decode turns raw model text into a completion or a classified error
func decode(provider, text string, tokens int) (*Completion, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &Error{Provider: provider, Kind: KindEmptyResponse, Err: fmt.Errorf("empty response from %s", provider)}
	}
	plan, err := parsePlanJSON(text)
	if err != nil {
		return nil, &Error{Provider: provider, Kind: KindMalformedJSON, Err: err}
	}
	if plan.Sections == nil {
		return nil, &Error{Provider: provider, Kind: KindMalformedJSON, Err: fmt.Errorf("response has no sections array")}
	}
	return &Completion{Plan: plan, TokensUsed: tokens, Raw: text}, nil
}
