package service

import (
	"strings"

	"github.com/contractgpt/backend/model"
)

// Validator checks generation input and classifies generated output against a
// configurable list of disallowed substrings.
type Validator struct {
	denylist []string
}

func NewValidator(denylist []string) *Validator {
	lowered := make([]string, len(denylist))
	for i, term := range denylist {
		lowered[i] = strings.ToLower(term)
	}
	return &Validator{denylist: lowered}
}

// ValidateRequest checks a contract request before any completion call.
// Rules are applied in order: required fields first, then the topic denylist.
func (v *Validator) ValidateRequest(req *model.ContractRequest) error {
	if req.Type == "" || req.Description == "" {
		return model.ErrMissingField
	}
	if v.hits(req.Description) {
		return model.ErrDisallowedTopic
	}
	return nil
}

// ClassifyOutput checks finished completion text against the same denylist.
// Text that trips the filter must not be shown to the user or persisted.
func (v *Validator) ClassifyOutput(text string) error {
	if v.hits(text) {
		return model.ErrInvalidOutputTopic
	}
	return nil
}

func (v *Validator) hits(text string) bool {
	lowered := strings.ToLower(text)
	for _, term := range v.denylist {
		if term != "" && strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
