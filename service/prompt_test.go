package service

import (
	"strings"
	"testing"

	"github.com/contractgpt/backend/model"
)

var sectionNames = []string{
	"Parties involved",
	"Effective date",
	"Definitions",
	"Scope of work or agreement",
	"Roles and responsibilities",
	"Payment terms (if applicable)",
	"Duration of the agreement",
	"Termination clauses",
	"Confidentiality",
	"Intellectual property rights",
	"Liability and indemnification",
	"Dispute resolution",
	"Governing law",
	"Amendments",
	"Entire agreement",
	"Signatures",
}

func TestBuildPromptContainsFields(t *testing.T) {
	req := &model.ContractRequest{
		Name:        "Jane",
		Company:     "Acme",
		Email:       "jane@acme.com",
		Type:        "nda",
		Description: "mutual confidentiality for 2 years",
	}

	prompt := BuildPrompt(req)

	for _, want := range []string{"nda", "Jane", "Acme", "jane@acme.com", "mutual confidentiality for 2 years"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}

	for _, section := range sectionNames {
		if !strings.Contains(prompt, section) {
			t.Errorf("Expected prompt to contain section %q", section)
		}
	}

	if !strings.Contains(prompt, "This must be a legal contract") {
		t.Error("Expected prompt to instruct legal-contract-only output")
	}
	if !strings.Contains(prompt, "Do not include any information about previous users") {
		t.Error("Expected prompt to instruct ignoring prior context")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	req := &model.ContractRequest{
		Name:              "Jane",
		Company:           "Acme",
		Email:             "jane@acme.com",
		Type:              "consulting",
		Description:       "quarterly strategy sessions",
		AdditionalDetails: "renewable annually",
		Roles:             "consultant advises, client pays",
	}

	first := BuildPrompt(req)
	second := BuildPrompt(req)

	if first != second {
		t.Error("Expected identical requests to yield byte-identical prompts")
	}
}

func TestBuildPromptEmbedsOptionalFieldsVerbatim(t *testing.T) {
	req := &model.ContractRequest{
		Type:              "rental",
		Description:       "12-month apartment lease",
		AdditionalDetails: "pets allowed with $200 deposit",
		Roles:             "landlord maintains, tenant pays utilities",
	}

	prompt := BuildPrompt(req)

	if !strings.Contains(prompt, "pets allowed with $200 deposit") {
		t.Error("Expected additional details verbatim in prompt")
	}
	if !strings.Contains(prompt, "landlord maintains, tenant pays utilities") {
		t.Error("Expected roles verbatim in prompt")
	}
}
