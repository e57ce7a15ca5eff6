package service

import (
	"fmt"

	"github.com/contractgpt/backend/model"
)

// promptTemplate mirrors the instruction sent to the completion service.
// The section list is the fixed 16-part contract skeleton.
const promptTemplate = `Generate a professional %s contract for %s from %s.
Email: %s
Contract details: %s
Additional details: %s
Roles and responsibilities: %s

Please format the contract with the following sections:
1. Parties involved
2. Effective date
3. Definitions
4. Scope of work or agreement
5. Roles and responsibilities
6. Payment terms (if applicable)
7. Duration of the agreement
8. Termination clauses
9. Confidentiality
10. Intellectual property rights
11. Liability and indemnification
12. Dispute resolution
13. Governing law
14. Amendments
15. Entire agreement
16. Signatures

Ensure the language is clear, concise, and legally sound. Format the output for easy readability and professionalism.
Do not include any information about previous users or any details not explicitly provided in the prompt.
This must be a legal contract, not a recipe or any other type of document.`

// BuildPrompt renders a validated contract request into the completion
// instruction. Pure: identical input yields byte-identical output.
func BuildPrompt(req *model.ContractRequest) string {
	return fmt.Sprintf(promptTemplate,
		req.Type,
		req.Name,
		req.Company,
		req.Email,
		req.Description,
		req.AdditionalDetails,
		req.Roles,
	)
}
