package document

import (
	"fmt"
	"regexp"
	"strings"
)

var bankingTerms = []string{
	"account", "balance", "name", "address", "phone", "email", "number",
	"bank", "banking", "deposit", "withdrawal", "transfer", "payment",
	"card", "credit", "debit", "loan", "mortgage", "interest", "fee",
	"branch", "atm", "transaction", "statement", "kyc", "pan", "aadhar",
	"passport", "income", "employer", "occupation", "savings", "checking",
	"routing", "swift", "ifsc", "customer", "holder", "beneficiary",
}

var accountNumberPattern = regexp.MustCompile(`(?i)account\s*(?:number|no\.?|#)?\s*:?\s*([0-9-]{8,20})`)

// IsBankingQuery reports whether the query mentions any banking term.
func IsBankingQuery(query string) bool {
	lowered := strings.ToLower(query)
	for _, term := range bankingTerms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

// Query answers a question against the extracted document text. It returns
// the answer and a confidence score.
func Query(query, content, filename string) (string, float64) {
	if content == "" {
		return "No document content available to search.", 0.0
	}
	if !IsBankingQuery(query) {
		return "I'm a banking assistant and can only help with banking-related questions about your uploaded document.", 0.1
	}

	if strings.Contains(strings.ToLower(query), "account") {
		if match := accountNumberPattern.FindStringSubmatch(content); match != nil {
			return fmt.Sprintf("Based on your uploaded document (%s), your account number is: %s", filename, match[1]), 0.95
		}
	}

	return fmt.Sprintf("I couldn't find specific information about '%s' in your uploaded document (%s).", query, filename), 0.3
}
