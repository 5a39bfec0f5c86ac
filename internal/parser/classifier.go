package parser

import "strings"

// Classifier decides whether a message is a financial notification. Both the
// bank-code allowlist and the keyword set come from configuration so
// deployments can extend supported banks and languages without a code change.
type Classifier struct {
	bankCodes []string // matched against the sender address, uppercased
	keywords  []string // matched against the message body, lowercased
}

// NewClassifier builds a Classifier from the configured bank codes and
// financial keywords.
func NewClassifier(bankCodes, keywords []string) *Classifier {
	c := &Classifier{}
	for _, code := range bankCodes {
		if code = strings.TrimSpace(code); code != "" {
			c.bankCodes = append(c.bankCodes, strings.ToUpper(code))
		}
	}
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			c.keywords = append(c.keywords, strings.ToLower(kw))
		}
	}
	return c
}

// IsBankSMS reports whether the message looks like a bank transaction
// notification: either the sender contains a known bank code, or the body
// contains one of the financial keywords. It is total; absence of evidence
// yields false.
func (c *Classifier) IsBankSMS(sender, body string) bool {
	upperSender := strings.ToUpper(sender)
	for _, code := range c.bankCodes {
		if strings.Contains(upperSender, code) {
			return true
		}
	}

	lowerBody := strings.ToLower(body)
	for _, kw := range c.keywords {
		if strings.Contains(lowerBody, kw) {
			return true
		}
	}
	return false
}
