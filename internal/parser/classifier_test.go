package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	testBankCodes = []string{"HDFCBK", "HDFC", "AXISBK", "AXIS", "ICICI", "SBI", "SBIN", "PNB", "KOTAK"}
	testKeywords  = []string{"debited", "credited", "withdrawn", "purchase", "transaction of", "available balance", "avl bal"}
)

func TestClassifier_IsBankSMS(t *testing.T) {
	c := NewClassifier(testBankCodes, testKeywords)

	tests := []struct {
		name   string
		sender string
		body   string
		want   bool
	}{
		{name: "known sender regardless of body", sender: "HDFCBK", body: "anything at all", want: true},
		{name: "known sender embedded in address", sender: "VM-ICICIB", body: "hello", want: true},
		{name: "sender case insensitive", sender: "hdfcbk", body: "hi", want: true},
		{name: "unknown sender plain body", sender: "RANDOM", body: "hello", want: false},
		{name: "unknown sender financial body", sender: "RANDOM", body: "Your account has been debited", want: true},
		{name: "keyword case insensitive", sender: "RANDOM", body: "AVL BAL: Rs.1000", want: true},
		{name: "transaction of phrase", sender: "SHOP", body: "transaction of 300 at store", want: true},
		{name: "friend message", sender: "FRIEND", body: "See you at 6pm", want: false},
		{name: "empty everything", sender: "", body: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsBankSMS(tt.sender, tt.body))
		})
	}
}

func TestNewClassifier_TrimsAndDropsEmptyEntries(t *testing.T) {
	c := NewClassifier([]string{" HDFCBK ", ""}, []string{" debited ", ""})
	assert.True(t, c.IsBankSMS("HDFCBK", ""))
	assert.True(t, c.IsBankSMS("X", "amount debited today"))
	assert.False(t, c.IsBankSMS("X", "plain text"))
}
