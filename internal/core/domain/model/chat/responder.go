package chat

import "strings"

// CannedResponder answers assistant questions by keyword lookup. It is
// deliberately deterministic so conversations stay reproducible in tests.
type CannedResponder struct {
	rules        []responderRule
	defaultReply string
}

type responderRule struct {
	keywords []string
	reply    string
}

// NewCannedResponder builds the responder with the built-in rule set.
func NewCannedResponder() *CannedResponder {
	return &CannedResponder{
		rules: []responderRule{
			{
				keywords: []string{"order", "ship", "delivery", "track"},
				reply: "I can help with orders. You can review an order's status, " +
					"items and totals from the Orders page. Pending and processing " +
					"orders can still be edited; shipped orders are on their way.",
			},
			{
				keywords: []string{"cancel"},
				reply: "Orders can be cancelled while they are pending or processing. " +
					"Once an order has been delivered it can no longer be cancelled.",
			},
			{
				keywords: []string{"refund", "return"},
				reply: "Refunds are handled by support once an order is cancelled. " +
					"Please contact support with your order number to start a return.",
			},
			{
				keywords: []string{"price", "tax", "total", "shipping fee"},
				reply: "Order totals are the item subtotal plus 9% tax and a flat " +
					"5.00 shipping fee, minus any discount applied at creation.",
			},
			{
				keywords: []string{"account", "password", "profile"},
				reply: "Account settings, including your profile and password, can be " +
					"changed from the Settings page. Administrators manage other accounts.",
			},
			{
				keywords: []string{"hello", "hi", "hey"},
				reply:    "Hello! Ask me about orders, accounts or billing and I'll point you in the right direction.",
			},
		},
		defaultReply: "I'm not sure about that. I can help with questions about " +
			"orders, accounts and billing.",
	}
}

// Reply returns the canned answer for question. Matching is
// case-insensitive; the first rule with a matching keyword wins.
func (r *CannedResponder) Reply(question string) string {
	lowered := strings.ToLower(question)
	for _, rule := range r.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.reply
			}
		}
	}
	return r.defaultReply
}
