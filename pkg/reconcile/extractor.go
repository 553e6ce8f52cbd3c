package reconcile

import (
	"regexp"
	"strconv"
	"strings"

	"echomart-be/pkg/store"
)

// The voice agent announces cart activity in a handful of fixed phrasings.
// Each extractor matches exactly one template family against a single
// message and returns either a fully-populated record or nothing. No
// partial matches, no guessed defaults. First match wins; there is no
// scoring between templates.
//
// Known templates:
//
//	"You want 1 Black Logo Hoodie in size L. That will be 1499 rupees"
//	"I've added Black Logo Hoodie to your cart for 1499 rupees"
//	"1 x Black Logo Hoodie (size M): INR 1499"
var (
	// "you want <qty> <name> in size <size> ... <price> rupees"
	pendingItemPattern = regexp.MustCompile(`(?i)you\s+want\s+(\d+)\s+(.+?)\s+in\s+size\s+\w+.*?(\d+)\s+rupees`)

	// "added <name> to your cart for <price> rupees"
	addedToCartPattern = regexp.MustCompile(`(?i)added\s+(.+?)\s+to\s+your\s+cart\s+for\s+(\d+)\s+rupees`)

	// "<qty> x <name> (size <size>)?: (INR|₹) <lineTotal>", receipt style,
	// may repeat several times in one message.
	receiptLinePattern = regexp.MustCompile(`(?i)(\d+)\s+x\s+([^(]+?)(?:\s+\(size\s+\w+\))?:\s+(?:INR|₹)\s+(\d+(?:\.\d+)?)`)

	orderCodePattern  = regexp.MustCompile(`ORD-[\w-]+`)
	orderTotalPattern = regexp.MustCompile(`(?i)total[:\s]+(?:inr\s+|rupees\s+)?(\d+(?:\.\d+)?)`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeLineID derives the cart join key from a spoken product name:
// lowercased, whitespace runs collapsed to underscores.
func NormalizeLineID(name string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(name), "_")
}

// ExtractPendingItem parses the pre-add confirmation template
// ("You want 1 Black Logo Hoodie in size L. That will be 1499 rupees").
func ExtractPendingItem(text string) (store.CartLine, bool) {
	m := pendingItemPattern.FindStringSubmatch(text)
	if m == nil {
		return store.CartLine{}, false
	}

	// The captures are digit-only by construction, so these cannot fail.
	qty, _ := strconv.Atoi(m[1])
	name := strings.TrimSpace(m[2])
	price, _ := strconv.ParseFloat(m[3], 64)

	return store.CartLine{
		ID:        NormalizeLineID(name),
		Name:      name,
		Quantity:  qty,
		UnitPrice: price,
	}, true
}

// ExtractAddedItems parses an add-confirmation message. Two templates are
// tried in order: the direct "added <name> to your cart for <price> rupees"
// form (quantity defaults to 1), then the pending-item form, which covers
// agents that confirm and add in a single utterance. Returns at most one
// line; an empty slice means no match.
func ExtractAddedItems(text string) []store.CartLine {
	if m := addedToCartPattern.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		price, _ := strconv.ParseFloat(m[2], 64)
		return []store.CartLine{{
			ID:        NormalizeLineID(name),
			Name:      name,
			Quantity:  1,
			UnitPrice: price,
		}}
	}

	if line, ok := ExtractPendingItem(text); ok {
		return []store.CartLine{line}
	}

	return nil
}

// ExtractOrderLines scans a whole message for receipt-style lines
// ("1 x Black Logo Hoodie (size M): INR 1499"). Unit price is derived as
// lineTotal / quantity.
func ExtractOrderLines(text string) []store.CartLine {
	var lines []store.CartLine
	for _, m := range receiptLinePattern.FindAllStringSubmatch(text, -1) {
		qty, _ := strconv.Atoi(m[1])
		name := strings.TrimSpace(m[2])
		lineTotal, _ := strconv.ParseFloat(m[3], 64)
		lines = append(lines, store.CartLine{
			ID:        NormalizeLineID(name),
			Name:      name,
			Quantity:  qty,
			UnitPrice: lineTotal / float64(qty),
		})
	}
	return lines
}

// ExtractOrderCode returns the ORD-… token from a finalization message,
// or "" when the agent did not speak one.
func ExtractOrderCode(text string) string {
	return orderCodePattern.FindString(text)
}

// ExtractOrderTotal returns the spoken order total ("total: 1499",
// "total INR 1499"), or 0 when absent.
func ExtractOrderTotal(text string) float64 {
	m := orderTotalPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	total, _ := strconv.ParseFloat(m[1], 64)
	return total
}
