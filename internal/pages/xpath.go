package pages

import (
	"fmt"
	"strings"
)

// hasClass matches elements whose class attribute contains the exact class name
func hasClass(name string) string {
	return fmt.Sprintf("contains(concat(' ', normalize-space(@class), ' '), ' %s ')", name)
}

// xpathLiteral quotes s as an XPath 1.0 string literal. XPath has no escape
// sequences, so values holding both quote kinds are built with concat().
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	parts := strings.Split(s, "'")
	quoted := make([]string, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		if part != "" {
			quoted = append(quoted, "'"+part+"'")
		}
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}

var (
	shelfTitleXPath    = "//p[" + hasClass("shelf-item__title") + "]"
	floatCartOpenXPath = "//div[" + hasClass("float-cart--open") + "]"
	closeCartXPath     = floatCartOpenXPath + "//*[" + hasClass("float-cart__close-btn") + "]"
	bagXPath           = "//*[" + hasClass("bag") + "]"
	cartContainerXPath = "//div[" + hasClass("float-cart__shelf-container") + "]"
)

// buyButtonXPath selects the "Add to cart" button of the shelf product titled deviceName
func buyButtonXPath(deviceName string) string {
	return fmt.Sprintf("//div[%s][.//p[%s and normalize-space(.)=%s]]//*[%s]",
		hasClass("shelf-item"),
		hasClass("shelf-item__title"),
		xpathLiteral(strings.TrimSpace(deviceName)),
		hasClass("shelf-item__buy-btn"))
}

// cartDescXPath selects the description of the cart row titled deviceName.
// The description carries the "Quantity: N" text.
func cartDescXPath(deviceName string) string {
	return fmt.Sprintf("%s//div[%s][.//p[%s and normalize-space(.)=%s]]//p[%s]",
		cartContainerXPath,
		hasClass("shelf-item"),
		hasClass("title"),
		xpathLiteral(strings.TrimSpace(deviceName)),
		hasClass("desc"))
}
