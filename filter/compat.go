package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// ConvertShorthand converts the compact field:value filter syntax into an
// expr expression. The shorthand exists for quick one-off CLI invocations:
//
//	category:"Food" AND amount:>50 AND type:expense
//
// becomes
//
//	inCategory("Food") and Amount > 50 and isExpense()
func ConvertShorthand(shorthand string) (string, error) {
	if strings.TrimSpace(shorthand) == "" {
		return "", nil
	}

	// Logical operators first
	converted := strings.ReplaceAll(shorthand, " AND ", " and ")
	converted = strings.ReplaceAll(converted, " OR ", " or ")
	converted = strings.ReplaceAll(converted, " NOT ", " not ")

	patterns := map[*regexp.Regexp]func([]string) string{
		// category:"value" or category!:"value"
		regexp.MustCompile(`category(!?):"([^"]+)"`): func(matches []string) string {
			if matches[1] == "!" {
				return fmt.Sprintf(`not inCategory("%s")`, matches[2])
			}
			return fmt.Sprintf(`inCategory("%s")`, matches[2])
		},

		// wallet:"value" or wallet!:"value"
		regexp.MustCompile(`wallet(!?):"([^"]+)"`): func(matches []string) string {
			if matches[1] == "!" {
				return fmt.Sprintf(`not inWallet("%s")`, matches[2])
			}
			return fmt.Sprintf(`inWallet("%s")`, matches[2])
		},

		// description:"text"
		regexp.MustCompile(`description:"([^"]+)"`): func(matches []string) string {
			return fmt.Sprintf(`hasText(Description, "%s")`, matches[1])
		},

		// amount:>N, amount:<=N.NN ...
		regexp.MustCompile(`amount:([><=]+)(\d+(?:\.\d+)?)`): func(matches []string) string {
			return fmt.Sprintf(`Amount %s %s`, matches[1], matches[2])
		},

		// type:expense / type:income
		regexp.MustCompile(`type:(expense|income)`): func(matches []string) string {
			if matches[1] == "expense" {
				return "isExpense()"
			}
			return "isIncome()"
		},

		// repeated:true/false
		regexp.MustCompile(`repeated:(true|false)`): func(matches []string) string {
			return fmt.Sprintf(`Repeated == %s`, matches[1])
		},

		// before:"YYYY-MM-DD"
		regexp.MustCompile(`before:"([^"]+)"`): func(matches []string) string {
			return fmt.Sprintf(`Date < parseDate("%s")`, matches[1])
		},

		// after:"YYYY-MM-DD"
		regexp.MustCompile(`after:"([^"]+)"`): func(matches []string) string {
			return fmt.Sprintf(`Date > parseDate("%s")`, matches[1])
		},
	}

	for pattern, replacer := range patterns {
		converted = pattern.ReplaceAllStringFunc(converted, func(match string) string {
			matches := pattern.FindStringSubmatch(match)
			return replacer(matches)
		})
	}

	return converted, nil
}

// IsShorthand checks if a filter uses the compact field:value syntax
func IsShorthand(filter string) bool {
	shorthandPatterns := []string{
		"category:",
		"category!:",
		"wallet:",
		"wallet!:",
		"description:",
		"amount:",
		"type:",
		"repeated:",
		"before:",
		"after:",
	}

	for _, pattern := range shorthandPatterns {
		if strings.Contains(filter, pattern) {
			return true
		}
	}

	return false
}
