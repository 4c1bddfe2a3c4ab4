package design

import (
	"errors"
	"io"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// AuditCSS lexes a stylesheet and returns the custom properties it declares,
// in declaration order. A lex error means the emitter produced something the
// renderer could not consume.
func AuditCSS(cssText string) ([]string, error) {
	input := parse.NewInputString(cssText)
	parser := css.NewParser(input, false)

	var props []string
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return props, err
			}
			return props, nil
		case css.CustomPropertyGrammar:
			props = append(props, string(data))
		}
	}
}

// MissingProperties reports which required custom properties a stylesheet
// fails to declare.
func MissingProperties(cssText string) ([]string, error) {
	declared, err := AuditCSS(cssText)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(declared))
	for _, name := range declared {
		seen[name] = true
	}
	var missing []string
	for _, want := range RequiredProperties {
		if !seen[want] {
			missing = append(missing, want)
		}
	}
	return missing, nil
}
