package cli

import (
	"fmt"
	"strings"
)

const (
	FormsKind = "forms"
	FSOKind   = "fso"
)

// parseAndValidateKindId splits TYPE or TYPE/ID into its parts.
func parseAndValidateKindId(arg string) (string, string, error) {
	kind := arg
	id := ""
	if slash := strings.Index(arg, "/"); slash >= 0 {
		kind = arg[:slash]
		id = arg[slash+1:]
		if id == "" {
			return "", "", fmt.Errorf("missing id in %q", arg)
		}
	}
	switch kind {
	case FormsKind, FSOKind:
		return kind, id, nil
	default:
		return "", "", fmt.Errorf("unsupported resource kind: %s", kind)
	}
}
