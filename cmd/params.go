package cmd

import (
	"fmt"
	"strings"
)

// parseParams は --param key=value の繰り返しをマップに変換する
func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid parameter format (want key=value): %s", pair)
		}
		params[key] = value
	}

	return params, nil
}
