// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"fmt"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// Path expands {name} placeholders in template with escaped path parameters.
// Parameters are given as name, value pairs.
func Path(template string, params ...string) (string, error) {
	if len(params)%2 != 0 {
		return "", fmt.Errorf("odd number of path parameters for %s", template)
	}

	path := template
	for i := 0; i < len(params); i += 2 {
		name, value := params[i], params[i+1]
		if value == "" {
			return "", fmt.Errorf("empty path parameter %s", name)
		}

		encoded, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
		if err != nil {
			return "", fmt.Errorf("invalid path parameter %s: %w", name, err)
		}

		placeholder := "{" + name + "}"
		if !strings.Contains(path, placeholder) {
			return "", fmt.Errorf("unknown path parameter %s for %s", name, template)
		}
		path = strings.ReplaceAll(path, placeholder, encoded)
	}

	if strings.ContainsAny(path, "{}") {
		return "", fmt.Errorf("unresolved path parameters in %s", path)
	}
	return path, nil
}
