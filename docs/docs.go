// Package docs embeds the API contract served at /api/docs/openapi.yaml.
package docs

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
