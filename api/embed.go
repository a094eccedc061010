package api

import _ "embed"

// IndexTemplate is the Swagger UI page written by `docsprep init`. It loads
// openapi.json and carries the API_URL_PLACEHOLDER token for `docsprep inject`.
//
//go:embed index.html
var IndexTemplate []byte
