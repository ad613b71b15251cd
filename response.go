package vkit

import "net/http"

// Response is the normalized outcome of one dispatched API call: the decoded
// JSON body and the HTTP status it arrived with. Calls that cannot reach a
// real upstream result still resolve to this shape with a synthetic body and
// status, so callers handle exactly one result type.
type Response struct {
	Body       map[string]any
	StatusCode int
}

// errorResponse builds a synthetic response in the platform's error envelope.
func errorResponse(msg string, code int) Response {
	return Response{
		Body: map[string]any{
			"response": map[string]any{"error": msg},
		},
		StatusCode: code,
	}
}

func unknownMethodResponse() Response {
	return errorResponse("unknown API method", http.StatusNotFound)
}

func invalidPayloadResponse() Response {
	return errorResponse("upstream did not return valid JSON", http.StatusBadGateway)
}
