package api

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// responseHeaders is attached to every response, success or error. The
// permissive CORS policy is unconditional.
var responseHeaders = map[string]string{
	"Content-Type":                "application/json",
	"Access-Control-Allow-Origin": "*",
}

// envelope is the body shape shared by all responses.
type envelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *batchReceipt `json:"data,omitempty"`
}

// batchReceipt echoes the stored batch coordinates back to the caller.
type batchReceipt struct {
	Date      string `json:"date"`
	TaskCount int    `json:"taskCount"`
	Timestamp string `json:"timestamp"`
}

func successEnvelope(message string, receipt batchReceipt) envelope {
	return envelope{Success: true, Message: message, Data: &receipt}
}

func errorEnvelope(message string) envelope {
	return envelope{Success: false, Message: message}
}

// gatewayResponse serialises an envelope into a gateway proxy response.
// The status code travels as a transport field, never in the body.
func gatewayResponse(status int, env envelope) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    responseHeaders,
			Body:       `{"success":false,"message":"Internal server error: response encoding failed"}`,
		}, nil
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    responseHeaders,
		Body:       string(body),
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	for key, value := range responseHeaders {
		w.Header().Set(key, value)
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
