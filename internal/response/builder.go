package response

import (
	"encoding/json"
)

type response struct {
	IsOk    bool        `json:"isOk"`
	Payload interface{} `json:"payload,omitempty"`
}

// Build the response envelope for payload and error.
func Build(payload interface{}, err error) ([]byte, error) {
	response := response{
		IsOk: err == nil,
	}

	if payload != nil {
		response.Payload = payload
	}

	if !response.IsOk {
		response.Payload = err.Error()
	}
	return json.Marshal(response)
}
