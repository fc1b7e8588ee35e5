package api

import (
	"fmt"

	"github.com/pulseview/cli/pkg/client"
	"github.com/pulseview/cli/pkg/logger"
)

// accountFields is the fixed user.fields expansion set requested on lookup
const accountFields = "created_at,description,profile_image_url,public_metrics"

// LookupAccount fetches an account by handle through the backend proxy
func LookupAccount(handle string) (*Account, error) {
	logger.Debug("Looking up account", "handle", handle)

	var response UserResponse

	resp, err := client.GetClient().R().
		SetQueryParam("user_fields", accountFields).
		SetResult(&response).
		Get(fmt.Sprintf("/users/by/username/%s", handle))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	// The proxy forwards upstream error payloads inside a 2xx body.
	if len(response.Errors) > 0 {
		return nil, FromUpstream(resp.StatusCode(), response.Errors)
	}

	if response.Data == nil {
		return nil, &APIError{StatusCode: 404, Detail: fmt.Sprintf("account not found: %s", handle)}
	}

	return response.Data, nil
}
