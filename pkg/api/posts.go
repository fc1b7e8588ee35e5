package api

import (
	"fmt"

	"github.com/pulseview/cli/pkg/client"
	"github.com/pulseview/cli/pkg/logger"
)

// Fixed field-expansion set sent with every post listing
const (
	postFields       = "created_at,public_metrics,text,author_id"
	postExpansions   = "author_id"
	postUserFields   = "username,name,profile_image_url"
	postExcludeKinds = "replies,retweets"
)

// PostsOptions are the variable parameters of a post listing call
type PostsOptions struct {
	MaxResults      int
	PaginationToken string
}

// GetPosts lists an account's original posts, newest first
func GetPosts(accountID string, opts PostsOptions) (*PostsResponse, error) {
	logger.Debug("Fetching posts", "account_id", accountID,
		"max_results", opts.MaxResults, "cursor", opts.PaginationToken != "")

	var response PostsResponse

	request := client.GetClient().R().
		SetQueryParams(map[string]string{
			"max_results":  fmt.Sprintf("%d", opts.MaxResults),
			"exclude":      postExcludeKinds,
			"tweet_fields": postFields,
			"expansions":   postExpansions,
			"user_fields":  postUserFields,
		}).
		SetResult(&response)

	if opts.PaginationToken != "" {
		request.SetQueryParam("pagination_token", opts.PaginationToken)
	}

	resp, err := request.Get(fmt.Sprintf("/users/%s/tweets", accountID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	if len(response.Errors) > 0 {
		return nil, FromUpstream(resp.StatusCode(), response.Errors)
	}

	return &response, nil
}
