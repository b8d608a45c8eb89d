package gcpadapter

import (
	"context"
	"errors"
	"strings"

	"github.com/elC0mpa/cloud-optimizer/service/clouderr"
	"google.golang.org/api/googleapi"
)

// classify translates a Google API error into the common taxonomy.
func classify(operation string, err error) error {
	return clouderr.NewCallError("gcp", operation, kindOf(err), err)
}

func kindOf(err error) clouderr.Kind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return clouderr.KindTimeout
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return clouderr.KindAuth
		case 429:
			return clouderr.KindRateLimited
		case 408:
			return clouderr.KindTimeout
		case 500, 502, 503, 504:
			return clouderr.KindUnavailable
		}
		return clouderr.KindUnknown
	}

	// Token exchange failures surface as oauth2 retrieve errors, not
	// googleapi errors.
	if strings.Contains(err.Error(), "oauth2") || strings.Contains(err.Error(), "invalid_grant") {
		return clouderr.KindAuth
	}

	return clouderr.KindUnknown
}
