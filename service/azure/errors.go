package azureadapter

import (
	"context"
	"errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/elC0mpa/cloud-optimizer/service/clouderr"
)

// classify translates an Azure SDK error into the common taxonomy.
func classify(operation string, err error) error {
	return clouderr.NewCallError("azure", operation, kindOf(err), err)
}

func kindOf(err error) clouderr.Kind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return clouderr.KindTimeout
	}

	var authErr *azidentity.AuthenticationFailedError
	if errors.As(err, &authErr) {
		return clouderr.KindAuth
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.StatusCode {
		case 401, 403:
			return clouderr.KindAuth
		case 429:
			return clouderr.KindRateLimited
		case 408:
			return clouderr.KindTimeout
		case 500, 502, 503, 504:
			return clouderr.KindUnavailable
		}
	}

	return clouderr.KindUnknown
}
