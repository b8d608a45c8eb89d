package awsadapter

import (
	"context"
	"errors"
	"strings"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	"github.com/elC0mpa/cloud-optimizer/service/clouderr"
)

// classify translates an AWS SDK error into the common taxonomy.
func classify(operation string, err error) error {
	return clouderr.NewCallError("aws", operation, kindOf(err), err)
}

func kindOf(err error) clouderr.Kind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return clouderr.KindTimeout
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch {
		case code == "UnauthorizedOperation",
			code == "AuthFailure",
			code == "InvalidClientTokenId",
			code == "SignatureDoesNotMatch",
			code == "ExpiredToken",
			strings.HasPrefix(code, "AccessDenied"):
			return clouderr.KindAuth
		case code == "Throttling",
			code == "ThrottlingException",
			code == "RequestLimitExceeded",
			code == "TooManyRequestsException",
			code == "SlowDown":
			return clouderr.KindRateLimited
		case code == "RequestTimeout", code == "RequestTimeoutException":
			return clouderr.KindTimeout
		case code == "ServiceUnavailable",
			code == "ServiceUnavailableException",
			code == "InternalError",
			code == "InternalServiceError":
			return clouderr.KindUnavailable
		}
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.HTTPStatusCode() {
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

// isEncryptionNotFound detects the sentinel S3 returns for buckets without
// server-side encryption configuration.
func isEncryptionNotFound(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) &&
		apiErr.ErrorCode() == "ServerSideEncryptionConfigurationNotFoundError"
}
