package errx

import "net/http"

// WrapProvider maps a model provider call failure (network, auth, quota,
// timeout) to a transport-kind AppError. Auth and quota failures are not
// distinguished further here; the kind marks the whole class as the retryable
// one and the wrapped error keeps the provider detail for logs.
func WrapProvider(err error) error {
	if err == nil {
		return nil
	}
	return NewKind(err, http.StatusBadGateway, ProviderErrorMessage, KindTransport)
}
