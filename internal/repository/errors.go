package repository

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

var (
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCompanyNotFound    = errors.New("company not found")
)

// FaultError is a SOAP fault returned by a remote service.
type FaultError struct {
	Code    string `xml:"faultcode"`
	Message string `xml:"faultstring"`
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("soap fault %s: %s", e.Code, e.Message)
}

// isUnreachable reports whether err means the endpoint could not be reached at all.
func isUnreachable(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	// gout does not always keep the transport error in the chain
	msg := err.Error()
	for _, s := range []string{"connection refused", "no such host", "i/o timeout", "connection reset"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
