package repository

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/guonaihong/gout"
	"go.uber.org/zap"
)

const envelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

type requestEnvelope struct {
	XMLName   xml.Name    `xml:"soapenv:Envelope"`
	EnvNS     string      `xml:"xmlns:soapenv,attr"`
	ServiceNS string      `xml:"xmlns:ws,attr"`
	Body      requestBody `xml:"soapenv:Body"`
}

type requestBody struct {
	Operation any
}

type responseEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Fault *FaultError `xml:"Fault"`
		Inner []byte      `xml:",innerxml"`
	} `xml:"Body"`
}

// SOAPClient posts document/literal SOAP 1.1 calls to one service endpoint.
// Request operation elements use the "ws" prefix for the service namespace.
type SOAPClient struct {
	service    string
	endpoint   string
	namespace  string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewSOAPClient(service, endpoint, namespace string, httpClient *http.Client, logger *zap.Logger) *SOAPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SOAPClient{
		service:    service,
		endpoint:   endpoint,
		namespace:  namespace,
		httpClient: httpClient,
		logger:     logger.With(zap.String("service", service)),
	}
}

// Call sends operation and decodes the response element into out.
// out may be nil for one-way operations. An empty response body leaves out untouched.
func (c *SOAPClient) Call(ctx context.Context, action string, operation any, out any) error {
	payload, err := xml.Marshal(requestEnvelope{
		EnvNS:     envelopeNamespace,
		ServiceNS: c.namespace,
		Body:      requestBody{Operation: operation},
	})
	if err != nil {
		return fmt.Errorf("%s.%s: failed to marshal request: %w", c.service, action, err)
	}

	var (
		body string
		code int
	)
	// a *dataflow.Gout carries the request being built, so each call gets its own
	err = gout.New(c.httpClient).POST(c.endpoint).
		WithContext(ctx).
		SetHeader(gout.H{
			"Content-Type": "text/xml; charset=utf-8",
			"SOAPAction":   `"` + action + `"`,
		}).
		SetBody(append([]byte(xml.Header), payload...)).
		BindBody(&body).
		Code(&code).
		Do()
	if err != nil {
		if isUnreachable(err) {
			return fmt.Errorf("%s.%s: %w: %v", c.service, action, ErrServiceUnavailable, err)
		}
		return fmt.Errorf("%s.%s: request failed: %w", c.service, action, err)
	}

	c.logger.Debug("SOAP call completed",
		zap.String("action", action),
		zap.Int("status", code))

	var env responseEnvelope
	if err := xml.Unmarshal([]byte(body), &env); err != nil {
		if code != http.StatusOK {
			return fmt.Errorf("%s.%s: unexpected status %d", c.service, action, code)
		}
		return fmt.Errorf("%s.%s: failed to unmarshal response: %w", c.service, action, err)
	}

	if env.Body.Fault != nil {
		return fmt.Errorf("%s.%s: %w", c.service, action, env.Body.Fault)
	}
	if code != http.StatusOK {
		return fmt.Errorf("%s.%s: unexpected status %d", c.service, action, code)
	}

	inner := bytes.TrimSpace(env.Body.Inner)
	if out == nil || len(inner) == 0 {
		return nil
	}
	if err := xml.Unmarshal(inner, out); err != nil {
		return fmt.Errorf("%s.%s: failed to unmarshal %T: %w", c.service, action, out, err)
	}
	return nil
}
