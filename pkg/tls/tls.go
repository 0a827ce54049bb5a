package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/spiffe/go-spiffe/v2/spiffetls/tlsconfig"
	"github.com/spiffe/go-spiffe/v2/workloadapi"
	"go.uber.org/zap"
)

type TLSConfig struct {
	Enabled    bool   `envconfig:"TLS_ENABLED" default:"false"`
	SocketPath string `envconfig:"SPIRE_SOCKET_PATH" default:"unix:///run/spire/sockets/agent.sock"`
}

// Source hands out SPIFFE mTLS configs for the HTTP server and for the
// clients of the remote web services. A nil Source means TLS is disabled.
type Source struct {
	x509   *workloadapi.X509Source
	logger *zap.Logger
}

func NewSource(ctx context.Context, cfg *TLSConfig, logger *zap.Logger) (*Source, error) {
	if !cfg.Enabled {
		logger.Info("TLS is disabled")
		return nil, nil
	}

	source, err := workloadapi.NewX509Source(
		ctx,
		workloadapi.WithClientOptions(
			workloadapi.WithAddr(cfg.SocketPath),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create X509Source: %w", err)
	}

	logger.Info("SPIRE TLS configuration loaded",
		zap.String("socket_path", cfg.SocketPath),
		zap.Bool("mtls_enabled", true))

	return &Source{x509: source, logger: logger}, nil
}

func (s *Source) ServerConfig() *tls.Config {
	if s == nil {
		return nil
	}
	c := tlsconfig.MTLSServerConfig(s.x509, s.x509, tlsconfig.AuthorizeAny())
	c.MinVersion = tls.VersionTLS12
	return c
}

// HTTPClient returns the client used for the web service calls.
func (s *Source) HTTPClient() *http.Client {
	if s == nil {
		return &http.Client{}
	}
	c := tlsconfig.MTLSClientConfig(s.x509, s.x509, tlsconfig.AuthorizeAny())
	c.MinVersion = tls.VersionTLS12
	return &http.Client{
		Transport: &http.Transport{TLSClientConfig: c},
	}
}

// Watch logs the SVID status until ctx is done. SPIRE rotates certificates itself.
func (s *Source) Watch(ctx context.Context, interval time.Duration) {
	if s == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svid, err := s.x509.GetX509SVID()
			if err != nil {
				s.logger.Error("Failed to get X509 SVID", zap.Error(err))
				continue
			}
			s.logger.Info("Certificate status",
				zap.String("spiffe_id", svid.ID.String()),
				zap.Time("expiry", svid.Certificates[0].NotAfter),
				zap.Duration("ttl", time.Until(svid.Certificates[0].NotAfter)))
		}
	}
}

func (s *Source) Close() error {
	if s == nil {
		return nil
	}
	return s.x509.Close()
}
