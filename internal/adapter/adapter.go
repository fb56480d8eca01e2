package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-tin-keeper/internal/config"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
)

// NewServerAdapter returns the implementation selected by cfg.Protocol.
func NewServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	switch cfg.Protocol {
	case config.ProtocolHTTP, "":
		return NewHTTPServerAdapter(cfg, logger)
	case config.ProtocolGRPC:
		return NewGRPCServerAdapter(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, cfg.Protocol)
	}
}
