package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MKhiriev/go-tin-keeper/internal/config"
	"github.com/MKhiriev/go-tin-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-tin-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/mock"
	"github.com/MKhiriev/go-tin-keeper/internal/service"
	"github.com/MKhiriev/go-tin-keeper/internal/workers"
	"github.com/MKhiriev/go-tin-keeper/models"
)

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		GRPCAddress:     "127.0.0.1:0",
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

type blockingWorker struct {
	stopped chan struct{}
}

func (b *blockingWorker) Run(ctx context.Context) error {
	<-ctx.Done()
	close(b.stopped)
	return nil
}

// TestServer_RunAndShutdown starts both transports, calls each once and
// verifies that cancelling the context stops transports and workers.
func TestServer_RunAndShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	tin := mock.NewMockTINService(ctrl)
	tin.EXPECT().Countries(gomock.Any()).Return([]models.CountryInfo{{Code: "AT", Name: "Austria"}}).Times(2)

	services := &service.Services{TINService: tin}
	cfg := testServerConfig()
	handlers, err := handler.NewHandlers(services, cfg, nil, logger.Nop())
	require.NoError(t, err)

	worker := &blockingWorker{stopped: make(chan struct{})}
	srv, err := NewServer(handlers, cfg, prometheus.NewRegistry(), workers.NewWorkers(worker), logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	resp, err := http.Get("http://" + s.httpServer.addr() + "/api/countries")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Austria")

	conn, err := grpc.NewClient(s.gRPCServer.addr(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(myGRPC.CodecName)))
	require.NoError(t, err)
	defer conn.Close()

	var countries models.CountriesResponse
	require.NoError(t, conn.Invoke(context.Background(), myGRPC.CountriesMethod, &myGRPC.CountriesRequest{}, &countries))
	assert.Len(t, countries.Countries, 1)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	select {
	case <-worker.stopped:
	default:
		t.Fatal("worker was not stopped")
	}
}

func TestNewServer_NoServers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, nil, nil, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AddressInUse(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	cfg := config.Server{HTTPAddress: lis.Addr().String(), RequestTimeout: time.Second}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, nil, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, cfg, nil, nil, logger.Nop())

	assert.Error(t, err)
}
