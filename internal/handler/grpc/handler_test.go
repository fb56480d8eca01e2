package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/mock"
	"github.com/MKhiriev/go-tin-keeper/internal/service"
	"github.com/MKhiriev/go-tin-keeper/models"
)

type testEnv struct {
	conn    *grpc.ClientConn
	tin     *mock.MockTINService
	appInfo *mock.MockAppInfoService
}

// newTestEnv serves a Handler backed by mocks over an in-memory listener.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		tin:     mock.NewMockTINService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{TINService: env.tin, AppInfoService: env.appInfo}, logger.Nop())

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryInterceptor))
	srv.RegisterService(&ServiceDesc, h)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	env.conn = conn
	return env
}

func TestValidate(t *testing.T) {
	env := newTestEnv(t)
	req := models.ValidationRequest{TIN: "26954371827", Country: "DE"}
	env.tin.EXPECT().Validate(gomock.Any(), req).
		Return(models.ValidationResult{TIN: "********827", Country: "DE", Valid: true}, nil)

	var resp models.ValidationResult
	var header metadata.MD
	err := env.conn.Invoke(context.Background(), ValidateMethod, &req, &resp, grpc.Header(&header))

	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, "********827", resp.TIN)
	assert.NotEmpty(t, header.Get(TraceIDMetadataKey))
}

func TestValidate_ErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"unknown country", fmt.Errorf("%w %q", service.ErrUnknownCountry, "XX"), codes.InvalidArgument},
		{"unexpected", assert.AnError, codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.tin.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(models.ValidationResult{}, tt.err)

			var resp models.ValidationResult
			err := env.conn.Invoke(context.Background(), ValidateMethod,
				&models.ValidationRequest{TIN: "1", Country: "XX"}, &resp)

			assert.Equal(t, tt.want, status.Code(err))
		})
	}
}

func TestValidateBatch(t *testing.T) {
	env := newTestEnv(t)
	items := []models.ValidationRequest{{TIN: "1", Country: "DE"}, {TIN: "2", Country: "XX"}}
	env.tin.EXPECT().ValidateBatch(gomock.Any(), items).Return([]models.ValidationResult{
		{Country: "DE"},
		{Country: "XX", Error: "unknown country"},
	}, nil)

	var resp models.BatchResponse
	err := env.conn.Invoke(context.Background(), ValidateBatchMethod, &models.BatchRequest{Items: items}, &resp)

	require.NoError(t, err)
	assert.Len(t, resp.Results, 2)
	assert.Equal(t, 1, resp.Invalid)
	assert.Equal(t, 1, resp.Failed)
}

func TestValidateBatch_TooLarge(t *testing.T) {
	env := newTestEnv(t)
	env.tin.EXPECT().ValidateBatch(gomock.Any(), gomock.Any()).Return(nil, service.ErrBatchTooLarge)

	var resp models.BatchResponse
	err := env.conn.Invoke(context.Background(), ValidateBatchMethod,
		&models.BatchRequest{Items: []models.ValidationRequest{{TIN: "1", Country: "DE"}}}, &resp)

	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestCountriesAndVersion(t *testing.T) {
	env := newTestEnv(t)
	env.tin.EXPECT().Countries(gomock.Any()).Return([]models.CountryInfo{{Code: "AT", Name: "Austria"}})
	env.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("v1", "", ""))

	var countries models.CountriesResponse
	require.NoError(t, env.conn.Invoke(context.Background(), CountriesMethod, &CountriesRequest{}, &countries))
	assert.Equal(t, "AT", countries.Countries[0].Code)

	var version models.VersionResponse
	require.NoError(t, env.conn.Invoke(context.Background(), VersionMethod, &VersionRequest{}, &version))
	assert.Equal(t, "v1", version.Version)
}

// TestUnaryInterceptor_RecoversPanic verifies that a panicking handler
// yields codes.Internal.
func TestUnaryInterceptor_RecoversPanic(t *testing.T) {
	h := NewHandler(nil, logger.Nop())

	_, err := h.UnaryInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: ValidateMethod},
		func(context.Context, any) (any, error) { panic("boom") })

	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestCodec(t *testing.T) {
	c := Codec{}
	assert.Equal(t, CodecName, c.Name())

	data, err := c.Marshal(&models.ValidationRequest{TIN: "1", Country: "DE"})
	require.NoError(t, err)

	var req models.ValidationRequest
	require.NoError(t, c.Unmarshal(data, &req))
	assert.Equal(t, "DE", req.Country)

	assert.NoError(t, c.Unmarshal(nil, &req))
	assert.Error(t, c.Unmarshal([]byte("{"), &req))
}
