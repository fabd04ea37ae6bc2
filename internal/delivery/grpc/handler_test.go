package grpc_test

import (
	"context"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	grpchandler "github.com/Xausdorf/vietqr-receive/internal/delivery/grpc"
	"github.com/Xausdorf/vietqr-receive/internal/domain/entity"
	"github.com/Xausdorf/vietqr-receive/internal/domain/repository"
	"github.com/Xausdorf/vietqr-receive/internal/rpc/receivev1"
	"github.com/Xausdorf/vietqr-receive/internal/usecase/generateqr"
	"github.com/Xausdorf/vietqr-receive/internal/usecase/generateqr/mocks"
)

func newClient(t *testing.T, users repository.UserRepository) receivev1.ReceiveServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	receivev1.RegisterReceiveServiceServer(srv, grpchandler.NewHandler(generateqr.NewUseCase(users, nil)))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return receivev1.NewReceiveServiceClient(conn)
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestHandler_BuildQR(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	client := newClient(t, users)

	userID := uuid.New()
	users.EXPECT().FindByID(gomock.Any(), userID).
		Return(entity.NewUser(userID, "Nguyễn Văn An", "0011001234567"), nil)

	resp, err := client.BuildQR(context.Background(), mustStruct(t, map[string]any{
		receivev1.FieldUserID: userID.String(),
		receivev1.FieldAmount: "1.500.000",
		receivev1.FieldMemo:   "tra tien an",
	}))

	require.NoError(t, err)
	assert.Equal(t, "NGUYEN VAN AN", receivev1.String(resp, receivev1.FieldAccountName))
	assert.Equal(t, "1500000", receivev1.String(resp, receivev1.FieldAmount))
	assert.Equal(t, "1.500.000 VND", receivev1.String(resp, receivev1.FieldAmountLabel))
	assert.Equal(t,
		"https://img.vietqr.io/image/970436-0011001234567-compact.png?accountName=NGUYEN+VAN+AN&addInfo=tra+tien+an&amount=1500000",
		receivev1.String(resp, receivev1.FieldQRURL))
}

func TestHandler_BuildQR_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	client := newClient(t, users)

	missing := uuid.New()
	users.EXPECT().FindByID(gomock.Any(), missing).Return(nil, repository.ErrNotFound)

	tests := []struct {
		name string
		req  map[string]any
		code codes.Code
	}{
		{"missing user id", map[string]any{}, codes.InvalidArgument},
		{"bad user id", map[string]any{receivev1.FieldUserID: "nope"}, codes.InvalidArgument},
		{"negative amount", map[string]any{receivev1.FieldUserID: uuid.NewString(), receivev1.FieldAmount: "-1"}, codes.InvalidArgument},
		{"unknown user", map[string]any{receivev1.FieldUserID: missing.String()}, codes.NotFound},
		{"negative number amount", map[string]any{receivev1.FieldUserID: uuid.NewString(), receivev1.FieldAmount: -500}, codes.InvalidArgument},
		{"fractional amount", map[string]any{receivev1.FieldUserID: uuid.NewString(), receivev1.FieldAmount: 1.5}, codes.InvalidArgument},
		{"bool amount", map[string]any{receivev1.FieldUserID: uuid.NewString(), receivev1.FieldAmount: true}, codes.InvalidArgument},
		{"list amount", map[string]any{receivev1.FieldUserID: uuid.NewString(), receivev1.FieldAmount: []any{"1"}}, codes.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.BuildQR(context.Background(), mustStruct(t, tt.req))
			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestHandler_BuildQR_NumberAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	client := newClient(t, users)

	userID := uuid.New()
	users.EXPECT().FindByID(gomock.Any(), userID).
		Return(entity.NewUser(userID, "An", "0011001234567"), nil)

	resp, err := client.BuildQR(context.Background(), mustStruct(t, map[string]any{
		receivev1.FieldUserID: userID.String(),
		receivev1.FieldAmount: 1500000,
	}))

	require.NoError(t, err)
	assert.Equal(t, "1500000", receivev1.String(resp, receivev1.FieldAmount))
	assert.Equal(t,
		"https://img.vietqr.io/image/970436-0011001234567-compact.png?accountName=AN&amount=1500000",
		receivev1.String(resp, receivev1.FieldQRURL))
}

func TestHandler_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	client := newClient(t, users)

	userID := uuid.New()
	users.EXPECT().FindByID(gomock.Any(), userID).
		Return(entity.NewUser(userID, "Đặng Văn Á", "9704"), nil)

	resp, err := client.GetProfile(context.Background(), mustStruct(t, map[string]any{
		receivev1.FieldUserID: userID.String(),
	}))

	require.NoError(t, err)
	assert.Equal(t, "Đặng Văn Á", receivev1.String(resp, receivev1.FieldName))
	assert.Equal(t, "9704", receivev1.String(resp, receivev1.FieldAccountNum))
	assert.Equal(t, userID.String(), receivev1.String(resp, receivev1.FieldUserID))
}
