package grpcclient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Xausdorf/vietqr-receive/internal/domain/entity"
	"github.com/Xausdorf/vietqr-receive/internal/rpc/receivev1"
)

type Client struct {
	client receivev1.ReceiveServiceClient
	conn   *grpc.ClientConn
}

func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{
		client: receivev1.NewReceiveServiceClient(conn),
		conn:   conn,
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// FindUser fetches the account holder profile from the receive service.
func (c *Client) FindUser(ctx context.Context, userID string) (*entity.User, error) {
	req, err := structpb.NewStruct(map[string]any{receivev1.FieldUserID: userID})
	if err != nil {
		return nil, err
	}

	resp, err := c.client.GetProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(receivev1.String(resp, receivev1.FieldUserID))
	if err != nil {
		return nil, fmt.Errorf("profile user id: %w", err)
	}

	return entity.NewUser(
		id,
		receivev1.String(resp, receivev1.FieldName),
		receivev1.String(resp, receivev1.FieldAccountNum),
	), nil
}
