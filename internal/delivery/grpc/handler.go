package grpc

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Xausdorf/vietqr-receive/internal/rpc/receivev1"
	"github.com/Xausdorf/vietqr-receive/internal/usecase/generateqr"
)

type Handler struct {
	generateQRUC *generateqr.UseCase
}

var _ receivev1.ReceiveServiceServer = (*Handler)(nil)

func NewHandler(generateQRUC *generateqr.UseCase) *Handler {
	return &Handler{generateQRUC: generateQRUC}
}

func (h *Handler) BuildQR(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID := receivev1.String(req, receivev1.FieldUserID)
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	amountText, err := amountField(req)
	if err != nil {
		return nil, err
	}

	res, err := h.generateQRUC.Execute(ctx, generateqr.Request{
		UserID: userID,
		Amount: amountText,
		Memo:   receivev1.String(req, receivev1.FieldMemo),
	})
	if err != nil {
		return nil, mapError(err)
	}

	return structpb.NewStruct(map[string]any{
		receivev1.FieldQRURL:       res.QRURL,
		receivev1.FieldAccountNum:  res.AccountNum,
		receivev1.FieldAccountName: res.AccountName,
		receivev1.FieldAmount:      res.Amount,
		receivev1.FieldAmountLabel: res.AmountLabel,
		receivev1.FieldMemo:        res.Memo,
	})
}

func (h *Handler) GetProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID := receivev1.String(req, receivev1.FieldUserID)
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	user, err := h.generateQRUC.Profile(ctx, userID)
	if err != nil {
		return nil, mapError(err)
	}

	return structpb.NewStruct(map[string]any{
		receivev1.FieldUserID:     user.ID().String(),
		receivev1.FieldName:       user.Name(),
		receivev1.FieldAccountNum: user.AccountNum(),
	})
}

// amountField accepts the amount as text or as a whole number. A negative
// number is passed on with its sign so the use case rejects it.
func amountField(req *structpb.Struct) (string, error) {
	v, ok := req.GetFields()[receivev1.FieldAmount]
	if !ok {
		return "", nil
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue, nil
	case *structpb.Value_NullValue:
		return "", nil
	case *structpb.Value_NumberValue:
		d := decimal.NewFromFloat(kind.NumberValue)
		if !d.IsInteger() {
			return "", status.Error(codes.InvalidArgument, "amount must be a whole number")
		}
		return d.String(), nil
	default:
		return "", status.Error(codes.InvalidArgument, "amount must be a string or a number")
	}
}

func mapError(err error) error {
	switch {
	case errors.Is(err, generateqr.ErrInvalidUserID), errors.Is(err, generateqr.ErrNegativeAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, generateqr.ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Errorf(codes.Internal, "build qr failed: %v", err)
	}
}
