package generateqr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Xausdorf/vietqr-receive/internal/domain/entity"
	"github.com/Xausdorf/vietqr-receive/internal/domain/qrcode"
	"github.com/Xausdorf/vietqr-receive/internal/domain/repository"
	"github.com/Xausdorf/vietqr-receive/internal/usecase/receive"
)

var (
	ErrInvalidUserID  = errors.New("invalid user id")
	ErrUserNotFound   = errors.New("user not found")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// Request carries the two fields as typed by the payee.
type Request struct {
	UserID string
	Amount string
	Memo   string
}

type Result struct {
	AccountNum  string
	AccountName string
	AmountText  string
	Amount      string
	AmountLabel string
	Memo        string
	QRURL       string
}

type UseCase struct {
	users     repository.UserRepository
	generator qrcode.Generator
}

func NewUseCase(users repository.UserRepository, generator qrcode.Generator) *UseCase {
	return &UseCase{users: users, generator: generator}
}

// Profile resolves the account holder behind a user id.
func (uc *UseCase) Profile(ctx context.Context, userID string) (*entity.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	user, err := uc.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return user, nil
}

func (uc *UseCase) Execute(ctx context.Context, req Request) (*Result, error) {
	view, err := uc.view(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Result{
		AccountNum:  view.Props().AccountNum,
		AccountName: view.AccountName(),
		AmountText:  view.AmountText(),
		Amount:      view.Amount().String(),
		AmountLabel: view.AmountLabel(),
		Memo:        view.Memo(),
		QRURL:       view.QRURL(),
	}, nil
}

// ShareQR renders the VietQR image URL itself as a PNG QR code.
func (uc *UseCase) ShareQR(ctx context.Context, req Request) ([]byte, error) {
	view, err := uc.view(ctx, req)
	if err != nil {
		return nil, err
	}
	return uc.generator.Generate(view.QRURL())
}

func (uc *UseCase) view(ctx context.Context, req Request) (*receive.View, error) {
	if isNegative(req.Amount) {
		return nil, ErrNegativeAmount
	}

	user, err := uc.Profile(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	view := receive.NewView(receive.Props{
		AccountNum: user.AccountNum(),
		User:       user,
	}, nil, nil)
	view.SetAmount(req.Amount)
	view.SetMemo(req.Memo)
	return view, nil
}

// minusSigns are the leading signs that mark an amount as negative: ASCII
// hyphen-minus, U+2212 MINUS SIGN, U+FE63 SMALL HYPHEN-MINUS and U+FF0D
// FULLWIDTH HYPHEN-MINUS.
const minusSigns = "-\u2212\uFE63\uFF0D"

func isNegative(amount string) bool {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(amount)
	return strings.ContainsRune(minusSigns, r)
}
