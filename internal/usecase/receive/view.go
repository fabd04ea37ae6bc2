// Package receive models the "receive money" screen: two owned text fields
// (amount and memo) over immutable props, from which the VietQR image URL is
// derived on demand.
package receive

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/vietqr-receive/internal/domain/accountname"
	"github.com/Xausdorf/vietqr-receive/internal/domain/amount"
	"github.com/Xausdorf/vietqr-receive/internal/domain/entity"
	"github.com/Xausdorf/vietqr-receive/internal/domain/i18n"
	"github.com/Xausdorf/vietqr-receive/internal/domain/platform"
	"github.com/Xausdorf/vietqr-receive/internal/domain/vietqr"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps anything other than "dark" to ThemeLight.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Props are fixed for the lifetime of a View.
type Props struct {
	AccountNum   string
	User         *entity.User
	Translations i18n.Translations
	Theme        Theme
	OnBack       func()
}

type View struct {
	props     Props
	clipboard platform.Clipboard
	notifier  platform.Notifier

	amountText string
	memo       string
}

func NewView(props Props, clipboard platform.Clipboard, notifier platform.Notifier) *View {
	return &View{
		props:     props,
		clipboard: clipboard,
		notifier:  notifier,
	}
}

func (v *View) Props() Props {
	return v.props
}

func (v *View) IsDark() bool {
	return v.props.Theme == ThemeDark
}

// SetAmount stores keystrokes as formatted amount text and returns it.
func (v *View) SetAmount(keystrokes string) string {
	v.amountText = amount.Format(keystrokes)
	return v.amountText
}

func (v *View) SetMemo(text string) {
	v.memo = text
}

func (v *View) AmountText() string {
	return v.amountText
}

func (v *View) Memo() string {
	return v.memo
}

func (v *View) Amount() decimal.Decimal {
	return amount.Parse(v.amountText)
}

func (v *View) AmountLabel() string {
	return amount.Label(v.Amount())
}

func (v *View) AccountName() string {
	return accountname.ForUser(v.props.User)
}

func (v *View) QRURL() string {
	return vietqr.BuildURL(vietqr.Params{
		BankID:      vietqr.VietcombankBIN,
		AccountNum:  v.props.AccountNum,
		Template:    vietqr.TemplateCompact,
		Amount:      v.Amount(),
		AddInfo:     v.memo,
		AccountName: v.AccountName(),
	})
}

// Copy puts the current QR URL on the clipboard and, only if that worked,
// shows the localized confirmation.
func (v *View) Copy(ctx context.Context) error {
	if v.clipboard == nil {
		return ErrNoClipboard
	}
	if err := v.clipboard.WriteText(ctx, v.QRURL()); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	if v.notifier != nil {
		v.notifier.Notify(ctx, v.props.Translations.Receive.Copied)
	}
	return nil
}

func (v *View) Back() {
	if v.props.OnBack != nil {
		v.props.OnBack()
	}
}
