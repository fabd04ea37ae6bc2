package receive_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Xausdorf/vietqr-receive/internal/domain/accountname"
	"github.com/Xausdorf/vietqr-receive/internal/domain/entity"
	"github.com/Xausdorf/vietqr-receive/internal/domain/i18n"
	"github.com/Xausdorf/vietqr-receive/internal/usecase/receive"
	"github.com/Xausdorf/vietqr-receive/internal/usecase/receive/mocks"
)

const accountNum = "0011001234567"

var translations = i18n.Translations{Receive: i18n.Receive{Copied: "Copied!"}}

func newUser(name string) *entity.User {
	return entity.NewUser(uuid.New(), name, accountNum)
}

func TestView_QRURL_Defaults(t *testing.T) {
	v := receive.NewView(receive.Props{AccountNum: accountNum, User: newUser("Nguyễn Văn An")}, nil, nil)

	assert.Equal(t, "https://img.vietqr.io/image/970436-0011001234567-compact.png?accountName=NGUYEN+VAN+AN", v.QRURL())
}

func TestView_QRURL_AmountAndMemo(t *testing.T) {
	v := receive.NewView(receive.Props{AccountNum: accountNum, User: newUser("Nguyễn Văn An")}, nil, nil)

	assert.Equal(t, "1.500.000", v.SetAmount("1500000"))
	v.SetMemo("tra tien an")

	u, err := url.Parse(v.QRURL())
	require.NoError(t, err)
	assert.Contains(t, u.RawQuery, "amount=1500000")
	assert.Contains(t, u.RawQuery, "addInfo=tra+tien+an")
	assert.Equal(t, "1.500.000 VND", v.AmountLabel())
}

func TestView_QRURL_ZeroAmountOmitted(t *testing.T) {
	v := receive.NewView(receive.Props{AccountNum: accountNum}, nil, nil)

	v.SetAmount("000")
	assert.Equal(t, "0", v.AmountText())
	assert.NotContains(t, v.QRURL(), "amount=")
	assert.Empty(t, v.AmountLabel())
}

func TestView_NilUserUsesFallbackName(t *testing.T) {
	v := receive.NewView(receive.Props{AccountNum: accountNum}, nil, nil)

	assert.Equal(t, accountname.Fallback, v.AccountName())

	u, err := url.Parse(v.QRURL())
	require.NoError(t, err)
	assert.Equal(t, accountname.Fallback, u.Query().Get("accountName"))
}

func TestView_SetAmountReformatsEachKeystroke(t *testing.T) {
	v := receive.NewView(receive.Props{AccountNum: accountNum}, nil, nil)

	typed := ""
	for _, k := range []string{"1", "2", "3", "4", "5"} {
		typed = v.SetAmount(typed + k)
	}

	assert.Equal(t, "12.345", typed)
	assert.Equal(t, "12345", v.Amount().String())
}

func TestView_Copy_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clip := mocks.NewMockClipboard(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	v := receive.NewView(receive.Props{AccountNum: accountNum, Translations: translations}, clip, notifier)
	v.SetMemo("rent")

	gomock.InOrder(
		clip.EXPECT().WriteText(gomock.Any(), v.QRURL()).Return(nil),
		notifier.EXPECT().Notify(gomock.Any(), "Copied!"),
	)

	require.NoError(t, v.Copy(context.Background()))
}

func TestView_Copy_FailureSkipsNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clip := mocks.NewMockClipboard(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	v := receive.NewView(receive.Props{AccountNum: accountNum, Translations: translations}, clip, notifier)

	clipErr := errors.New("denied")
	clip.EXPECT().WriteText(gomock.Any(), gomock.Any()).Return(clipErr)

	err := v.Copy(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, clipErr)
}

func TestView_Copy_NoClipboard(t *testing.T) {
	v := receive.NewView(receive.Props{AccountNum: accountNum}, nil, nil)

	assert.ErrorIs(t, v.Copy(context.Background()), receive.ErrNoClipboard)
}

func TestView_Back(t *testing.T) {
	called := 0
	v := receive.NewView(receive.Props{OnBack: func() { called++ }}, nil, nil)

	v.Back()
	assert.Equal(t, 1, called)

	receive.NewView(receive.Props{}, nil, nil).Back()
}

func TestParseTheme(t *testing.T) {
	assert.Equal(t, receive.ThemeDark, receive.ParseTheme("dark"))
	assert.Equal(t, receive.ThemeLight, receive.ParseTheme("light"))
	assert.Equal(t, receive.ThemeLight, receive.ParseTheme(""))
	assert.Equal(t, receive.ThemeLight, receive.ParseTheme("DARK"))
}
