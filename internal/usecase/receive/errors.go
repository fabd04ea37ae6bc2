package receive

import "errors"

var ErrNoClipboard = errors.New("clipboard unavailable")
