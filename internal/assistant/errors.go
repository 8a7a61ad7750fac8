package assistant

import "errors"

var ErrNoStore = errors.New("no task store configured")
