package contracts

import "errors"

var HistoryEmptyError = errors.New("history is empty")
