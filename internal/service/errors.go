package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/paymentqr"
)

// toConnectError maps domain errors onto Connect codes.
func toConnectError(op string, err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var code connect.Code
	switch {
	case errors.Is(err, models.ErrPersonNotFound), errors.Is(err, models.ErrItemNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, paymentqr.ErrTooLarge):
		code = connect.CodeResourceExhausted
	case errors.Is(err, paymentqr.ErrNotImage), errors.Is(err, paymentqr.ErrEmpty), errors.Is(err, paymentqr.ErrPromptPayID),
		errors.Is(err, models.ErrBadPlatform):
		code = connect.CodeInvalidArgument
	default:
		code = connect.CodeInternal
	}
	if code == connect.CodeInternal {
		slog.Error(op+" failed", "error", err)
	} else {
		slog.Debug(op+" rejected", "code", code, "error", err)
	}
	return connect.NewError(code, err)
}
