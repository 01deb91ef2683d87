package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

func failure(err error) Reply {
	var cooldown *models.CooldownError

	switch {
	case errors.As(err, &cooldown):
		return Reply{Text: fmt.Sprintf("⏳ You can claim again in %s.", cooldown.Remaining.Round(time.Second))}
	case errors.Is(err, models.ErrInsufficientFunds):
		return Reply{Text: "❌ Insufficient funds."}
	case errors.Is(err, models.ErrInvalidAmount):
		return Reply{Text: "❌ Invalid amount. Use up to 8 decimal places."}
	case errors.Is(err, models.ErrSenderNotFound):
		return Reply{Text: "❌ You have no wallet yet. Use `!claim` first."}
	case errors.Is(err, models.ErrBillNotFound):
		return Reply{Text: "❌ Bill not found."}
	case errors.Is(err, models.ErrUnknownCode):
		return Reply{Text: "❌ Unknown backup code."}
	case errors.Is(err, models.ErrSelfRestoreNotAllowed):
		return Reply{Text: "❌ You cannot restore your own wallet. The code is now used up."}
	case errors.Is(err, models.ErrEmptyWallet):
		return Reply{Text: "❌ That wallet is empty. The code is now used up."}
	case errors.Is(err, models.ErrInvalidArgument):
		return Reply{Text: "❌ Invalid arguments."}
	}

	logger.Log.Errorw("command failed", "err", err)
	return Reply{Text: "❌ Operation failed."}
}
