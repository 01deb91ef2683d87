package commands

import (
	"context"
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/services"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/units"
)

//go:generate mockgen -source=dispatcher.go -destination=dispatcher_mock.go -package=commands

const (
	// Prefix starts every text command.
	Prefix = "!"

	historyPageSize = 10
)

var mentionPattern = regexp.MustCompile(`^<@!?(\d+)>$|^(\d+)$`)

// Ledger defines the ledger operations reachable from chat.
type Ledger interface {
	Balance(ctx context.Context, userID string) (int64, error)
	Transfer(ctx context.Context, fromID, toID string, amount int64, txID string) (*models.Receipt, error)
	Claim(ctx context.Context, userID string) (*models.Receipt, error)
	History(ctx context.Context, userID string, page, pageSize int) ([]models.Transaction, int, error)
	Reward() int64
}

// Bills defines the bill operations reachable from chat.
type Bills interface {
	CreateBill(ctx context.Context, fromID, toID string, amount int64, expiry time.Time) (*models.Bill, error)
	PayBill(ctx context.Context, executorID, billID string) (*models.Receipt, *models.Bill, error)
}

// Backups defines the backup operations reachable from chat.
type Backups interface {
	CreateCodes(ctx context.Context, userID string) ([]string, error)
	Redeem(ctx context.Context, code, newUserID string) (int64, *models.Receipt, error)
}

// Cards defines the card operations reachable from chat.
type Cards interface {
	GetOrCreate(ctx context.Context, ownerID string) (*models.Card, error)
	PayWithCard(ctx context.Context, hash, toID string, amount int64) (string, *models.Receipt, error)
}

// Reply is the answer to a command. Private replies go to the author's DMs.
type Reply struct {
	Text    string
	Private bool
}

type handlerFunc func(ctx context.Context, authorID string, args []string) Reply

// Dispatcher parses text commands and calls the protocols behind them.
type Dispatcher struct {
	ledger   Ledger
	bills    Bills
	backups  Backups
	cards    Cards
	now      func() time.Time
	handlers map[string]handlerFunc
}

// NewDispatcher creates a Dispatcher. now may be nil.
func NewDispatcher(ledger Ledger, bills Bills, backups Backups, cards Cards, now func() time.Time) *Dispatcher {
	if now == nil {
		now = time.Now
	}
	d := &Dispatcher{
		ledger:  ledger,
		bills:   bills,
		backups: backups,
		cards:   cards,
		now:     now,
	}
	d.handlers = map[string]handlerFunc{
		"help":    d.help,
		"saldo":   d.saldo,
		"pay":     d.pay,
		"claim":   d.claim,
		"bill":    d.bill,
		"paybill": d.payBill,
		"backup":  d.backup,
		"restore": d.restore,
		"card":    d.card,
		"history": d.history,
		"active":  d.active,
	}
	return d
}

// Handle runs the command in content on behalf of authorID. ok is false when
// content is not a known command. A panicking handler is answered with a
// generic failure.
func (d *Dispatcher) Handle(ctx context.Context, authorID, content string) (reply Reply, ok bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], Prefix) {
		return Reply{}, false
	}

	name := strings.ToLower(strings.TrimPrefix(fields[0], Prefix))
	h, found := d.handlers[name]
	if !found {
		return Reply{}, false
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorw("command panicked", "command", name, "author", authorID, "panic", r, "stack", string(debug.Stack()))
			reply, ok = Reply{Text: "❌ Something went wrong."}, true
		}
	}()

	logger.Log.Infow("command", "command", name, "author", authorID)
	return h(ctx, authorID, fields[1:]), true
}

func (d *Dispatcher) help(_ context.Context, _ string, _ []string) Reply {
	return Reply{Text: strings.Join([]string{
		"**Commands**",
		"`!saldo [@user]` show a balance",
		"`!pay @user <amount>` send coins",
		"`!claim` collect " + units.FromMinorUnits(d.ledger.Reward()) + " coins",
		"`!bill <@payer|-> <amount> [time]` request a payment",
		"`!paybill <billId>` pay a bill",
		"`!backup` get your backup codes",
		"`!restore <code>` move a backed up wallet to you",
		"`!card` get your card",
		"`!history [page]` list your transactions",
	}, "\n")}
}

func (d *Dispatcher) saldo(ctx context.Context, authorID string, args []string) Reply {
	userID := authorID
	if len(args) > 0 {
		id, ok := parseUser(args[0])
		if !ok {
			return usage("!saldo [@user]")
		}
		userID = id
	}

	balance, err := d.ledger.Balance(ctx, userID)
	if err != nil {
		return failure(err)
	}
	return Reply{Text: fmt.Sprintf("💰 <@%s> has %s coins.", userID, units.FromMinorUnits(balance))}
}

func (d *Dispatcher) pay(ctx context.Context, authorID string, args []string) Reply {
	if len(args) != 2 {
		return usage("!pay @user <amount>")
	}
	toID, ok := parseUser(args[0])
	if !ok {
		return usage("!pay @user <amount>")
	}
	amount, err := units.ParseAmount(args[1])
	if err != nil {
		return failure(models.ErrInvalidAmount)
	}

	receipt, err := d.ledger.Transfer(ctx, authorID, toID, amount, "")
	if err != nil {
		return failure(err)
	}
	return Reply{Text: fmt.Sprintf("✅ Sent %s coins to <@%s>.\nTransaction `%s`", units.FromMinorUnits(amount), toID, receipt.TxID)}
}

func (d *Dispatcher) claim(ctx context.Context, authorID string, _ []string) Reply {
	if _, err := d.ledger.Claim(ctx, authorID); err != nil {
		return failure(err)
	}
	return Reply{Text: fmt.Sprintf("🎁 You claimed %s coins.", units.FromMinorUnits(d.ledger.Reward()))}
}

func (d *Dispatcher) bill(ctx context.Context, authorID string, args []string) Reply {
	const format = "!bill <@payer|-> <amount> [time]"
	if len(args) < 2 || len(args) > 3 {
		return usage(format)
	}

	fromID := ""
	if args[0] != "-" {
		id, ok := parseUser(args[0])
		if !ok {
			return usage(format)
		}
		fromID = id
	}
	amount, err := units.ParseAmount(args[1])
	if err != nil {
		return failure(models.ErrInvalidAmount)
	}
	duration := ""
	if len(args) == 3 {
		duration = args[2]
	}
	expiry, err := services.BillExpiry(d.now(), duration)
	if err != nil {
		return usage(format)
	}

	b, err := d.bills.CreateBill(ctx, fromID, authorID, amount, expiry)
	if err != nil {
		return failure(err)
	}
	return Reply{Text: fmt.Sprintf("🧾 Bill `%s` for %s coins created, expires <t:%d:R>.\nPay with `!paybill %s`",
		b.ID, units.FromMinorUnits(b.Amount), b.Expiry/1000, b.ID)}
}

func (d *Dispatcher) payBill(ctx context.Context, authorID string, args []string) Reply {
	if len(args) != 1 {
		return usage("!paybill <billId>")
	}

	_, b, err := d.bills.PayBill(ctx, authorID, args[0])
	if err != nil {
		return failure(err)
	}
	return Reply{Text: fmt.Sprintf("✅ Paid bill `%s`: %s coins to <@%s>.", b.ID, units.FromMinorUnits(b.Amount), b.ToID)}
}

func (d *Dispatcher) backup(ctx context.Context, authorID string, _ []string) Reply {
	codes, err := d.backups.CreateCodes(ctx, authorID)
	if err != nil {
		return failure(err)
	}

	var sb strings.Builder
	sb.WriteString("🔐 Your backup codes. Each one moves your whole balance once, keep them secret:\n")
	for _, c := range codes {
		sb.WriteString("`" + c + "`\n")
	}
	return Reply{Text: sb.String(), Private: true}
}

func (d *Dispatcher) restore(ctx context.Context, authorID string, args []string) Reply {
	if len(args) != 1 {
		return usage("!restore <code>")
	}

	amount, _, err := d.backups.Redeem(ctx, args[0], authorID)
	if err != nil {
		return failure(err)
	}
	return Reply{Text: fmt.Sprintf("✅ Restored %s coins to your wallet.", units.FromMinorUnits(amount))}
}

func (d *Dispatcher) card(ctx context.Context, authorID string, _ []string) Reply {
	c, err := d.cards.GetOrCreate(ctx, authorID)
	if err != nil {
		return failure(err)
	}
	return Reply{Text: fmt.Sprintf("💳 Your card code is `%s`.\nHash: `%s`", c.Code, c.Hash), Private: true}
}

func (d *Dispatcher) history(ctx context.Context, authorID string, args []string) Reply {
	page := 1
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil || p < 1 {
			return usage("!history [page]")
		}
		page = p
	}

	list, pages, err := d.ledger.History(ctx, authorID, page, historyPageSize)
	if err != nil {
		return failure(err)
	}
	if len(list) == 0 {
		return Reply{Text: "📭 No transactions."}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📜 Transactions, page %d of %d\n", page, pages)
	for _, t := range list {
		from := "<@" + t.FromID + ">"
		if t.FromID == models.MintID {
			from = "claim"
		}
		fmt.Fprintf(&sb, "`%s` %s → <@%s> %s\n", t.Date, from, t.ToID, units.FromMinorUnits(t.Amount))
	}
	return Reply{Text: sb.String()}
}

// active answers "<ownerId>:true" when the card holder paid and
// "<ownerId>:false" otherwise.
func (d *Dispatcher) active(ctx context.Context, _ string, args []string) Reply {
	if len(args) != 3 {
		return Reply{Text: ":false"}
	}
	toID, ok := parseUser(args[1])
	if !ok {
		return Reply{Text: ":false"}
	}
	amount, err := units.ParseAmount(args[2])
	if err != nil {
		return Reply{Text: ":false"}
	}

	ownerID, _, err := d.cards.PayWithCard(ctx, strings.ToLower(args[0]), toID, amount)
	return Reply{Text: fmt.Sprintf("%s:%t", ownerID, err == nil)}
}

func parseUser(arg string) (string, bool) {
	m := mentionPattern.FindStringSubmatch(arg)
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}

func usage(format string) Reply {
	return Reply{Text: "Usage: `" + format + "`"}
}
