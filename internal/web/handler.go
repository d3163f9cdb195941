package web

import (
	"context"
	"errors"
	"strconv"

	"poker-stack-go/internal/api"
	"poker-stack-go/internal/metrics"
	"poker-stack-go/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Ledger is the subset of api.LedgerService used by the handlers
type Ledger interface {
	CreatePlayer(ctx context.Context, params models.PlayerCreate) (*models.Player, error)
	RecordTransaction(ctx context.Context, params models.TransactionCreate) (*models.Transaction, error)
	ListPlayers(ctx context.Context) ([]models.PlayerSummary, error)
	ListTransactions(ctx context.Context, playerId *int64) ([]models.TransactionRecord, error)
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	HealthCheck(ctx context.Context) error
}

var _ Ledger = (*api.LedgerService)(nil)

type Handler struct {
	logger    *zap.Logger
	ledger    Ledger
	validator *XValidator
	metrics   *metrics.Metrics
}

func NewHandler(logger *zap.Logger, ledger Ledger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:    logger,
		ledger:    ledger,
		validator: NewXValidator(),
		metrics:   metrics,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	if err := h.ledger.HealthCheck(c.UserContext()); err != nil {
		h.logger.Error("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).SendString("database unavailable")
	}
	return c.SendString("pong")
}

func (h *Handler) Index(c *fiber.Ctx) error {
	dashboard, err := h.ledger.Dashboard(c.UserContext())
	if err != nil {
		h.recordFailure("dashboard", err)
		return err
	}
	return render(c, fiber.StatusOK, "index.html", dashboard)
}

func (h *Handler) CreatePlayer(c *fiber.Ctx) error {
	var form PlayerForm
	if err := h.parseForm(c, &form); err != nil {
		h.logger.Warn("Rejected player form", zap.Error(err))
		return err
	}

	player, err := h.ledger.CreatePlayer(c.UserContext(), form.toCreate())
	if err != nil {
		h.recordFailure("create_player", err)
		return err
	}

	h.metrics.RecordPlayerCreated()
	h.logger.Info("Player created",
		zap.Int64("player_id", player.Id),
		zap.String("name", player.Name))

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *Handler) CreateTransaction(c *fiber.Ctx) error {
	var form TransactionForm
	if err := h.parseForm(c, &form); err != nil {
		h.logger.Warn("Rejected transaction form", zap.Error(err))
		return err
	}

	params, err := form.toCreate()
	if err != nil {
		h.logger.Warn("Rejected transaction form", zap.Error(err))
		h.recordFailure("record_transaction", err)
		return err
	}

	tx, err := h.ledger.RecordTransaction(c.UserContext(), params)
	if err != nil {
		h.recordFailure("record_transaction", err)
		return err
	}

	h.metrics.RecordTransactionRecorded(tx.Type.String())
	h.logger.Info("Transaction recorded",
		zap.Int64("transaction_id", tx.Id),
		zap.Int64("player_id", tx.PlayerId),
		zap.String("type", tx.Type.String()),
		zap.String("amount", tx.Amount.String()))

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *Handler) ListPlayers(c *fiber.Ctx) error {
	summaries, err := h.ledger.ListPlayers(c.UserContext())
	if err != nil {
		h.recordFailure("list_players", err)
		return err
	}
	return c.JSON(summaries)
}

func (h *Handler) ListTransactions(c *fiber.Ctx) error {
	var playerId *int64
	if raw := c.Query("player_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.metrics.RecordValidationError("player_id", "number")
			return api.NewError(api.ErrCodeValidationFailed,
				&models.ValidationError{Field: "player_id", Err: err})
		}
		playerId = &id
	}

	records, err := h.ledger.ListTransactions(c.UserContext(), playerId)
	if err != nil {
		h.recordFailure("list_transactions", err)
		return err
	}
	if records == nil {
		records = []models.TransactionRecord{}
	}
	return c.JSON(records)
}

func (h *Handler) recordFailure(operation string, err error) {
	code := api.ErrCodeOperationFailed
	var serviceErr api.Error
	if errors.As(err, &serviceErr) {
		code = serviceErr.Code
	}
	h.metrics.RecordLedgerError(operation, code)
}
