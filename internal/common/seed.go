package common

import (
	"fmt"
	"os"
	"path/filepath"

	"poker-stack-go/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

type SeedTransaction struct {
	Type   string `yaml:"type"`
	Amount string `yaml:"amount"`
	Note   string `yaml:"note"`
}

type SeedPlayer struct {
	Name             string            `yaml:"name"`
	TelegramUsername string            `yaml:"telegram_username"`
	Transactions     []SeedTransaction `yaml:"transactions"`
}

type SeedConfig struct {
	Players []SeedPlayer `yaml:"players"`
}

func LoadSeedConfig(seedFile string) (*SeedConfig, error) {
	var seedPath string
	if filepath.IsAbs(seedFile) {
		seedPath = seedFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		seedPath = filepath.Join(wd, seedFile)
	}

	data, err := os.ReadFile(seedPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", seedFile, err)
	}

	return ParseSeedConfig(data, seedFile)
}

func ParseSeedConfig(data []byte, source string) (*SeedConfig, error) {
	var config SeedConfig
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", source, err)
	}

	for i, player := range config.Players {
		if player.Name == "" {
			return nil, fmt.Errorf("player at index %d missing name", i)
		}
		for j, tx := range player.Transactions {
			if _, err := tx.ToCreate(0); err != nil {
				return nil, fmt.Errorf("player %q transaction at index %d: %w", player.Name, j, err)
			}
		}
	}

	return &config, nil
}

// ToCreate converts the seed entry into a ledger transaction for playerId.
// A zero playerId skips the player check so entries can be checked before
// the player exists.
func (t SeedTransaction) ToCreate(playerId int64) (models.TransactionCreate, error) {
	txType, err := models.ParseTransactionType(t.Type)
	if err != nil {
		return models.TransactionCreate{}, err
	}
	amount, err := decimal.NewFromString(t.Amount)
	if err != nil {
		return models.TransactionCreate{}, &models.ValidationError{Field: "amount", Err: err}
	}

	params := models.TransactionCreate{
		PlayerId: playerId,
		Type:     txType,
		Amount:   amount,
		Note:     models.NormalizeOptional(&t.Note),
	}
	check := params
	if check.PlayerId == 0 {
		check.PlayerId = 1
	}
	if err := check.Validate(); err != nil {
		return models.TransactionCreate{}, err
	}
	return params, nil
}

func (p SeedPlayer) ToCreate() models.PlayerCreate {
	return models.PlayerCreate{
		Name:             p.Name,
		TelegramUsername: models.NormalizeOptional(&p.TelegramUsername),
	}
}
