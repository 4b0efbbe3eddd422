package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaultsFillsPresetByDifficulty(t *testing.T) {
	c := Config{Difficulty: "hard"}
	c.ApplyDefaults()

	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, 4, c.Month.Number)
	assert.Equal(t, Hard(), c.Balance)
}

func TestApplyDefaultsLeavesExplicitBalanceAlone(t *testing.T) {
	bal := Default()
	bal.Rent = 99999

	c := Config{Difficulty: "casual", Balance: bal}
	c.ApplyDefaults()

	assert.Equal(t, 99999, c.Balance.Rent)
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	body := []byte("version: \"1\"\nserver:\n  addr: \":9090\"\ndifficulty: casual\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", c.Server.Addr)
	assert.Equal(t, Casual(), c.Balance)
}

func TestLoadHonorsPartialBalanceBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	body := []byte("difficulty: normal\nbalance:\n  starting_money: 99999\n  salary: 12345\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 99999, c.Balance.StartingMoney)
	assert.Equal(t, 12345, c.Balance.Salary)
	// Everything the file does not mention keeps the preset value.
	assert.Equal(t, Default().Rent, c.Balance.Rent)
	assert.Equal(t, Default().BagCapacity, c.Balance.BagCapacity)
}

func TestFromEnvOverlaysFieldsOnBase(t *testing.T) {
	t.Setenv("SALARY", "200000")

	bal, err := FromEnv(Default())
	require.NoError(t, err)

	assert.Equal(t, 200000, bal.Salary)
	assert.Equal(t, Default().Rent, bal.Rent)
}

func TestFromEnvDifficultySwapsPresetFirst(t *testing.T) {
	t.Setenv("DIFFICULTY", "hard")
	t.Setenv("RENT", "70000")

	bal, err := FromEnv(Default())
	require.NoError(t, err)

	assert.Equal(t, Hard().Salary, bal.Salary)
	assert.Equal(t, 70000, bal.Rent)
}
