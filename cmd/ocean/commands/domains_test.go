package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidewater-io/ocean/cmd/ocean/commands"
)

func TestNewDomainsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewDomainsCommand()
	assert.Equal(t, "domains", cmd.Use)
	assert.Equal(t, []string{"domain"}, cmd.Aliases)
	assert.Equal(t, "Manage domains", cmd.Short)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 5)

	commandNames := make([]string, 0, len(subcommands))
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "create")
	assert.Contains(t, commandNames, "delete")
	assert.Contains(t, commandNames, "records")
}

func TestDomainsCreateCommand(t *testing.T) {
	t.Parallel()

	root := commands.NewDomainsCommand()
	cmd := findSubcommand(root, "create")
	assert.Equal(t, "create DOMAIN", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("ip"))
}

func TestDomainRecordsCommand(t *testing.T) {
	t.Parallel()

	root := commands.NewDomainsCommand()
	records := findSubcommand(root, "records")
	assert.NotNil(t, records)
	assert.Equal(t, []string{"record"}, records.Aliases)

	create := findSubcommand(records, "create")
	assert.NotNil(t, create)

	for _, flagName := range []string{"type", "name", "data", "priority"} {
		flag := create.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "Flag %s should exist", flagName)
	}

	deleteCmd := findSubcommand(records, "delete")
	assert.NotNil(t, deleteCmd)
	assert.Equal(t, "delete DOMAIN RECORD_ID", deleteCmd.Use)
}
