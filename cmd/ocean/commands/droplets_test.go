package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidewater-io/ocean/cmd/ocean/commands"
)

func TestNewDropletsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewDropletsCommand()
	assert.Equal(t, "droplets", cmd.Use)
	assert.Equal(t, []string{"droplet"}, cmd.Aliases)
	assert.Equal(t, "Manage droplets", cmd.Short)

	// Check subcommands are added
	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 11)

	commandNames := make([]string, 0, len(subcommands))
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "create")
	assert.Contains(t, commandNames, "delete")
	assert.Contains(t, commandNames, "actions")
	assert.Contains(t, commandNames, "reboot")
	assert.Contains(t, commandNames, "power-cycle")
	assert.Contains(t, commandNames, "shutdown")
	assert.Contains(t, commandNames, "power-off")
	assert.Contains(t, commandNames, "power-on")
	assert.Contains(t, commandNames, "password-reset")
}

func TestDropletsCreateCommand(t *testing.T) {
	t.Parallel()

	root := commands.NewDropletsCommand()
	cmd := findSubcommand(root, "create")
	assert.Equal(t, "create NAME", cmd.Use)
	assert.Equal(t, "Create a droplet", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	flags := []string{"region", "size", "image", "ssh-keys", "backups", "ipv6", "user-data"}
	for _, flagName := range flags {
		flag := cmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "Flag %s should exist", flagName)
	}

	backupsFlag := cmd.Flags().Lookup("backups")
	assert.Equal(t, "false", backupsFlag.DefValue)
}

func TestDropletsGetCommand(t *testing.T) {
	t.Parallel()

	root := commands.NewDropletsCommand()
	cmd := findSubcommand(root, "get")
	assert.Equal(t, "get DROPLET_ID", cmd.Use)
	assert.Equal(t, "Show a droplet", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
}

func TestDropletTriggerCommands(t *testing.T) {
	t.Parallel()

	root := commands.NewDropletsCommand()

	shorts := map[string]string{
		"reboot":         "Reboot a droplet",
		"power-cycle":    "Power cycle a droplet",
		"shutdown":       "Shut a droplet down",
		"power-off":      "Power a droplet off",
		"power-on":       "Power a droplet on",
		"password-reset": "Reset a droplet's root password",
	}

	for name, short := range shorts {
		cmd := findSubcommand(root, name)
		assert.NotNil(t, cmd, "Command %s should exist", name)
		assert.Equal(t, short, cmd.Short)
		assert.NotNil(t, cmd.RunE)
	}
}
