package catalog

// DefaultCommands is the built-in registry of slash commands and their
// subcommands. Command metadata used to live in a generated file next to the
// skills snapshot; it is small and static enough that the registry is now the
// single source of truth.
var DefaultCommands = map[string]Command{
	"plan": {
		Name:        "plan",
		Subcommands: []string{"archive", "validate"},
	},
	"spec": {
		Name:        "spec",
		Subcommands: []string{"create", "validate", "decompose", "execute"},
	},
	"checkpoint": {
		Name:        "checkpoint",
		Subcommands: []string{"create", "list", "restore"},
	},
	"git": {
		Name:        "git",
		Subcommands: []string{"commit", "status", "push"},
	},
}
