package rbac

// Default policy. Teachers assemble and manage papers; students can only
// look at what was generated for them.
var RolePermissions = map[string][]string{
	"student": {
		"paper:view",
		"pattern:view",
	},
	"teacher": {
		"paper:generate",
		"paper:validate",
		"paper:view",
		"paper:export",
		"pattern:view",
		"question:stats",
		"session:clear",
	},
	"admin": {
		"*", // everything
	},
}
