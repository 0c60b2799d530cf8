package capability

import "strings"

// Declarative mapping tables from raw artifact facts to slots. Kept
// here so both discovery and its tests share one source of truth.

// DependencyTarget maps a package name to the slot it configures.
type DependencyTarget struct {
	Slot     Slot
	Provider string
}

// RuntimeDependencies are package.json "dependencies" entries that
// configure a capability outright.
var RuntimeDependencies = map[string]DependencyTarget{
	"hono":               {Framework, "hono"},
	"itty-router":        {Framework, "itty-router"},
	"express":            {Framework, "express"},
	"jose":               {Authentication, "jose"},
	"jsonwebtoken":       {Authentication, "jsonwebtoken"},
	"drizzle-orm":        {Database, "drizzle"},
	"@aws-sdk/client-s3": {Storage, "s3"},
	"amqplib":            {Messaging, "amqp"},
	"@sentry/cloudflare": {Monitoring, "sentry"},
	"helmet":             {Security, "helmet"},
}

// DevDependencies only mark a capability as possible: tooling present,
// nothing wired at runtime.
var DevDependencies = map[string]DependencyTarget{
	"wrangler": {Deployment, "wrangler"},
}

// PermissionSlots maps credential permission strings to the slot the
// credential makes possible. Permissions never configure anything.
var PermissionSlots = map[string]Slot{
	"workers:deploy": Deployment,
	"workers:write":  Deployment,
	"database:edit":  Database,
	"database:read":  Database,
	"d1:write":       Database,
	"kv:write":       Storage,
	"r2:write":       Storage,
	"queues:write":   Messaging,
	"access:read":    Authentication,
	"analytics:read": Monitoring,
}

// LayoutDirSlots maps a directory name to a slot that counts as
// configured: real code lives there.
var LayoutDirSlots = map[string]Slot{
	"auth":       Authentication,
	"migrations": Database,
	"security":   Security,
	"monitoring": Monitoring,
	"queues":     Messaging,
}

// LayoutWordSlots maps words split out of file names to a slot that is
// merely possible: a file name is a weaker signal than a directory.
var LayoutWordSlots = map[string]Slot{
	"auth":      Authentication,
	"security":  Security,
	"metrics":   Monitoring,
	"queue":     Messaging,
	"storage":   Storage,
	"database":  Database,
	"migration": Database,
}

// SlotForPermission resolves one "scope:action" permission string.
func SlotForPermission(perm string) (Slot, bool) {
	s, ok := PermissionSlots[strings.ToLower(strings.TrimSpace(perm))]
	return s, ok
}
