package migrations

import "embed"

// FS embeds the SQL migrations of the kv_store table. golang-migrate reads
// them through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the migrate command moves to.
const Version = 1
